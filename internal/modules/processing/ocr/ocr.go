package ocr

import (
	"context"
	"fmt"

	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"go.uber.org/zap"
)

const (
	defaultDocumentName = "document.pdf"
	failurePrefix       = "Failed to process PDF with OCR"
)

// Service turns PDF bytes into markdown through a Provider.
type Service struct {
	provider Provider
	log      *zap.Logger
}

func NewService(provider Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, log: log}
}

// ProcessPDF uploads data, runs OCR on it and returns the combined markdown.
// The remote upload is deleted on every exit path once it exists.
func (s *Service) ProcessPDF(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperr.OCR("Empty PDF bytes provided")
	}
	if filename == "" {
		filename = defaultDocumentName
	}

	s.log.Info("starting OCR processing", zap.String("filename", filename))

	var fileID string
	defer func() {
		if fileID != "" {
			s.cleanup(ctx, fileID)
		}
	}()

	uploaded, err := s.provider.Upload(ctx, filename, data)
	if err != nil {
		return "", s.fail(err)
	}
	if uploaded.ID == "" {
		return "", s.fail(fmt.Errorf("Invalid response from Mistral API: %s", uploaded.Raw))
	}
	fileID = uploaded.ID

	signedURL, err := s.provider.SignedURL(ctx, fileID)
	if err != nil {
		return "", s.fail(err)
	}
	s.log.Info("file uploaded", zap.String("file_id", fileID))

	result, err := s.provider.Process(ctx, signedURL)
	if err != nil {
		return "", s.fail(err)
	}
	s.log.Info("OCR processing completed", zap.String("file_id", fileID))

	if result == nil || len(result.Pages) == 0 {
		s.log.Warn("OCR response contains no pages", zap.String("file_id", fileID))
		return "", nil
	}
	return CombineMarkdown(result.Pages), nil
}

func (s *Service) fail(err error) error {
	s.log.Error("OCR processing failed", zap.Error(err))
	return apperr.WrapOCR(err, failurePrefix)
}

// cleanup is best effort and survives request cancellation.
func (s *Service) cleanup(ctx context.Context, fileID string) {
	if err := s.provider.Delete(context.WithoutCancel(ctx), fileID); err != nil {
		s.log.Error("failed to delete remote file", zap.String("file_id", fileID), zap.Error(err))
		return
	}
	s.log.Info("cleaned up remote file", zap.String("file_id", fileID))
}
