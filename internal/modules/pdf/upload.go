package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/fsutil"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/response"
	"go.uber.org/zap"
)

const (
	// FormField is the multipart field carrying the PDF.
	FormField = "pdf_file"

	msgInvalidType     = "Invalid file type. Please upload a PDF file."
	msgInvalidFilename = "Invalid filename. Please ensure the file has a .pdf extension."
	msgReadFailed      = "Failed to read uploaded file"
	msgNotPDF          = "File does not appear to be a valid PDF"
)

var (
	acceptedContentTypes = map[string]struct{}{
		"application/pdf":   {},
		"application/x-pdf": {},
	}
	pdfSignature = []byte("%PDF-")
)

type upload struct {
	filename string
	data     []byte
}

// readUpload validates the multipart PDF in order: content type, filename,
// readability, size, signature. On failure the response is already written.
func (h *Handler) readUpload(c *gin.Context) (*upload, bool) {
	fh, err := c.FormFile(FormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.FailTyped(c, http.StatusUnprocessableEntity, "Field required: "+FormField, apperr.KindValidation.TypeName())
			return nil, false
		}
		h.log.Error("failed to parse multipart upload", zap.Error(err))
		response.BadRequest(c, msgReadFailed)
		return nil, false
	}

	contentType := fh.Header.Get("Content-Type")
	if _, ok := acceptedContentTypes[contentType]; !ok {
		h.log.Warn("invalid file type uploaded", zap.String("content_type", contentType))
		response.BadRequest(c, msgInvalidType)
		return nil, false
	}

	if fh.Filename == "" || !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		h.log.Warn("invalid filename", zap.String("filename", fh.Filename))
		response.BadRequest(c, msgInvalidFilename)
		return nil, false
	}

	data, err := readLimited(fh, h.maxFileSize)
	if err != nil {
		h.log.Error("failed to read uploaded file", zap.Error(err))
		response.BadRequest(c, msgReadFailed)
		return nil, false
	}

	if int64(len(data)) > h.maxFileSize {
		h.log.Warn("file too large", zap.String("size", fsutil.FormatFileSize(fh.Size)))
		response.PayloadTooLarge(c, "File too large. Maximum size: "+fsutil.FormatFileSize(h.maxFileSize))
		return nil, false
	}

	if !bytes.HasPrefix(data, pdfSignature) {
		h.log.Warn("file does not appear to be a valid PDF", zap.String("detected", mimetype.Detect(data).String()))
		response.BadRequest(c, msgNotPDF)
		return nil, false
	}

	return &upload{filename: fh.Filename, data: data}, true
}

// readLimited reads at most limit+1 bytes so oversize uploads are detected
// without buffering them whole.
func readLimited(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
