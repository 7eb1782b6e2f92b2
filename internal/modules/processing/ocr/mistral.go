package ocr

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"

	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
)

const (
	purposeOCR       = "ocr"
	signedURLExpiry  = "1"
	pdfContentType   = "application/pdf"
	documentURLChunk = "document_url"
)

// MistralClient talks to the Mistral files and OCR endpoints. The API is
// OpenAI-compatible for auth and file uploads, so the OpenAI SDK handles the
// transport.
type MistralClient struct {
	client openaiclient.Client
	model  string
}

// NewMistralClient builds a client against baseURL, e.g. https://api.mistral.ai/v1/.
func NewMistralClient(apiKey, baseURL string, opts ...openaioption.RequestOption) *MistralClient {
	reqOpts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if base := strings.TrimSpace(baseURL); base != "" {
		reqOpts = append(reqOpts, openaioption.WithBaseURL(base))
	}
	reqOpts = append(reqOpts, opts...)

	return &MistralClient{
		client: openaiclient.NewClient(reqOpts...),
		model:  DefaultModel,
	}
}

func (m *MistralClient) Upload(ctx context.Context, filename string, data []byte) (UploadedFile, error) {
	file, err := m.client.Files.New(ctx, openaiclient.FileNewParams{
		File:    openaiclient.File(bytes.NewReader(data), filename, pdfContentType),
		Purpose: openaiclient.FilePurpose(purposeOCR),
	})
	if err != nil {
		return UploadedFile{}, err
	}
	if file == nil {
		return UploadedFile{}, errors.New("empty upload response")
	}
	return UploadedFile{ID: file.ID, Raw: file.RawJSON()}, nil
}

func (m *MistralClient) SignedURL(ctx context.Context, fileID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := m.client.Get(ctx, "files/"+url.PathEscape(fileID)+"/url", nil, &out,
		openaioption.WithQuery("expiry", signedURLExpiry),
	)
	if err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", errors.New("signed url response has no url")
	}
	return out.URL, nil
}

type ocrDocument struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url"`
}

type ocrRequest struct {
	Model              string      `json:"model"`
	Document           ocrDocument `json:"document"`
	IncludeImageBase64 bool        `json:"include_image_base64"`
}

func (m *MistralClient) Process(ctx context.Context, documentURL string) (*Result, error) {
	req := ocrRequest{
		Model:              m.model,
		Document:           ocrDocument{Type: documentURLChunk, DocumentURL: documentURL},
		IncludeImageBase64: false,
	}
	var res Result
	if err := m.client.Post(ctx, "ocr", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (m *MistralClient) Delete(ctx context.Context, fileID string) error {
	_, err := m.client.Files.Delete(ctx, fileID)
	return err
}
