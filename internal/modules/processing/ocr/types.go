package ocr

import "context"

// DefaultModel is the OCR model requested for every document.
const DefaultModel = "mistral-ocr-latest"

// UploadedFile is the provider's handle on a temporary upload.
type UploadedFile struct {
	ID  string
	Raw string
}

// Image is an image extracted from a page. ImageBase64 is empty unless the
// provider was asked to inline images.
type Image struct {
	ID          string `json:"id"`
	ImageBase64 string `json:"image_base64"`
}

// Page is one page of OCR output.
type Page struct {
	Index    int     `json:"index"`
	Markdown string  `json:"markdown"`
	Images   []Image `json:"images"`
}

// Result is the OCR response for a whole document.
type Result struct {
	Pages []Page `json:"pages"`
	Model string `json:"model"`
}

// Provider is the remote OCR service.
type Provider interface {
	Upload(ctx context.Context, filename string, data []byte) (UploadedFile, error)
	SignedURL(ctx context.Context, fileID string) (string, error)
	Process(ctx context.Context, documentURL string) (*Result, error)
	Delete(ctx context.Context, fileID string) error
}
