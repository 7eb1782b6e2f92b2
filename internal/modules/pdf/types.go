package pdf

import "context"

// ProcessResponse is returned by POST /api/process-pdf/.
type ProcessResponse struct {
	Insights string `json:"insights"`
	Filename string `json:"filename,omitempty"`
}

// ExtractResponse is returned by POST /api/extract-text/.
type ExtractResponse struct {
	ExtractedContent string `json:"extracted_content"`
	Filename         string `json:"filename,omitempty"`
}

// Extractor converts PDF bytes to markdown.
type Extractor interface {
	ProcessPDF(ctx context.Context, filename string, data []byte) (string, error)
}

// InsightsGenerator summarizes extracted markdown.
type InsightsGenerator interface {
	Generate(ctx context.Context, extracted string) (string, error)
}

// ContentStore persists extracted markdown.
type ContentStore interface {
	Save(ctx context.Context, content, originalFilename string) (string, error)
}
