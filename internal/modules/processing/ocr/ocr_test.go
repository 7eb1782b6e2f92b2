package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeProvider struct {
	uploadID   string
	uploadErr  error
	signedErr  error
	processErr error
	deleteErr  error
	result     *Result

	uploadedName string
	processedURL string
	deleted      []string
	deleteCtxErr error
}

func (f *fakeProvider) Upload(_ context.Context, filename string, _ []byte) (UploadedFile, error) {
	f.uploadedName = filename
	if f.uploadErr != nil {
		return UploadedFile{}, f.uploadErr
	}
	return UploadedFile{ID: f.uploadID, Raw: `{"object":"file"}`}, nil
}

func (f *fakeProvider) SignedURL(_ context.Context, fileID string) (string, error) {
	if f.signedErr != nil {
		return "", f.signedErr
	}
	return "https://signed.example/" + fileID, nil
}

func (f *fakeProvider) Process(_ context.Context, documentURL string) (*Result, error) {
	f.processedURL = documentURL
	if f.processErr != nil {
		return nil, f.processErr
	}
	return f.result, nil
}

func (f *fakeProvider) Delete(ctx context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	f.deleteCtxErr = ctx.Err()
	return f.deleteErr
}

func TestProcessPDFCombinesPages(t *testing.T) {
	p := &fakeProvider{
		uploadID: "file-1",
		result: &Result{Pages: []Page{
			{Index: 0, Markdown: "# Title\n\n![img-0.jpeg](img-0.jpeg)", Images: []Image{{ID: "img-0.jpeg", ImageBase64: "QUJD"}}},
			{Index: 1, Markdown: "Second page"},
		}},
	}

	out, err := NewService(p, zap.NewNop()).ProcessPDF(context.Background(), "paper.pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)

	assert.Equal(t, "# Title\n\n![img-0.jpeg](data:image/png;base64,QUJD)\n\nSecond page", out)
	assert.Equal(t, "paper.pdf", p.uploadedName)
	assert.Equal(t, "https://signed.example/file-1", p.processedURL)
	assert.Equal(t, []string{"file-1"}, p.deleted)
}

func TestProcessPDFDefaultsFilename(t *testing.T) {
	p := &fakeProvider{uploadID: "file-1", result: &Result{Pages: []Page{{Markdown: "x"}}}}

	_, err := NewService(p, nil).ProcessPDF(context.Background(), "", []byte("%PDF-"))
	require.NoError(t, err)
	assert.Equal(t, "document.pdf", p.uploadedName)
}

func TestProcessPDFZeroPages(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := &fakeProvider{uploadID: "file-1", result: &Result{}}

	out, err := NewService(p, zap.New(core)).ProcessPDF(context.Background(), "a.pdf", []byte("%PDF-"))
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, 1, logs.FilterMessage("OCR response contains no pages").Len())
	assert.Equal(t, []string{"file-1"}, p.deleted)
}

func TestProcessPDFEmptyInput(t *testing.T) {
	p := &fakeProvider{uploadID: "file-1"}

	_, err := NewService(p, nil).ProcessPDF(context.Background(), "a.pdf", nil)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindOCRProcessing))
	assert.Equal(t, "Empty PDF bytes provided", err.Error())
	assert.Empty(t, p.uploadedName)
	assert.Empty(t, p.deleted)
}

func TestProcessPDFFailures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name        string
		provider    *fakeProvider
		wantMsg     string
		wantDeleted []string
	}{
		{
			name:     "upload fails",
			provider: &fakeProvider{uploadErr: boom},
			wantMsg:  "Failed to process PDF with OCR: boom",
		},
		{
			name:     "upload without id",
			provider: &fakeProvider{},
			wantMsg:  `Failed to process PDF with OCR: Invalid response from Mistral API: {"object":"file"}`,
		},
		{
			name:        "signed url fails",
			provider:    &fakeProvider{uploadID: "file-2", signedErr: boom},
			wantMsg:     "Failed to process PDF with OCR: boom",
			wantDeleted: []string{"file-2"},
		},
		{
			name:        "ocr fails",
			provider:    &fakeProvider{uploadID: "file-3", processErr: boom},
			wantMsg:     "Failed to process PDF with OCR: boom",
			wantDeleted: []string{"file-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.provider, nil).ProcessPDF(context.Background(), "a.pdf", []byte("%PDF-"))
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindOCRProcessing))
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.wantDeleted, tt.provider.deleted)
		})
	}
}

func TestProcessPDFDeleteFailureIsSwallowed(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	p := &fakeProvider{
		uploadID:  "file-9",
		deleteErr: errors.New("gone already"),
		result:    &Result{Pages: []Page{{Markdown: "text"}}},
	}

	out, err := NewService(p, zap.New(core)).ProcessPDF(context.Background(), "a.pdf", []byte("%PDF-"))
	require.NoError(t, err)
	assert.Equal(t, "text", out)
	assert.Equal(t, 1, logs.FilterMessage("failed to delete remote file").Len())
}

func TestProcessPDFCleanupSurvivesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &fakeProvider{uploadID: "file-7", processErr: context.Canceled}

	_, err := NewService(p, nil).ProcessPDF(ctx, "a.pdf", []byte("%PDF-"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"file-7"}, p.deleted)
	assert.NoError(t, p.deleteCtxErr)
}
