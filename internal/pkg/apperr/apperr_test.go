package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapOCRKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapOCR(cause, "Failed to process PDF with OCR")

	assert.Equal(t, "Failed to process PDF with OCR: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindOCRProcessing, KindOf(err))
}

func TestKindOfThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("extract: %w", WrapInsights(errors.New("boom"), "Failed to generate insights"))

	require.True(t, Is(err, KindAIInsights))
	assert.False(t, Is(err, KindOCRProcessing))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindUnknown))
}

func TestTypeNames(t *testing.T) {
	tests := map[Kind]string{
		KindConfiguration:  "ConfigurationError",
		KindFileProcessing: "FileProcessingError",
		KindOCRProcessing:  "OCRProcessingError",
		KindAIInsights:     "AIInsightsError",
		KindValidation:     "ValidationError",
		KindUnknown:        "InternalServerError",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.TypeName())
	}
}
