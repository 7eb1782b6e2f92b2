package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies application errors for HTTP mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindFileProcessing
	KindOCRProcessing
	KindAIInsights
	KindValidation
)

// TypeName is the error_type reported to clients.
func (k Kind) TypeName() string {
	switch k {
	case KindConfiguration:
		return "ConfigurationError"
	case KindFileProcessing:
		return "FileProcessingError"
	case KindOCRProcessing:
		return "OCRProcessingError"
	case KindAIInsights:
		return "AIInsightsError"
	case KindValidation:
		return "ValidationError"
	default:
		return "InternalServerError"
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

func WrapConfiguration(err error, format string, args ...any) error {
	return newf(KindConfiguration, err, format, args...)
}

func OCR(format string, args ...any) error {
	return newf(KindOCRProcessing, nil, format, args...)
}

// WrapOCR keeps the cause message after the prefix.
func WrapOCR(err error, prefix string) error {
	return newf(KindOCRProcessing, err, "%s: %v", prefix, err)
}

func WrapInsights(err error, prefix string) error {
	return newf(KindAIInsights, err, "%s: %v", prefix, err)
}

func Validation(format string, args ...any) error {
	return newf(KindValidation, nil, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
