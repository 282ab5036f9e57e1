package domain

import "errors"

// Domain errors
var (
	ErrMissingFile         = errors.New("file is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidFilename     = errors.New("invalid filename")
	ErrMissingLanguage     = errors.New("target language is required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrTextTooLong         = errors.New("text exceeds translation limit")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileTooLarge        = errors.New("file too large")
	ErrEmptyTranslation    = errors.New("translation not found in provider response")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Unwrap exposes the sentinel behind the validation failure.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
