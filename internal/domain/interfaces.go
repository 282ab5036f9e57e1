package domain

import (
	"context"
	"io"
	"os"
	"time"
)

// TextExtractor pulls plain text out of a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
	SupportsFormat(format SourceFormat) bool
}

// Translator sends text to a translation provider. Source language is auto-detected.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	Name() string
}

// DocumentWriter renders translated text into an output file.
type DocumentWriter interface {
	Write(path string, text string) error
	Format() OutputFormat
}

// FileStorage is a flat directory of named files.
type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Path(name string) (string, error)
	Open(name string) (*os.File, error)
	Root() string
	EnsureDir() error
}

// TranslationService is the use case behind both the web form and the JSON API.
type TranslationService interface {
	Translate(ctx context.Context, req *TranslationRequest) (*TranslationResult, error)
	Languages() []Language
	OpenOutput(name string) (*os.File, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetTranslatedPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetTranslatorProvider() string
	GetGoogleTranslateURL() string
	GetTranslateTimeout() time.Duration
	GetOpenAIAPIKey() string
	GetOpenAIModel() string
	GetOpenAIBaseURL() string
	GetVertexProject() string
	GetVertexLocation() string
	GetVertexModel() string
	GetPDFEngine() string
	GetCORSAllowedOrigins() []string
}
