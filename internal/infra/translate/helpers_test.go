package translate

import (
	"context"
	"time"

	"doc-translator/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{}) {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{}) {}
func (nopLogger) Warn(msg string, fields ...interface{}) {}

type stubConfig struct {
	provider  string
	googleURL string
	apiKey    string
	model     string
	baseURL   string
	project   string
}

func (c stubConfig) GetServerPort() string { return "5000" }
func (c stubConfig) GetUploadPath() string { return "uploads" }
func (c stubConfig) GetTranslatedPath() string { return "translated" }
func (c stubConfig) GetMaxFileSize() int64 { return 1 << 20 }
func (c stubConfig) GetLogLevel() string { return "info" }
func (c stubConfig) GetTranslatorProvider() string { return c.provider }
func (c stubConfig) GetGoogleTranslateURL() string { return c.googleURL }
func (c stubConfig) GetTranslateTimeout() time.Duration { return 5 * time.Second }
func (c stubConfig) GetOpenAIAPIKey() string { return c.apiKey }
func (c stubConfig) GetOpenAIModel() string { return c.model }
func (c stubConfig) GetOpenAIBaseURL() string { return c.baseURL }
func (c stubConfig) GetVertexProject() string { return c.project }
func (c stubConfig) GetVertexLocation() string { return "" }
func (c stubConfig) GetVertexModel() string { return "" }
func (c stubConfig) GetPDFEngine() string { return "mupdf" }
func (c stubConfig) GetCORSAllowedOrigins() []string { return []string{"*"} }

// recordingTranslator counts calls made through a Guard.
type recordingTranslator struct {
	calls    int
	lastText string
	lastLang string
}

func (r *recordingTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	r.calls++
	r.lastText = text
	r.lastLang = targetLanguage
	return "translated", nil
}

func (r *recordingTranslator) Name() string { return "recording" }

var _ domain.Translator = (*recordingTranslator)(nil)
