package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"doc-translator/internal/domain"
)

const (
	defaultServerPort       = "5000"
	defaultMaxFileSize      = 16 * 1024 * 1024
	defaultTranslateTimeout = 30 * time.Second
	defaultOpenAIModel      = "gpt-4o-mini"
	defaultVertexLocation   = "us-central1"
	defaultVertexModel      = "gemini-2.0-flash-001"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	UploadPath         string
	TranslatedPath     string
	MaxFileSize        int64
	LogLevel           string
	TranslatorProvider string
	GoogleTranslateURL string
	TranslateTimeout   time.Duration
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIBaseURL      string
	VertexProject      string
	VertexLocation     string
	VertexModel        string
	PDFEngine          string
	CORSAllowedOrigins []string
}

// NewConfig creates a new configuration instance from the environment
func NewConfig() domain.Config {
	return LoadAppConfig()
}

// LoadAppConfig reads the environment into a concrete AppConfig so callers
// can override individual fields.
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		// PaaS platforms provide the listening port via PORT.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", defaultServerPort)),
		UploadPath:         getEnvOrDefault("UPLOAD_PATH", "uploads"),
		TranslatedPath:     getEnvOrDefault("TRANSLATED_PATH", "translated"),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", defaultMaxFileSize),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		TranslatorProvider: strings.ToLower(getEnvOrDefault("TRANSLATOR_PROVIDER", "google")),
		GoogleTranslateURL: getEnvOrDefault("GOOGLE_TRANSLATE_URL", "https://translate.google.com/m"),
		TranslateTimeout:   getEnvDurationOrDefault("TRANSLATE_TIMEOUT", defaultTranslateTimeout),
		OpenAIAPIKey:       getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnvOrDefault("OPENAI_MODEL", defaultOpenAIModel),
		OpenAIBaseURL:      getEnvOrDefault("OPENAI_BASE_URL", ""),
		VertexProject:      getEnvOrDefault("VERTEX_PROJECT", getEnvOrDefault("GOOGLE_CLOUD_PROJECT", "")),
		VertexLocation:     getEnvOrDefault("VERTEX_LOCATION", defaultVertexLocation),
		VertexModel:        getEnvOrDefault("VERTEX_MODEL", defaultVertexModel),
		PDFEngine:          strings.ToLower(getEnvOrDefault("PDF_ENGINE", "mupdf")),
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the upload directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetTranslatedPath returns the directory translated files are written to
func (c *AppConfig) GetTranslatedPath() string {
	return c.TranslatedPath
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetTranslatorProvider returns the translation backend name
func (c *AppConfig) GetTranslatorProvider() string {
	return c.TranslatorProvider
}

// GetGoogleTranslateURL returns the Google Translate endpoint
func (c *AppConfig) GetGoogleTranslateURL() string {
	return c.GoogleTranslateURL
}

// GetTranslateTimeout returns the per-call timeout for the translation provider
func (c *AppConfig) GetTranslateTimeout() time.Duration {
	return c.TranslateTimeout
}

// GetOpenAIAPIKey returns the OpenAI API key
func (c *AppConfig) GetOpenAIAPIKey() string {
	return c.OpenAIAPIKey
}

// GetOpenAIModel returns the chat model used for translation
func (c *AppConfig) GetOpenAIModel() string {
	return c.OpenAIModel
}

// GetOpenAIBaseURL returns an optional OpenAI-compatible base URL
func (c *AppConfig) GetOpenAIBaseURL() string {
	return c.OpenAIBaseURL
}

// GetPDFEngine returns the PDF extraction engine
// GetVertexProject returns the Google Cloud project used for Vertex AI
func (c *AppConfig) GetVertexProject() string {
	return c.VertexProject
}

// GetVertexLocation returns the Vertex AI region
func (c *AppConfig) GetVertexLocation() string {
	return c.VertexLocation
}

// GetVertexModel returns the Gemini model name
func (c *AppConfig) GetVertexModel() string {
	return c.VertexModel
}

func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetCORSAllowedOrigins returns the origins allowed to call the JSON API
func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
