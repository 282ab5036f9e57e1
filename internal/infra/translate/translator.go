package translate

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"doc-translator/internal/domain"
)

// Provider names accepted by NewTranslator.
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"
)

// NewTranslator builds the configured provider wrapped in a Guard.
func NewTranslator(cfg domain.Config, logger domain.Logger) (*Guard, error) {
	client := &http.Client{Timeout: cfg.GetTranslateTimeout()}

	switch provider := strings.ToLower(strings.TrimSpace(cfg.GetTranslatorProvider())); provider {
	case "", ProviderGoogle:
		return NewGuard(NewGoogleTranslator(cfg.GetGoogleTranslateURL(), client, logger), logger), nil
	case ProviderOpenAI:
		t, err := NewOpenAITranslator(OpenAIOptions{
			APIKey:     cfg.GetOpenAIAPIKey(),
			Model:      cfg.GetOpenAIModel(),
			BaseURL:    cfg.GetOpenAIBaseURL(),
			HTTPClient: client,
		}, logger)
		if err != nil {
			return nil, err
		}
		return NewGuard(t, logger), nil
	case ProviderVertex:
		t, err := NewVertexTranslator(context.Background(), VertexOptions{
			ProjectID: cfg.GetVertexProject(),
			Location:  cfg.GetVertexLocation(),
			Model:     cfg.GetVertexModel(),
		}, logger)
		if err != nil {
			return nil, err
		}
		return NewGuard(t, logger), nil
	default:
		return nil, fmt.Errorf("unknown translator provider %q", provider)
	}
}
