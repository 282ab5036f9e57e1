package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT4oMini

const openAISystemPrompt = "You are a translation engine. Detect the language of the user's text and translate it. " +
	"Respond with only the translation. Keep line breaks and do not add notes, quotes or explanations."

// OpenAITranslator translates through the Chat Completions API.
type OpenAITranslator struct {
	client *openai.Client
	model  string
	logger domain.Logger
}

// OpenAIOptions configures NewOpenAITranslator.
type OpenAIOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewOpenAITranslator creates a Chat Completions translator. BaseURL may point
// at any OpenAI compatible endpoint.
func NewOpenAITranslator(opts OpenAIOptions, logger domain.Logger) (*OpenAITranslator, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}

	model := opts.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}, nil
}

// Name implements domain.Translator
func (t *OpenAITranslator) Name() string {
	return "openai"
}

// Translate implements domain.Translator
func (t *OpenAITranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: openAISystemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Target language: %s (%s)\n\n%s",
					domain.LanguageName(targetLanguage), targetLanguage, text),
			},
		},
		Temperature: 0.2,
	}

	t.logger.Debug("Calling OpenAI chat completion", "model", t.model, "target_language", targetLanguage)
	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewUpstreamError("No translation returned", domain.ErrEmptyTranslation)
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", apperrors.NewUpstreamError("No translation returned", domain.ErrEmptyTranslation)
	}
	return translation, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return apperrors.NewUpstreamError("Translation service rate limit reached", err)
		}
		return apperrors.NewUpstreamError("Translation service request failed", err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apperrors.NewUpstreamError("Translation service request failed", err)
	}
	return apperrors.NewNetworkError("Translation service unreachable", err)
}
