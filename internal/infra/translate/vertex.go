package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"

	"cloud.google.com/go/vertexai/genai"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Vertex AI defaults.
const (
	DefaultVertexModel    = "gemini-2.0-flash-001"
	DefaultVertexLocation = "us-central1"
)

const vertexScope = "https://www.googleapis.com/auth/cloud-platform"

// contentGenerator is the part of *genai.GenerativeModel the translator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// VertexOptions configures NewVertexTranslator.
type VertexOptions struct {
	ProjectID string
	Location  string
	Model     string
}

// VertexTranslator translates with a Gemini model on Vertex AI.
type VertexTranslator struct {
	client *genai.Client
	model  contentGenerator
	name   string
	logger domain.Logger
}

// NewVertexTranslator creates a Gemini translator. Credentials come from
// Application Default Credentials.
func NewVertexTranslator(ctx context.Context, opts VertexOptions, logger domain.Logger) (*VertexTranslator, error) {
	if opts.ProjectID == "" {
		return nil, fmt.Errorf("Vertex AI project not configured")
	}
	if opts.Location == "" {
		opts.Location = DefaultVertexLocation
	}
	if opts.Model == "" {
		opts.Model = DefaultVertexModel
	}

	creds, err := google.FindDefaultCredentials(ctx, vertexScope)
	if err != nil {
		return nil, fmt.Errorf("failed to get default credentials: %w", err)
	}

	client, err := genai.NewClient(ctx, opts.ProjectID, opts.Location, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(openAISystemPrompt)},
	}
	model.SetTemperature(0.2)

	t := newVertexTranslator(model, opts.Model, logger)
	t.client = client
	return t, nil
}

func newVertexTranslator(model contentGenerator, name string, logger domain.Logger) *VertexTranslator {
	return &VertexTranslator{model: model, name: name, logger: logger}
}

// Name implements domain.Translator
func (t *VertexTranslator) Name() string {
	return "vertex"
}

// Close releases the underlying client.
func (t *VertexTranslator) Close() error {
	if t.client == nil {
		return nil
	}
	return t.client.Close()
}

// Translate implements domain.Translator
func (t *VertexTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf("Target language: %s (%s)\n\n%s",
		domain.LanguageName(targetLanguage), targetLanguage, text)

	t.logger.Debug("Calling Vertex AI", "model", t.name, "target_language", targetLanguage)
	resp, err := t.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyVertexError(err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.NewUpstreamError("No translation returned", domain.ErrEmptyTranslation)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if s, ok := part.(genai.Text); ok {
			sb.WriteString(string(s))
		}
	}
	translation := strings.TrimSpace(sb.String())
	if translation == "" {
		return "", apperrors.NewUpstreamError("No translation returned", domain.ErrEmptyTranslation)
	}
	return translation, nil
}

func classifyVertexError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewNetworkError("Translation service unreachable", err)
	}
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return apperrors.NewUpstreamError("Translation blocked by provider", err)
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return apperrors.NewNetworkError("Translation service unreachable", err)
	case codes.ResourceExhausted:
		return apperrors.NewUpstreamError("Translation service rate limit reached", err)
	}
	return apperrors.NewUpstreamError("Translation service request failed", err)
}
