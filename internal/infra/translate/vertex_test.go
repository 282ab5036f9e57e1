package translate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeGenerator returns a canned response and records the prompt.
type fakeGenerator struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	for _, p := range parts {
		if s, ok := p.(genai.Text); ok {
			f.prompt += string(s)
		}
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestVertexTranslator_Translate(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("Bonjour ", "le monde\n")}
	tr := newVertexTranslator(gen, DefaultVertexModel, nopLogger{})

	out, err := tr.Translate(context.Background(), "Hello world", "fr")
	require.NoError(t, err)

	assert.Equal(t, "Bonjour le monde", out)
	assert.Equal(t, "vertex", tr.Name())
	assert.Contains(t, gen.prompt, "Target language: french (fr)")
	assert.Contains(t, gen.prompt, "Hello world")
}

func TestVertexTranslator_EmptyResponse(t *testing.T) {
	tests := map[string]*genai.GenerateContentResponse{
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{}}},
		"blank text":    textResponse("  "),
	}

	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newVertexTranslator(&fakeGenerator{resp: resp}, DefaultVertexModel, nopLogger{})

			_, err := tr.Translate(context.Background(), "Hello", "de")
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstream))
			assert.True(t, errors.Is(err, domain.ErrEmptyTranslation))
		})
	}
}

func TestVertexTranslator_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.ErrorType
	}{
		{"unavailable", status.Error(codes.Unavailable, "connection refused"), apperrors.ErrorTypeNetwork},
		{"deadline", context.DeadlineExceeded, apperrors.ErrorTypeNetwork},
		{"quota", status.Error(codes.ResourceExhausted, "quota"), apperrors.ErrorTypeUpstream},
		{"permission", status.Error(codes.PermissionDenied, "denied"), apperrors.ErrorTypeUpstream},
		{"blocked", &genai.BlockedError{}, apperrors.ErrorTypeUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newVertexTranslator(&fakeGenerator{err: tt.err}, DefaultVertexModel, nopLogger{})

			_, err := tr.Translate(context.Background(), "Hello", "es")
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.want), "got %v", err)
		})
	}
}

func TestNewVertexTranslator_Configuration(t *testing.T) {
	_, err := NewVertexTranslator(context.Background(), VertexOptions{}, nopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project")

	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", filepath.Join(t.TempDir(), "missing.json"))
	_, err = NewVertexTranslator(context.Background(), VertexOptions{ProjectID: "demo"}, nopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default credentials")
}

func TestVertexTranslator_CloseWithoutClient(t *testing.T) {
	tr := newVertexTranslator(&fakeGenerator{}, DefaultVertexModel, nopLogger{})
	assert.NoError(t, tr.Close())
}
