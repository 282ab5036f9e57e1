package translate

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"doc-translator/internal/domain"
)

// MaxCharacters is the provider's single-request limit. Text of this length
// or longer is rejected before any network call.
const MaxCharacters = 5000

// Guard wraps a provider with the checks every translation goes through.
type Guard struct {
	next   domain.Translator
	logger domain.Logger
}

// NewGuard wraps next.
func NewGuard(next domain.Translator, logger domain.Logger) *Guard {
	return &Guard{next: next, logger: logger}
}

// Name implements domain.Translator
func (g *Guard) Name() string {
	return g.next.Name()
}

// Translate returns whitespace-only text unchanged. Otherwise the text is
// trimmed and sent to the wrapped provider exactly once.
func (g *Guard) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if n := utf8.RuneCountInString(text); n >= MaxCharacters {
		return "", fmt.Errorf("%w: %d characters, limit is %d", domain.ErrTextTooLong, n, MaxCharacters-1)
	}

	code, err := domain.NormalizeLanguage(targetLanguage)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		g.logger.Debug("Skipping translation of empty text", "provider", g.next.Name())
		return text, nil
	}

	return g.next.Translate(ctx, trimmed, code)
}
