package translate

import (
	"context"
	"strings"
	"testing"

	"doc-translator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_EmptyTextPassthrough(t *testing.T) {
	next := &recordingTranslator{}
	g := NewGuard(next, nopLogger{})

	for _, text := range []string{"", "   ", "\n\t\n"} {
		got, err := g.Translate(context.Background(), text, "fr")
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
	assert.Equal(t, 0, next.calls)
}

func TestGuard_LengthLimit(t *testing.T) {
	next := &recordingTranslator{}
	g := NewGuard(next, nopLogger{})

	_, err := g.Translate(context.Background(), strings.Repeat("a", MaxCharacters), "fr")
	require.ErrorIs(t, err, domain.ErrTextTooLong)
	assert.Equal(t, 0, next.calls)

	// limit counts characters, not bytes
	_, err = g.Translate(context.Background(), strings.Repeat("é", MaxCharacters-1), "fr")
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
}

func TestGuard_TrimsAndNormalizesLanguage(t *testing.T) {
	next := &recordingTranslator{}
	g := NewGuard(next, nopLogger{})

	got, err := g.Translate(context.Background(), "  hello \n", "German")
	require.NoError(t, err)
	assert.Equal(t, "translated", got)
	assert.Equal(t, "hello", next.lastText)
	assert.Equal(t, "de", next.lastLang)
	assert.Equal(t, "recording", g.Name())
}

func TestGuard_RejectsUnknownLanguage(t *testing.T) {
	next := &recordingTranslator{}
	g := NewGuard(next, nopLogger{})

	_, err := g.Translate(context.Background(), "hello", "elvish")
	require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
	assert.Equal(t, 0, next.calls)
}
