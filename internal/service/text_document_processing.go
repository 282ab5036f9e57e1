package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"doc-translator/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PlainTextExtractor reads .txt uploads as UTF-8.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a plain text extractor
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// SupportsFormat implements domain.TextExtractor
func (e *PlainTextExtractor) SupportsFormat(format domain.SourceFormat) bool {
	return format == domain.SourceFormatText
}

// Extract returns the file content with line endings normalised to \n.
// Invalid UTF-8 sequences are dropped.
func (e *PlainTextExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	text := string(bytes.ToValidUTF8(data, []byte{}))
	return sanitizeText(normalizeNewlines(text)), nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// sanitizeText removes NUL and other control characters that are not
// whitespace, plus any surrogate code points.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			// control character
		case r >= 0xD800 && r <= 0xDFFF:
			// surrogate
		case r == 0xFFFD:
			// replacement character left by a broken decoder
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
