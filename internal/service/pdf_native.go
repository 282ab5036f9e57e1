package service

import (
	"context"
	"fmt"
	"strings"

	"doc-translator/internal/domain"

	"github.com/ledongthuc/pdf"
)

// NativePDFExtractor reads PDFs without cgo.
type NativePDFExtractor struct {
	logger domain.Logger
}

// NewNativePDFExtractor creates a pure Go PDF extractor
func NewNativePDFExtractor(logger domain.Logger) *NativePDFExtractor {
	return &NativePDFExtractor{logger: logger}
}

// SupportsFormat implements domain.TextExtractor
func (e *NativePDFExtractor) SupportsFormat(format domain.SourceFormat) bool {
	return format == domain.SourceFormatPDF
}

// Extract implements domain.TextExtractor
func (e *NativePDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", i, "total", numPages, "error", err)
			continue
		}
		sb.WriteString(text)
	}

	return sanitizeText(normalizeNewlines(sb.String())), nil
}
