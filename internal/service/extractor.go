package service

import (
	"context"
	"fmt"

	"doc-translator/internal/domain"
)

// ExtractorRegistry dispatches a stored upload to the extractor for its format.
type ExtractorRegistry struct {
	extractors map[domain.SourceFormat]domain.TextExtractor
}

// NewExtractorRegistry creates an empty registry
func NewExtractorRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{extractors: make(map[domain.SourceFormat]domain.TextExtractor)}
}

// NewDefaultExtractorRegistry registers the txt, docx and pdf extractors.
// pdfEngine selects "native" for the pure Go reader; anything else uses MuPDF
// with the native reader as fallback.
func NewDefaultExtractorRegistry(pdfEngine string, logger domain.Logger) *ExtractorRegistry {
	r := NewExtractorRegistry()
	r.Register(domain.SourceFormatText, NewPlainTextExtractor())
	r.Register(domain.SourceFormatDOCX, NewDOCXExtractor())

	native := NewNativePDFExtractor(logger)
	if pdfEngine == "native" {
		r.Register(domain.SourceFormatPDF, native)
	} else {
		r.Register(domain.SourceFormatPDF, NewPDFProcessor(logger, native))
	}
	return r
}

// Register sets the extractor for a format, replacing any previous one.
func (r *ExtractorRegistry) Register(format domain.SourceFormat, e domain.TextExtractor) {
	r.extractors[format] = e
}

// Get returns the extractor for a format.
func (r *ExtractorRegistry) Get(format domain.SourceFormat) (domain.TextExtractor, error) {
	e, ok := r.extractors[format]
	if !ok || !e.SupportsFormat(format) {
		return nil, fmt.Errorf("no extractor for format %q: %w", format, domain.ErrUnsupportedFileType)
	}
	return e, nil
}

// Extract runs the extractor registered for format on the file at path.
func (r *ExtractorRegistry) Extract(ctx context.Context, format domain.SourceFormat, path string) (string, error) {
	e, err := r.Get(format)
	if err != nil {
		return "", err
	}
	return e.Extract(ctx, path)
}
