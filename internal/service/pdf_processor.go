package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doc-translator/internal/domain"

	"github.com/gen2brain/go-fitz"
)

const defaultPageTimeout = 90 * time.Second

// PDFProcessor extracts PDF text with MuPDF. Page texts are concatenated in
// order without a separator.
type PDFProcessor struct {
	logger      domain.Logger
	fallback    domain.TextExtractor
	pageTimeout time.Duration
}

// NewPDFProcessor creates a new PDF processor. fallback may be nil; when set
// it is used if MuPDF cannot open the document.
func NewPDFProcessor(logger domain.Logger, fallback domain.TextExtractor) *PDFProcessor {
	return &PDFProcessor{
		logger:      logger,
		fallback:    fallback,
		pageTimeout: defaultPageTimeout,
	}
}

// SupportsFormat implements domain.TextExtractor
func (p *PDFProcessor) SupportsFormat(format domain.SourceFormat) bool {
	return format == domain.SourceFormatPDF
}

// Extract implements domain.TextExtractor
func (p *PDFProcessor) Extract(ctx context.Context, path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		if p.fallback != nil {
			p.logger.Warn("MuPDF could not open PDF; using fallback reader", "path", path, "error", err)
			return p.fallback.Extract(ctx, path)
		}
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	type pageResult struct {
		text string
		err  error
	}

	// doc must outlive a page call that is still running in the background.
	var inflight chan pageResult
	defer func() {
		if inflight == nil {
			doc.Close()
			return
		}
		go func(ch chan pageResult) {
			<-ch
			doc.Close()
		}(inflight)
	}()

	numPages := doc.NumPage()
	var sb strings.Builder

	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)
		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			t, e := doc.Text(idx)
			resultCh <- pageResult{text: t, err: e}
		}(pageNum)

		timer := time.NewTimer(p.pageTimeout)
		select {
		case res := <-resultCh:
			timer.Stop()
			if res.err != nil {
				p.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", res.err)
				continue
			}
			sb.WriteString(res.text)
		case <-timer.C:
			inflight = resultCh
			p.logger.Warn("PDF page extraction timeout; keeping text extracted so far", "page", pageNum+1, "total", numPages, "timeout_sec", int(p.pageTimeout.Seconds()))
			return sanitizeText(normalizeNewlines(sb.String())), nil
		case <-ctx.Done():
			timer.Stop()
			inflight = resultCh
			return "", ctx.Err()
		}
	}

	return sanitizeText(normalizeNewlines(sb.String())), nil
}
