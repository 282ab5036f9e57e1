package service

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"doc-translator/internal/domain"
)

const wordDocumentPart = "word/document.xml"

// DOCXExtractor returns the text of the body paragraphs of a .docx file,
// joined with "\n". Table cells, headers and footers are not included.
type DOCXExtractor struct{}

// NewDOCXExtractor creates a DOCX extractor
func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

// SupportsFormat implements domain.TextExtractor
func (e *DOCXExtractor) SupportsFormat(format domain.SourceFormat) bool {
	return format == domain.SourceFormatDOCX
}

// Extract implements domain.TextExtractor
func (e *DOCXExtractor) Extract(ctx context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening DOCX: %w", err)
	}
	defer zr.Close()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == wordDocumentPart {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%s not found in DOCX", wordDocumentPart)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", wordDocumentPart, err)
	}
	defer rc.Close()

	paragraphs, err := readBodyParagraphs(ctx, rc)
	if err != nil {
		return "", fmt.Errorf("parsing DOCX XML: %w", err)
	}
	return sanitizeText(strings.Join(paragraphs, "\n")), nil
}

// docxFrame is one open element while streaming document.xml.
type docxFrame struct {
	name string
	// run marks a w:r whose content belongs to the current body paragraph.
	run bool
}

// readBodyParagraphs collects the text of every w:p that is a direct child
// of w:body. Only runs directly under that paragraph, or under a w:hyperlink
// directly under it, contribute; text boxes and other nested content do not.
func readBodyParagraphs(ctx context.Context, r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		stack      []docxFrame
		paragraphs []string
		current    strings.Builder
		inBodyPara bool
		inText     bool
	)

	at := func(depth int) string {
		if depth < 0 || depth >= len(stack) {
			return ""
		}
		return stack[depth].name
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			top := len(stack) - 1
			frame := docxFrame{name: name}

			switch {
			case name == "p" && at(top) == "body":
				inBodyPara = true
				current.Reset()
			case inBodyPara && name == "r":
				// w:body/w:p/w:r or w:body/w:p/w:hyperlink/w:r
				direct := at(top) == "p" && at(top-1) == "body"
				linked := at(top) == "hyperlink" && at(top-1) == "p" && at(top-2) == "body"
				frame.run = direct || linked
			case inBodyPara && top >= 0 && stack[top].run:
				switch name {
				case "t":
					inText = true
				case "tab", "ptab":
					current.WriteString("\t")
				case "br":
					current.WriteString(breakText(t))
				case "cr":
					current.WriteString("\n")
				case "noBreakHyphen":
					current.WriteString("-")
				}
			}
			stack = append(stack, frame)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inBodyPara && at(len(stack)-1) == "body" {
					paragraphs = append(paragraphs, current.String())
					inBodyPara = false
				}
			}

		case xml.CharData:
			if inBodyPara && inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

// breakText maps a w:br to text. Only line breaks produce a newline; page
// and column breaks produce nothing.
func breakText(el xml.StartElement) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == "type" && attr.Value != "" && attr.Value != "textWrapping" {
			return ""
		}
	}
	return "\n"
}
