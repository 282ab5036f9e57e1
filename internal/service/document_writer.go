package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"doc-translator/internal/domain"
)

// TextWriter writes translated text as UTF-8.
type TextWriter struct{}

// NewTextWriter creates a plain text writer
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Format implements domain.DocumentWriter
func (w *TextWriter) Format() domain.OutputFormat {
	return domain.OutputFormatText
}

// Write implements domain.DocumentWriter
func (w *TextWriter) Write(path string, text string) error {
	return writeFileAtomic(path, func(f io.Writer) error {
		_, err := io.WriteString(f, text)
		return err
	})
}

// DOCXWriter writes translated text as a Word document holding a single
// paragraph. Newlines become line breaks inside that paragraph.
type DOCXWriter struct {
	now func() time.Time
}

// NewDOCXWriter creates a DOCX writer
func NewDOCXWriter() *DOCXWriter {
	return &DOCXWriter{now: time.Now}
}

// Format implements domain.DocumentWriter
func (w *DOCXWriter) Format() domain.OutputFormat {
	return domain.OutputFormatDOCX
}

// Write implements domain.DocumentWriter
func (w *DOCXWriter) Write(path string, text string) error {
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxPackageRels},
		{"word/document.xml", docxDocument(text)},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"docProps/core.xml", docxCoreProps(w.now().UTC())},
	}

	return writeFileAtomic(path, func(f io.Writer) error {
		zw := zip.NewWriter(f)
		for _, part := range parts {
			pw, err := zw.Create(part.name)
			if err != nil {
				return fmt.Errorf("creating %s: %w", part.name, err)
			}
			if _, err := io.WriteString(pw, part.body); err != nil {
				return fmt.Errorf("writing %s: %w", part.name, err)
			}
		}
		return zw.Close()
	})
}

// NewDocumentWriters returns the writers for every output format.
func NewDocumentWriters() map[domain.OutputFormat]domain.DocumentWriter {
	return map[domain.OutputFormat]domain.DocumentWriter{
		domain.OutputFormatText: NewTextWriter(),
		domain.OutputFormatDOCX: NewDOCXWriter(),
	}
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it into place, so readers never see a partial file.
func writeFileAtomic(path string, fill func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := fill(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func docxDocument(text string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	b.WriteString(`<w:body><w:p><w:r>`)
	b.WriteString(docxRunContent(text))
	b.WriteString(`</w:r></w:p>`)
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>`)
	b.WriteString(`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>`)
	b.WriteString(`</w:sectPr></w:body></w:document>`)
	return b.String()
}

// docxRunContent splits text into w:t segments separated by w:br and w:tab.
func docxRunContent(text string) string {
	text = normalizeNewlines(text)

	var b strings.Builder
	var seg strings.Builder
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escapeXML(seg.String()))
		b.WriteString(`</w:t>`)
		seg.Reset()
	}

	for _, r := range text {
		switch r {
		case '\n':
			flush()
			b.WriteString(`<w:br/>`)
		case '\t':
			flush()
			b.WriteString(`<w:tab/>`)
		default:
			seg.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

func docxCoreProps(created time.Time) string {
	stamp := created.Format(time.RFC3339)
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>Translated document</dc:title>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(sanitizeText(s)))
	return buf.String()
}
