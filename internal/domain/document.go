package domain

import (
	"io"
	"strings"
	"time"
)

// SourceFormat is the format of an uploaded document, derived from its extension.
type SourceFormat string

const (
	SourceFormatText SourceFormat = "txt"
	SourceFormatDOCX SourceFormat = "docx"
	SourceFormatPDF  SourceFormat = "pdf"
)

// SupportedSourceFormats lists the upload formats in display order.
var SupportedSourceFormats = []SourceFormat{SourceFormatText, SourceFormatDOCX, SourceFormatPDF}

// ParseSourceFormat maps a file extension (with or without the dot) to a SourceFormat.
func ParseSourceFormat(ext string) (SourceFormat, bool) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	for _, f := range SupportedSourceFormats {
		if string(f) == ext {
			return f, true
		}
	}
	return "", false
}

// OutputFormat is the format of the translated file offered for download.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "txt"
	OutputFormatDOCX OutputFormat = "docx"
)

// ParseOutputFormat returns OutputFormatDOCX for "docx" and OutputFormatText for anything else.
func ParseOutputFormat(s string) OutputFormat {
	if strings.EqualFold(strings.TrimSpace(s), string(OutputFormatDOCX)) {
		return OutputFormatDOCX
	}
	return OutputFormatText
}

// TranslationRequest carries one uploaded document through the pipeline.
type TranslationRequest struct {
	Filename string
	Language string
	Format   string
	Content  io.Reader
}

// TranslationResult describes a finished translation and where to fetch it.
type TranslationResult struct {
	OriginalName   string       `json:"original_name"`
	StoredName     string       `json:"stored_name"`
	SourceFormat   SourceFormat `json:"source_format"`
	OutputFormat   OutputFormat `json:"output_format"`
	TargetLanguage string       `json:"target_language"`
	Provider       string       `json:"provider"`
	OriginalText   string       `json:"-"`
	TranslatedText string       `json:"translated_text"`
	OutputFilename string       `json:"output_filename"`
	DownloadPath   string       `json:"download_path"`
	CharacterCount int          `json:"character_count"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Language is a translation target supported by the providers.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
