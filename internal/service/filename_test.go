package service

import (
	"errors"
	"testing"

	"doc-translator/internal/domain"
)

func TestAllowedFile(t *testing.T) {
	tests := map[string]bool{
		"report.pdf":        true,
		"Report.PDF":        true,
		"notes.txt":         true,
		"letter.docx":       true,
		"archive.tar.pdf":   true,
		"legacy.doc":        false,
		"image.png":         false,
		"noextension":       false,
		"":                  false,
		"trailingdot.":      false,
		"pdf":               false,
		"../../etc/passwd":  false,
		"../../secret.docx": true,
	}
	for name, want := range tests {
		if got := AllowedFile(name); got != want {
			t.Fatalf("AllowedFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "etc_passwd"},
		{"i contain cool ümläuts.txt", "i_contain_cool_umlauts.txt"},
		{`C:\Users\me\report.docx`, "C_Users_me_report.docx"},
		{"  .hidden.pdf ", "hidden.pdf"},
		{"résumé (final).pdf", "resume_final.pdf"},
		{"отчёт.pdf", "pdf"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SecureFilename(tt.in); got != tt.want {
			t.Fatalf("SecureFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoredFilename(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"Quarterly Report.pdf", "Quarterly_Report.pdf", nil},
		{"../notes.TXT", "notes.TXT", nil},
		{"отчёт.pdf", "document.pdf", nil},
		{"日本語.docx", "document.docx", nil},
		{"image.png", "", domain.ErrUnsupportedFileType},
		{"", "", domain.ErrUnsupportedFileType},
	}
	for _, tt := range tests {
		got, err := StoredFilename(tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("StoredFilename(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("StoredFilename(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("StoredFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitExtAndOutputFilename(t *testing.T) {
	base, ext := SplitExt("my.report.PDF")
	if base != "my.report" || ext != "pdf" {
		t.Fatalf("unexpected split: %q %q", base, ext)
	}

	if got := OutputFilename(base, domain.OutputFormatDOCX); got != "translated_my.report.docx" {
		t.Fatalf("unexpected output filename: %s", got)
	}
	if got := OutputFilename("notes", domain.OutputFormatText); got != "translated_notes.txt" {
		t.Fatalf("unexpected output filename: %s", got)
	}
}
