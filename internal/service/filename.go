package service

import (
	"regexp"
	"strings"

	"doc-translator/internal/domain"

	"golang.org/x/text/unicode/norm"
)

const (
	translatedPrefix = "translated_"
	fallbackBaseName = "document"
)

var filenameStripRe = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// AllowedFile reports whether name has an extension in the upload allow-list.
func AllowedFile(name string) bool {
	_, ext := SplitExt(name)
	if ext == "" {
		return false
	}
	_, ok := domain.ParseSourceFormat(ext)
	return ok
}

// SplitExt splits name at its last dot. ext is lower-cased and has no dot.
// A name without a dot yields an empty ext.
func SplitExt(name string) (base, ext string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name, ""
	}
	return name[:i], strings.ToLower(name[i+1:])
}

// SecureFilename reduces name to a flat ASCII filename that is safe to join
// onto a storage directory. The result can be empty.
func SecureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	ascii := b.String()

	// Browsers on Windows may send the full client path.
	ascii = strings.ReplaceAll(ascii, "/", " ")
	ascii = strings.ReplaceAll(ascii, `\`, " ")

	joined := strings.Join(strings.Fields(ascii), "_")
	return strings.Trim(filenameStripRe.ReplaceAllString(joined, ""), "._")
}

// StoredFilename returns the name an upload is saved under. When sanitising
// strips the whole base name (e.g. a non-Latin name) the original extension
// is kept behind a generic base.
func StoredFilename(original string) (string, error) {
	if !AllowedFile(original) {
		return "", domain.ErrUnsupportedFileType
	}
	secured := SecureFilename(original)
	if AllowedFile(secured) {
		if base, _ := SplitExt(secured); base != "" {
			return secured, nil
		}
	}
	_, ext := SplitExt(original)
	return fallbackBaseName + "." + ext, nil
}

// OutputFilename names the translated file for a stored upload's base name.
func OutputFilename(base string, format domain.OutputFormat) string {
	return translatedPrefix + base + "." + string(format)
}
