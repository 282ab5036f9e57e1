// Package handler provides HTTP handlers for the web form and the API.
package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"mime/multipart"
	"net/http"
	"strings"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// maxMemory is the part of a multipart form kept in memory; the rest spills
// to temp files.
const maxMemory = 8 << 20

// indexPage is the data rendered by templates/index.html.
type indexPage struct {
	Languages        []domain.Language
	SelectedLanguage string
	SelectedFormat   string
	TranslatedText   string
	DownloadLink     string
	Error            string
}

// TranslationHandler serves the upload form and the translation API
type TranslationHandler struct {
	service domain.TranslationService
	logger  domain.Logger
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(service domain.TranslationService, logger domain.Logger) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		logger:  logger,
	}
}

// Index renders the empty upload form
func (h *TranslationHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, indexPage{SelectedFormat: string(domain.OutputFormatText)})
}

// Submit handles the upload form and renders the result on the same page
func (h *TranslationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.translate(r)
	page := indexPage{
		SelectedLanguage: r.FormValue("language"),
		SelectedFormat:   r.FormValue("format"),
	}
	if err != nil {
		page.Error = apperrors.PublicMessage(err)
		h.render(w, apperrors.GetStatusCode(err), page)
		return
	}

	page.SelectedLanguage = result.TargetLanguage
	page.SelectedFormat = string(result.OutputFormat)
	page.TranslatedText = result.TranslatedText
	page.DownloadLink = result.DownloadPath
	h.render(w, http.StatusOK, page)
}

// CreateTranslation handles POST /api/v1/translations
func (h *TranslationHandler) CreateTranslation(w http.ResponseWriter, r *http.Request) {
	result, err := h.translate(r)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// ListLanguages handles GET /api/v1/languages
func (h *TranslationHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Languages())
}

// translate reads the multipart form and runs the service. Returned errors
// are AppErrors.
func (h *TranslationHandler) translate(r *http.Request) (*domain.TranslationResult, error) {
	requestID, _ := GetRequestIDFromContext(r)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperrors.NewTooLargeError("File too large", domain.ErrFileTooLarge)
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			h.logger.Warn("Failed to parse multipart form", "error", err, "request_id", requestID)
		}
		return nil, apperrors.WrapValidationError("No file provided", domain.ErrMissingFile)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, apperrors.WrapValidationError("No file provided", domain.ErrMissingFile)
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, apperrors.WrapValidationError("No file provided", domain.ErrMissingFile)
	}

	h.logger.Info("Translation requested",
		"filename", header.Filename,
		"size", header.Size,
		"language", r.FormValue("language"),
		"format", r.FormValue("format"),
		"request_id", requestID,
	)

	return h.service.Translate(r.Context(), &domain.TranslationRequest{
		Filename: header.Filename,
		Language: strings.TrimSpace(r.FormValue("language")),
		Format:   formatValue(r.MultipartForm),
		Content:  file,
	})
}

// formatValue defaults to txt when the field is absent.
func formatValue(form *multipart.Form) string {
	if form == nil || len(form.Value["format"]) == 0 {
		return string(domain.OutputFormatText)
	}
	return form.Value["format"][0]
}

func (h *TranslationHandler) render(w http.ResponseWriter, status int, page indexPage) {
	page.Languages = h.service.Languages()

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		h.logger.Error("Failed to render page", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
