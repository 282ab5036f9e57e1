package handler

import (
	"mime"
	"net/http"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"

	"github.com/gorilla/mux"
)

// DownloadHandler serves translated files as attachments
type DownloadHandler struct {
	service domain.TranslationService
	logger  domain.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(service domain.TranslationService, logger domain.Logger) *DownloadHandler {
	return &DownloadHandler{
		service: service,
		logger:  logger,
	}
}

// Download handles GET /download/{filename}
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	f, err := h.service.OpenOutput(filename)
	if err != nil {
		if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			h.logger.Error("Failed to open download", err, "filename", filename)
		}
		writeAppError(w, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.logger.Error("Failed to stat download", err, "filename", filename)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	http.ServeContent(w, r, filename, info.ModTime(), f)
}
