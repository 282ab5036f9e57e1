package handler

import (
	"net/http"

	"doc-translator/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterOptions carries the settings the router needs from config.
type RouterOptions struct {
	AllowedOrigins []string
	MaxFileSize    int64
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	translationHandler *TranslationHandler,
	downloadHandler *DownloadHandler,
	logger domain.Logger,
	opts RouterOptions,
) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"doc-translator"}`))
	}).Methods(http.MethodGet)

	// Web form
	router.HandleFunc("/", translationHandler.Index).Methods(http.MethodGet)
	router.HandleFunc("/", translationHandler.Submit).Methods(http.MethodPost)
	router.HandleFunc("/download/{filename}", downloadHandler.Download).Methods(http.MethodGet, http.MethodHead)

	// JSON API
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(newCORS(opts.AllowedOrigins).Handler)
	api.HandleFunc("/translations", translationHandler.CreateTranslation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/languages", translationHandler.ListLanguages).Methods(http.MethodGet, http.MethodOptions)

	var h http.Handler = router
	h = LimitBody(opts.MaxFileSize)(h)
	h = Recovery(logger)(h)
	h = AccessLog(logger)(h)
	h = RequestID(h)
	return h
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})
}
