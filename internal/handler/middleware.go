package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"doc-translator/internal/domain"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// multipartOverhead is allowed on top of the file size limit for form
// fields and part headers.
const multipartOverhead = 1 << 20

// RequestID tags each request with an id, reusing the client's when sent.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// AccessLog logs one line per request once it completes.
func AccessLog(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			requestID, _ := GetRequestIDFromContext(r)
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestID,
			)
		})
	}
}

// Recovery turns a panic in a handler into a 500 response.
func Recovery(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					requestID, _ := GetRequestIDFromContext(r)
					logger.Error("Panic recovered", fmt.Errorf("%v", rec),
						"path", r.URL.Path,
						"request_id", requestID,
						"stack", string(debug.Stack()),
					)
					writeError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitBody caps request bodies at maxFileSize plus room for the rest of a
// multipart form. maxFileSize <= 0 disables the cap.
func LimitBody(maxFileSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxFileSize <= 0 {
			return next
		}
		limit := maxFileSize + multipartOverhead
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				// Fail the first read so each handler reports it in its own format.
				r.Body = &oversizedBody{ReadCloser: r.Body, limit: limit}
			} else {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// oversizedBody rejects a body whose declared length is over the limit
// without reading it.
type oversizedBody struct {
	io.ReadCloser
	limit int64
}

func (b *oversizedBody) Read(p []byte) (int, error) {
	return 0, &http.MaxBytesError{Limit: b.limit}
}
