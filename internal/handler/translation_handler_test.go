package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"
)

func newUploadRequest(t *testing.T, target string, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func sampleResult() *domain.TranslationResult {
	return &domain.TranslationResult{
		OriginalName:   "notes.txt",
		StoredName:     "notes.txt",
		SourceFormat:   domain.SourceFormatText,
		OutputFormat:   domain.OutputFormatDOCX,
		TargetLanguage: "fr",
		Provider:       "google",
		OriginalText:   "hello",
		TranslatedText: "bonjour <b>",
		OutputFilename: "translated_notes.docx",
		DownloadPath:   "/download/translated_notes.docx",
		CharacterCount: 5,
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTranslationHandler_Index(t *testing.T) {
	h := NewTranslationHandler(NewMockTranslationService(t.TempDir()), NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html, got %s", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `name="file"`) || !strings.Contains(body, `<option value="fr">french</option>`) {
		t.Fatalf("expected upload form with languages, got %s", body)
	}
	if strings.Contains(body, "Download translated file") {
		t.Fatalf("empty form must not show a download link")
	}
}

func TestTranslationHandler_SubmitSuccess(t *testing.T) {
	svc := NewMockTranslationService(t.TempDir())
	svc.result = sampleResult()
	h := NewTranslationHandler(svc, NewMockHandlerLogger())

	req := newUploadRequest(t, "/", "notes.txt", "hello", map[string]string{"language": " fr ", "format": "docx"})
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if svc.lastRequest.Filename != "notes.txt" || svc.lastRequest.Language != "fr" || svc.lastRequest.Format != "docx" {
		t.Fatalf("unexpected request passed to service: %+v", svc.lastRequest)
	}
	if svc.lastContent != "hello" {
		t.Fatalf("expected upload content to reach the service, got %q", svc.lastContent)
	}

	body := rr.Body.String()
	if !strings.Contains(body, `href="/download/translated_notes.docx"`) {
		t.Fatalf("expected download link, got %s", body)
	}
	if !strings.Contains(body, "bonjour &lt;b&gt;") {
		t.Fatalf("expected escaped translated text, got %s", body)
	}
}

func TestTranslationHandler_SubmitDefaultsFormat(t *testing.T) {
	svc := NewMockTranslationService(t.TempDir())
	svc.result = sampleResult()
	h := NewTranslationHandler(svc, NewMockHandlerLogger())

	req := newUploadRequest(t, "/", "notes.txt", "hello", map[string]string{"language": "fr"})
	h.Submit(httptest.NewRecorder(), req)

	if svc.lastRequest.Format != "txt" {
		t.Fatalf("expected txt default, got %q", svc.lastRequest.Format)
	}
}

func TestTranslationHandler_SubmitMissingFile(t *testing.T) {
	svc := NewMockTranslationService(t.TempDir())
	h := NewTranslationHandler(svc, NewMockHandlerLogger())

	req := newUploadRequest(t, "/", "", "", map[string]string{"language": "fr"})
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No file provided") {
		t.Fatalf("expected error message on page, got %s", rr.Body.String())
	}
	if svc.lastRequest != nil {
		t.Fatalf("service must not be called without a file")
	}
}

func TestTranslationHandler_SubmitServiceError(t *testing.T) {
	svc := NewMockTranslationService(t.TempDir())
	svc.err = apperrors.NewNetworkError("Translation service unreachable", nil)
	h := NewTranslationHandler(svc, NewMockHandlerLogger())

	req := newUploadRequest(t, "/", "notes.txt", "hello", map[string]string{"language": "fr"})
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Translation service unreachable") {
		t.Fatalf("expected error message on page, got %s", rr.Body.String())
	}
}

func TestTranslationHandler_CreateTranslation(t *testing.T) {
	svc := NewMockTranslationService(t.TempDir())
	svc.result = sampleResult()
	h := NewTranslationHandler(svc, NewMockHandlerLogger())

	req := newUploadRequest(t, "/api/v1/translations", "notes.txt", "hello", map[string]string{"language": "fr", "format": "docx"})
	rr := httptest.NewRecorder()
	h.CreateTranslation(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["download_path"] != "/download/translated_notes.docx" || got["target_language"] != "fr" {
		t.Fatalf("unexpected response: %v", got)
	}
	if _, ok := got["original_text"]; ok {
		t.Fatalf("original text must not be serialised")
	}
}

func TestTranslationHandler_CreateTranslationErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewValidationError("Unsupported file type"), http.StatusBadRequest},
		{"upstream", apperrors.NewUpstreamError("Translation service request failed", nil), http.StatusBadGateway},
		{"too large", apperrors.NewTooLargeError("File too large", domain.ErrFileTooLarge), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockTranslationService(t.TempDir())
			svc.err = tt.err
			h := NewTranslationHandler(svc, NewMockHandlerLogger())

			req := newUploadRequest(t, "/api/v1/translations", "notes.txt", "hello", map[string]string{"language": "fr"})
			rr := httptest.NewRecorder()
			h.CreateTranslation(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rr.Code)
			}
			if !strings.Contains(rr.Body.String(), `"error"`) {
				t.Fatalf("expected json error, got %s", rr.Body.String())
			}
		})
	}
}

func TestTranslationHandler_NotMultipart(t *testing.T) {
	h := NewTranslationHandler(NewMockTranslationService(t.TempDir()), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translations", strings.NewReader(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.CreateTranslation(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTranslationHandler_ListLanguages(t *testing.T) {
	h := NewTranslationHandler(NewMockTranslationService(t.TempDir()), NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.ListLanguages(rr, httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil))

	var langs []domain.Language
	if err := json.Unmarshal(rr.Body.Bytes(), &langs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(langs) != 2 || langs[0].Code != "fr" {
		t.Fatalf("unexpected languages: %v", langs)
	}
}
