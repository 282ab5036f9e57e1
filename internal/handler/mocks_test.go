package handler

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"
)

// MockTranslationService serves downloads from dir and returns a canned
// result or error from Translate.
type MockTranslationService struct {
	dir         string
	result      *domain.TranslationResult
	err         error
	lastRequest *domain.TranslationRequest
	lastContent string
}

func NewMockTranslationService(dir string) *MockTranslationService {
	return &MockTranslationService{dir: dir}
}

func (m *MockTranslationService) Translate(ctx context.Context, req *domain.TranslationRequest) (*domain.TranslationResult, error) {
	m.lastRequest = req
	if req.Content != nil {
		data, _ := io.ReadAll(req.Content)
		m.lastContent = string(data)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *MockTranslationService) Languages() []domain.Language {
	return []domain.Language{{Name: "french", Code: "fr"}, {Name: "german", Code: "de"}}
}

func (m *MockTranslationService) OpenOutput(name string) (*os.File, error) {
	if name == "" || name != filepath.Base(name) || name == ".." {
		return nil, apperrors.NewNotFoundError("File not found")
	}
	f, err := os.Open(filepath.Join(m.dir, name))
	if err != nil {
		return nil, apperrors.NewNotFoundError("File not found")
	}
	return f, nil
}
