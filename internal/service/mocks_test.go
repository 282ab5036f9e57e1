package service

import (
	"context"
	"sync"

	"doc-translator/internal/domain"
)

// Mock logger used by service package tests.
type MockServiceLogger struct{}

func NewMockServiceLogger() domain.Logger {
	return &MockServiceLogger{}
}

func (l *MockServiceLogger) Info(msg string, fields ...interface{}) {}
func (l *MockServiceLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockServiceLogger) Debug(msg string, fields ...interface{}) {}
func (l *MockServiceLogger) Warn(msg string, fields ...interface{}) {}

// MockTranslator records calls and returns a canned answer or error.
type MockTranslator struct {
	mu       sync.Mutex
	calls    int
	lastText string
	lastLang string
	result   func(text, lang string) string
	err      error
}

func NewMockTranslator() *MockTranslator {
	return &MockTranslator{
		result: func(text, lang string) string { return "[" + lang + "] " + text },
	}
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastText = text
	m.lastLang = targetLanguage
	if m.err != nil {
		return "", m.err
	}
	return m.result(text, targetLanguage), nil
}

func (m *MockTranslator) Name() string { return "mock" }

// MockExtractor returns fixed text for one format.
type MockExtractor struct {
	format domain.SourceFormat
	text   string
	err    error
	calls  int
}

func (m *MockExtractor) Extract(ctx context.Context, path string) (string, error) {
	m.calls++
	return m.text, m.err
}

func (m *MockExtractor) SupportsFormat(format domain.SourceFormat) bool {
	return format == m.format
}
