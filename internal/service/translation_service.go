package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"
)

const downloadRoute = "/download/"

// DocumentTranslationService runs one upload through extraction, translation
// and output rendering.
type DocumentTranslationService struct {
	uploads    domain.FileStorage
	outputs    domain.FileStorage
	extractors *ExtractorRegistry
	translator domain.Translator
	writers    map[domain.OutputFormat]domain.DocumentWriter
	logger     domain.Logger
	now        func() time.Time
}

// NewTranslationService wires the pipeline. writers must cover every OutputFormat.
func NewTranslationService(
	uploads domain.FileStorage,
	outputs domain.FileStorage,
	extractors *ExtractorRegistry,
	translator domain.Translator,
	writers map[domain.OutputFormat]domain.DocumentWriter,
	logger domain.Logger,
) *DocumentTranslationService {
	return &DocumentTranslationService{
		uploads:    uploads,
		outputs:    outputs,
		extractors: extractors,
		translator: translator,
		writers:    writers,
		logger:     logger,
		now:        time.Now,
	}
}

// Translate implements domain.TranslationService
func (s *DocumentTranslationService) Translate(ctx context.Context, req *domain.TranslationRequest) (*domain.TranslationResult, error) {
	if req == nil || req.Content == nil || req.Filename == "" {
		return nil, apperrors.WrapValidationError("No file provided", domain.ErrMissingFile)
	}
	if !AllowedFile(req.Filename) {
		return nil, apperrors.WrapValidationError("Unsupported file type, allowed: txt, docx, pdf", domain.ErrUnsupportedFileType)
	}

	code, err := domain.NormalizeLanguage(req.Language)
	if err != nil {
		return nil, s.mapError("Invalid target language", err)
	}
	outFormat := domain.ParseOutputFormat(req.Format)

	storedName, err := StoredFilename(req.Filename)
	if err != nil {
		return nil, s.mapError("Invalid filename", err)
	}
	base, ext := SplitExt(storedName)
	srcFormat, _ := domain.ParseSourceFormat(ext)

	s.logger.Info("Storing upload", "original_name", req.Filename, "stored_name", storedName)
	uploadPath, err := s.uploads.Save(ctx, storedName, req.Content)
	if err != nil {
		return nil, s.mapError("Failed to store upload", err)
	}

	s.logger.Debug("Extracting text", "stored_name", storedName, "format", srcFormat)
	text, err := s.extractors.Extract(ctx, srcFormat, uploadPath)
	if err != nil {
		s.logger.Error("Text extraction failed", err, "stored_name", storedName)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewNetworkError("Request cancelled", err)
		}
		return nil, apperrors.NewProcessingError("Could not extract text from document", err)
	}

	s.logger.Info("Translating text",
		"stored_name", storedName,
		"target_language", code,
		"provider", s.translator.Name(),
		"characters", utf8.RuneCountInString(text),
	)
	translated, err := s.translator.Translate(ctx, text, code)
	if err != nil {
		s.logger.Error("Translation failed", err, "stored_name", storedName, "provider", s.translator.Name())
		return nil, s.mapError("Translation failed", err)
	}

	writer, ok := s.writers[outFormat]
	if !ok {
		return nil, apperrors.NewInternalError("No writer for output format", fmt.Errorf("format %q", outFormat))
	}
	outName := OutputFilename(base, outFormat)
	outPath, err := s.outputs.Path(outName)
	if err != nil {
		return nil, s.mapError("Invalid output filename", err)
	}
	if err := s.outputs.EnsureDir(); err != nil {
		return nil, apperrors.NewInternalError("Failed to prepare output directory", err)
	}
	if err := writer.Write(outPath, translated); err != nil {
		s.logger.Error("Failed to write output", err, "output", outName)
		return nil, apperrors.NewInternalError("Failed to write translated document", err)
	}

	s.logger.Info("Translation complete", "stored_name", storedName, "output", outName)

	return &domain.TranslationResult{
		OriginalName:   req.Filename,
		StoredName:     storedName,
		SourceFormat:   srcFormat,
		OutputFormat:   outFormat,
		TargetLanguage: code,
		Provider:       s.translator.Name(),
		OriginalText:   text,
		TranslatedText: translated,
		OutputFilename: outName,
		DownloadPath:   downloadRoute + outName,
		CharacterCount: utf8.RuneCountInString(text),
		CreatedAt:      s.now().UTC(),
	}, nil
}

// Languages implements domain.TranslationService
func (s *DocumentTranslationService) Languages() []domain.Language {
	return domain.SupportedLanguages()
}

// OpenOutput opens a translated file for download.
func (s *DocumentTranslationService) OpenOutput(name string) (*os.File, error) {
	f, err := s.outputs.Open(name)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) || errors.Is(err, domain.ErrInvalidFilename) {
			return nil, apperrors.NewNotFoundError("File not found")
		}
		return nil, apperrors.NewInternalError("Failed to open file", err)
	}
	return f, nil
}

// mapError converts domain sentinels into AppErrors. Errors that already
// are AppErrors pass through untouched.
func (s *DocumentTranslationService) mapError(message string, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return apperrors.WrapValidationError(vErr.Error(), err)
	case errors.Is(err, domain.ErrMissingLanguage),
		errors.Is(err, domain.ErrUnsupportedLanguage),
		errors.Is(err, domain.ErrUnsupportedFileType),
		errors.Is(err, domain.ErrInvalidFilename),
		errors.Is(err, domain.ErrMissingFile):
		return apperrors.WrapValidationError(message+": "+err.Error(), err)
	case errors.Is(err, domain.ErrTextTooLong):
		return apperrors.WrapValidationError(err.Error(), err)
	case errors.Is(err, domain.ErrFileTooLarge):
		return apperrors.NewTooLargeError("File too large", err)
	case errors.Is(err, domain.ErrEmptyTranslation):
		return apperrors.NewUpstreamError(message, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewNetworkError(message, err)
	}
	return apperrors.NewInternalError(message, err)
}
