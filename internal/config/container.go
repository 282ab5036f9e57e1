package config

import (
	"fmt"

	"doc-translator/internal/domain"
	"doc-translator/internal/infra/translate"
	"doc-translator/internal/service"
	"doc-translator/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config             domain.Config
	Logger             domain.Logger
	UploadStorage      domain.FileStorage
	OutputStorage      domain.FileStorage
	Extractors         *service.ExtractorRegistry
	Translator         domain.Translator
	TranslationService domain.TranslationService
}

// NewContainer creates a new dependency injection container from the environment
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	return NewContainerWithConfig(cfg, logger.NewLogger(cfg.GetLogLevel()))
}

// NewContainerWithConfig wires the application around an existing config and logger
func NewContainerWithConfig(cfg domain.Config, appLogger domain.Logger) (*Container, error) {
	translator, err := translate.NewTranslator(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	uploads := service.NewStorageService(cfg.GetUploadPath(), cfg.GetMaxFileSize())
	outputs := service.NewStorageService(cfg.GetTranslatedPath(), 0)
	extractors := service.NewDefaultExtractorRegistry(cfg.GetPDFEngine(), appLogger)

	translationService := service.NewTranslationService(
		uploads,
		outputs,
		extractors,
		translator,
		service.NewDocumentWriters(),
		appLogger,
	)

	return &Container{
		Config:             cfg,
		Logger:             appLogger,
		UploadStorage:      uploads,
		OutputStorage:      outputs,
		Extractors:         extractors,
		Translator:         translator,
		TranslationService: translationService,
	}, nil
}

// EnsureDirectories creates the upload and output directories
func (c *Container) EnsureDirectories() error {
	if err := c.UploadStorage.EnsureDir(); err != nil {
		return err
	}
	return c.OutputStorage.EnsureDir()
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetTranslationService returns the translation service instance
func (c *Container) GetTranslationService() domain.TranslationService {
	return c.TranslationService
}
