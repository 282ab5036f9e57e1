package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"doc-translator/internal/config"
	"doc-translator/internal/domain"
	apperrors "doc-translator/pkg/errors"
	"doc-translator/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTranslateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Translate a txt, docx or pdf file",
		Long: `Translate extracts the text of the given file, translates it into the target
language, and writes translated_<name>.<format> into the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, v, args[0])
		},
	}

	cmd.Flags().StringP("lang", "l", "", "target language code or name (e.g. fr, german)")
	cmd.Flags().StringP("format", "f", "txt", "output format: txt or docx")
	cmd.Flags().StringP("output", "o", "", "output directory (default: TRANSLATED_PATH or ./translated)")
	cmd.Flags().Bool("print", false, "also print the translated text to stdout")

	bindFlags(v, cmd.Flags(), map[string]string{
		"lang":   "lang",
		"format": "format",
		"output": "output",
	})
	return cmd
}

func runTranslate(cmd *cobra.Command, v *viper.Viper, path string) error {
	cfg := loadConfig(v)
	if out := v.GetString("output"); out != "" {
		cfg.TranslatedPath = out
	}

	// Uploads are staged in a scratch directory; only the output is kept.
	staging, err := os.MkdirTemp("", "doctranslate-*")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)
	cfg.UploadPath = staging

	appLogger := logger.NewLoggerWithWriter(cfg.GetLogLevel(), cmd.ErrOrStderr())
	container, err := config.NewContainerWithConfig(cfg, appLogger)
	if err != nil {
		return err
	}
	if err := container.EnsureDirectories(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	result, err := container.TranslationService.Translate(cmd.Context(), &domain.TranslationRequest{
		Filename: filepath.Base(path),
		Language: v.GetString("lang"),
		Format:   v.GetString("format"),
		Content:  f,
	})
	if err != nil {
		return errors.New(apperrors.PublicMessage(err))
	}

	outPath := filepath.Join(cfg.GetTranslatedPath(), result.OutputFilename)
	if printText, _ := cmd.Flags().GetBool("print"); printText {
		fmt.Fprintln(cmd.OutOrStdout(), result.TranslatedText)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Translated %s (%s -> %s, %d characters) -> %s\n",
		result.OriginalName, result.SourceFormat, result.TargetLanguage, result.CharacterCount, outPath)
	return nil
}
