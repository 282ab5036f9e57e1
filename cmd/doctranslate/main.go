// Package main is the command line front-end for doc-translator. It runs the
// same pipeline as the web server against local files.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"doc-translator/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the command tree around its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "doctranslate",
		Short: "Translate txt, docx and pdf documents",
		Long: `doctranslate extracts the text of a document, sends it to a translation
provider once, and writes the result as a .txt or .docx file.

Settings come from flags, DOCTRANSLATE_* environment variables, and an optional
doctranslate.yaml config file, in that order of precedence.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./doctranslate.yaml or ~/.config/doctranslate/config.yaml)")
	flags.String("provider", "", "translation provider: google, openai or vertex")
	flags.String("pdf-engine", "", "pdf text engine: mupdf or native")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Duration("timeout", 0, "translation request timeout")

	bindFlags(v, flags, map[string]string{
		"provider":   "provider",
		"pdf_engine": "pdf-engine",
		"log_level":  "log-level",
		"timeout":    "timeout",
	})

	rootCmd.AddCommand(newTranslateCmd(v))
	rootCmd.AddCommand(newLanguagesCmd())
	return rootCmd
}

// bindFlags maps viper keys to flag names in fs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if f := fs.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("doctranslate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "doctranslate"))
		}
	}

	v.SetEnvPrefix("DOCTRANSLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

// loadConfig layers viper values over the environment driven AppConfig.
func loadConfig(v *viper.Viper) *config.AppConfig {
	cfg := config.LoadAppConfig()
	// The CLI is quiet unless asked otherwise.
	cfg.LogLevel = "warn"

	if s := v.GetString("provider"); s != "" {
		cfg.TranslatorProvider = strings.ToLower(s)
	}
	if s := v.GetString("pdf_engine"); s != "" {
		cfg.PDFEngine = strings.ToLower(s)
	}
	if s := v.GetString("log_level"); s != "" {
		cfg.LogLevel = s
	}
	if d := v.GetDuration("timeout"); d > 0 {
		cfg.TranslateTimeout = d
	}
	if s := v.GetString("google_url"); s != "" {
		cfg.GoogleTranslateURL = s
	}
	if s := v.GetString("openai_api_key"); s != "" {
		cfg.OpenAIAPIKey = s
	}
	if s := v.GetString("openai_model"); s != "" {
		cfg.OpenAIModel = s
	}
	if s := v.GetString("openai_base_url"); s != "" {
		cfg.OpenAIBaseURL = s
	}
	if s := v.GetString("vertex_project"); s != "" {
		cfg.VertexProject = s
	}
	if s := v.GetString("vertex_location"); s != "" {
		cfg.VertexLocation = s
	}
	if s := v.GetString("vertex_model"); s != "" {
		cfg.VertexModel = s
	}
	if n := v.GetInt64("max_file_size"); n > 0 {
		cfg.MaxFileSize = n
	}
	return cfg
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
