package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doc-translator/internal/config"
	"doc-translator/internal/handler"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialise application: %v", err)
	}
	if err := container.EnsureDirectories(); err != nil {
		container.Logger.Error("Failed to create storage directories", err)
		os.Exit(1)
	}

	// Handlers
	translationHandler := handler.NewTranslationHandler(container.TranslationService, container.Logger)
	downloadHandler := handler.NewDownloadHandler(container.TranslationService, container.Logger)

	// Router
	router := handler.NewRouter(
		translationHandler,
		downloadHandler,
		container.Logger,
		handler.RouterOptions{
			AllowedOrigins: container.Config.GetCORSAllowedOrigins(),
			MaxFileSize:    container.Config.GetMaxFileSize(),
		},
	)

	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"provider", container.Translator.Name(),
			"pdf_engine", container.Config.GetPDFEngine(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		container.Logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			container.Logger.Error("Graceful shutdown failed", err)
			return server.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		container.Logger.Error("Server stopped with error", err)
		os.Exit(1)
	}
	container.Logger.Info("Server exited")
}
