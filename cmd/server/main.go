package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okorch/notetaker/internal/adapters/completion"
	"github.com/okorch/notetaker/internal/adapters/httpapi"
	"github.com/okorch/notetaker/internal/adapters/notion"
	"github.com/okorch/notetaker/internal/adapters/rtms"
	"github.com/okorch/notetaker/internal/app"
	"github.com/okorch/notetaker/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Mode == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	registry := app.NewRegistry()
	completer := completion.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	docs := notion.New(cfg.NotionBaseURL, cfg.NotionToken, cfg.NotionDatabaseID)
	workflow := app.NewWorkflow(registry, completer, docs)
	client := rtms.NewClient(cfg, registry, app.NewWindower(), workflow)

	hook := &httpapi.WebhookHandler{
		Secret:   cfg.WebhookSecret,
		Workflow: workflow,
		RTMS:     client,
	}
	r := httpapi.SetupRouter(ctx, cfg, hook)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("note taker started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
