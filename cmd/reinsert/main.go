// Package main is the entrypoint for the reinsertion service.
//
// The service supports two operational modes via the --mode flag:
//   - serve: HTTP server exposing POST /v1/reinsert plus health/metrics
//   - translate: reads one ReinsertRequest as JSON from stdin, runs it
//     through the core engine directly (no NMT call involved — the
//     translation and alignment are already supplied), and writes the
//     ReinsertResponse JSON to stdout
//
// Example:
//
//	go run ./cmd/reinsert --mode=serve
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/dfki-mlt/transins-go/internal/api"
	"github.com/dfki-mlt/transins-go/internal/nmt"
	"github.com/dfki-mlt/transins-go/internal/platform/config"
	"github.com/dfki-mlt/transins-go/internal/platform/observability"
)

const (
	modeServe     = "serve"
	modeTranslate = "translate"
	flagMode      = "mode"

	apiShutdownTimeout   = 5 * time.Second
	apiReadHeaderTimeout = 10 * time.Second
)

func main() {
	mode := flag.String(flagMode, modeServe, "Service mode (serve, translate)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv)

	switch *mode {
	case modeTranslate:
		if err := runTranslate(os.Stdin, os.Stdout); err != nil {
			logger.Fatal().Err(err).Msg("translate failed")
		}
	case modeServe:
		if err := runServe(cfg, &logger); err != nil {
			logger.Fatal().Err(err).Msg("serve failed")
		}
	default:
		logger.Fatal().Str(flagMode, *mode).Msg("invalid service mode")
	}
}

func runServe(cfg *config.Config, logger *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pinger observability.Pinger
	if cfg.NMTEndpoint != "" {
		pinger = nmt.NewHTTPClient(cfg, logger)
	}

	healthServer := observability.NewServer(pinger, cfg.HealthPort, logger)

	go func() {
		if err := healthServer.Start(ctx); err != nil {
			logger.Error().Err(err).Msg("health server error")
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/v1/reinsert", api.NewHandler(logger))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           mux,
		ReadHeaderTimeout: apiReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), apiShutdownTimeout)
		defer cancel()

		//nolint:errcheck,contextcheck // shutdown in signal handler is best-effort, non-inherited context intentional
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Int("port", cfg.APIPort).Msg("reinsertion service listening")

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

func runTranslate(in *os.File, out *os.File) error {
	var req api.ReinsertRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	logger := zerolog.New(os.Stderr)
	handler := api.NewHandler(&logger)

	resp, _, err := handler.Reinsert(req)
	if err != nil {
		return fmt.Errorf("reinsert: %w", err)
	}

	return json.NewEncoder(out).Encode(resp)
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
