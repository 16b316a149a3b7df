package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classroom-relay/internal/config"
	"classroom-relay/internal/http"
	"classroom-relay/internal/llm"
	"classroom-relay/internal/lms"
	"classroom-relay/internal/profanity"
	"classroom-relay/internal/service"
	"classroom-relay/internal/upstream"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API relays classroom requests to a chat-completion provider and a learning management system.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Classroom Relay API
//   description: |
//     Stateless relay for a classroom front end. Completion routes forward prompts or
//     conversations to the model provider and censor the reply. LMS routes forward
//     course, section, student and announcement requests with the caller's own token.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// One pooled client for both upstreams; timeout and rate limit apply to every call.
	httpClient := upstream.NewHTTPClient(cfg.UpstreamTimeout, cfg.UpstreamRateLimit)

	words, err := profanity.LoadWordList(cfg.ProfanityWordsPath)
	if err != nil {
		log.Fatalf("Failed to load profanity word list: %v", err)
	}
	filter := profanity.NewFilter(words)
	slog.Info("Profanity filter ready", "words", len(words.Profanities), "path", cfg.ProfanityWordsPath)

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.LLMMaxTokens, httpClient)
	lmsClient := lms.NewClient(cfg.LMSBaseURL, httpClient)

	deps := &http.Deps{
		CompletionService: service.NewCompletionService(llmClient, filter),
		LMSService:        service.NewLMSService(lmsClient),
	}

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		slog.Debug("Upstream configuration",
			"llm_base_url", cfg.LLMBaseURL,
			"model", cfg.LLMModelName,
			"lms_base_url", cfg.LMSBaseURL,
			"timeout", cfg.UpstreamTimeout,
			"rate_limit_per_minute", cfg.UpstreamRateLimit,
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}
