package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pesobank/pesobank/internal/console"
	"github.com/pesobank/pesobank/internal/core/services"
	"github.com/pesobank/pesobank/internal/platform/config"
	"github.com/pesobank/pesobank/internal/platform/logging"
	"github.com/pesobank/pesobank/internal/repositories/memory"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Structured logs go to stderr; stdout belongs to the operator conversation.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	logger = logger.With(slog.String("session_id", uuid.NewString()))

	// All state is session-scoped: a fresh registry and rate table per run.
	accountRepo := memory.NewAccountRepository()
	rateRepo := memory.NewExchangeRateRepository()
	svcs := services.NewServiceContainer(cfg, accountRepo, rateRepo)

	ctx := logging.WithLogger(context.Background(), logger)

	if err := svcs.ExchangeRate.InitializeRates(ctx); err != nil {
		logger.Error("Failed to initialize exchange rates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	session := console.NewSession(svcs, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil {
		logger.Error("Session aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
