package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/wordlestrat/internal/api"
	"github.com/mcoot/wordlestrat/internal/factory"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	factoryCfg, err := cfg.factoryConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The server still starts without words so stored runs stay readable
	if err := app.LoadWords(ctx, cfg.WordsPath); err != nil {
		logger.Warn("could not load word list", slog.String("path", cfg.WordsPath), slog.String("error", err.Error()))
	} else {
		logger.Info("word list loaded", slog.Int("count", app.WordListService.Count()))
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		WordListService:  app.WordListService,
		FrequencyService: app.FrequencyService,
		ScoringService:   app.ScoringService,
		RunsController:   app.RunsController,
		HistogramService: app.HistogramService,
	})

	server := api.NewServer(router, cfg.apiConfig(), logger)
	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
