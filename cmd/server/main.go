package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/inarow/internal/api"
	"github.com/mcoot/inarow/internal/config"
	"github.com/mcoot/inarow/internal/factory"
)

func main() {
	// INAROW_CONFIG names an optional YAML or TOML file; INAROW_* variables override it
	cfg, err := config.Load(os.Getenv("INAROW_CONFIG"))
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	app, err := factory.New(factory.Config{
		Rules:  cfg.Rules(),
		Logger: logger,
	})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		Rules:            app.Rules,
		LineService:      app.LineService,
		EvaluatorService: app.EvaluatorService,
		GameController:   app.GameController,
	})

	server := api.NewServer(router, api.ServerConfigFrom(cfg.HTTP), logger)

	// Serve until SIGINT or SIGTERM, then shut down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("server starting",
		slog.String("addr", server.Addr()),
		slog.Int("size", app.Rules.Size),
		slog.Int("win_length", app.Rules.WinLength),
	)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}

	logger.Info("server stopped")
}
