package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/inarow/internal/dependencies/ids"
	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/services/evaluator"
	"github.com/mcoot/inarow/internal/services/game"
	"github.com/mcoot/inarow/internal/services/lines"
)

// App contains all wired application components
type App struct {
	Rules model.Rules

	// External dependencies
	IDs ids.Generator

	// Services
	LineService      *lines.Service
	EvaluatorService *evaluator.Service
	GameController   *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Rules sets the board size and win length
	// If zero value, defaults to model.DefaultRules()
	Rules model.Rules
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rules := cfg.Rules
	if rules == (model.Rules{}) {
		rules = model.DefaultRules()
	}

	return newWithDependencies(rules, ids.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(rules model.Rules, idGen ids.Generator, logger *slog.Logger) (*App, error) {
	lineService := lines.New(logger)
	evaluatorService := evaluator.New(lineService, logger)

	gameController, err := game.NewController(rules, evaluatorService, idGen, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("application wired",
		slog.Int("size", rules.Size),
		slog.Int("win_length", rules.WinLength),
	)

	return &App{
		Rules:            rules,
		IDs:              idGen,
		LineService:      lineService,
		EvaluatorService: evaluatorService,
		GameController:   gameController,
	}, nil
}
