package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/inarow/internal/api/handler"
	"github.com/mcoot/inarow/internal/api/middleware"
	"github.com/mcoot/inarow/internal/api/response"
	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/services/evaluator"
	"github.com/mcoot/inarow/internal/services/game"
	"github.com/mcoot/inarow/internal/services/lines"
)

const apiPrefix = "/api/v1"

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	Rules            model.Rules
	LineService      lines.ServiceInterface
	EvaluatorService evaluator.ServiceInterface
	GameController   game.ControllerInterface
}

// NewRouter creates a new API router with all routes configured.
// The API is stateless: clients hold the game snapshot and send it back with each move.
//
// Routes sit directly on the root router with their full path so that a
// path matched with the wrong method reaches MethodNotAllowedHandler.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	boardHandler := handler.NewBoardHandler(cfg.Rules, cfg.LineService, cfg.EvaluatorService)

	// Common middleware for matched routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Game routes
	r.HandleFunc(apiPrefix+"/games", gameHandler.Create).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/games/move", gameHandler.Move).Methods(http.MethodPost)

	// Board inspection routes
	r.HandleFunc(apiPrefix+"/rules", boardHandler.Rules).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/lines", boardHandler.Lines).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/evaluate", boardHandler.Evaluate).Methods(http.MethodPost)

	// Health check endpoint
	r.HandleFunc(apiPrefix+"/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
