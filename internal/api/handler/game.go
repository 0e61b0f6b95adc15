package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/inarow/internal/api/request"
	"github.com/mcoot/inarow/internal/api/response"
	"github.com/mcoot/inarow/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, _ *http.Request) {
	g := h.gameController.NewGame()
	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g))
}

// Move handles POST /api/v1/games/move
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Index == nil {
		WriteError(w, NewInvalidRequestError("index is required"))
		return
	}

	state, err := req.State.ToModel()
	if err != nil {
		WriteError(w, err)
		return
	}

	next, err := h.gameController.ApplyMove(state, *req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(next))
}
