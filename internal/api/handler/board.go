package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mcoot/inarow/internal/api/request"
	"github.com/mcoot/inarow/internal/api/response"
	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/services/evaluator"
	"github.com/mcoot/inarow/internal/services/lines"
)

// MaxLineSize caps the board size accepted by the line enumeration endpoint
const MaxLineSize = 64

// BoardHandler handles rule and board inspection endpoints
type BoardHandler struct {
	rules            model.Rules
	lineService      lines.ServiceInterface
	evaluatorService evaluator.ServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(
	rules model.Rules,
	lineService lines.ServiceInterface,
	evaluatorService evaluator.ServiceInterface,
) *BoardHandler {
	return &BoardHandler{
		rules:            rules,
		lineService:      lineService,
		evaluatorService: evaluatorService,
	}
}

// Rules handles GET /api/v1/rules
func (h *BoardHandler) Rules(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.RulesFromModel(h.rules))
}

// Lines handles GET /api/v1/lines?size=N
func (h *BoardHandler) Lines(w http.ResponseWriter, r *http.Request) {
	size := h.rules.Size
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("size must be an integer"))
			return
		}
		size = n
	}
	if size > MaxLineSize {
		WriteError(w, NewInvalidRequestError(fmt.Sprintf("size must be at most %d", MaxLineSize)))
		return
	}

	set, err := h.lineService.For(size)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LinesFromSet(set))
}

// Evaluate handles POST /api/v1/evaluate
func (h *BoardHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req request.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.Board) > MaxLineSize {
		WriteError(w, NewInvalidRequestError(fmt.Sprintf("board must have at most %d rows", MaxLineSize)))
		return
	}

	board, err := model.ParseBoard(req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}

	winLength := req.WinLength
	if winLength == 0 {
		winLength = h.rules.WinLength
	}

	conclusions, err := h.evaluatorService.Evaluate(board, winLength)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EvaluateResponseFromModel(board, winLength, conclusions))
}
