package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/inarow/internal/dependencies/ids"
	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/services/evaluator"
)

// Controller manages the game state machine and turn flow
type Controller struct {
	rules     model.Rules
	empty     model.Board
	evaluator evaluator.ServiceInterface
	ids       ids.Generator
	logger    *slog.Logger
}

// NewController creates a new GameController for the given rules
func NewController(
	rules model.Rules,
	evaluator evaluator.ServiceInterface,
	ids ids.Generator,
	logger *slog.Logger,
) (*Controller, error) {
	empty, err := rules.NewBoard()
	if err != nil {
		return nil, err
	}

	return &Controller{
		rules:     rules,
		empty:     empty,
		evaluator: evaluator,
		ids:       ids,
		logger:    logger,
	}, nil
}

// Rules returns the rules the controller was built with
func (c *Controller) Rules() model.Rules {
	return c.rules
}

// NewGame returns a fresh game with an empty board and First to move
func (c *Controller) NewGame() model.GameState {
	state := model.GameState{
		ID:    model.GameID(c.ids.NewID()),
		Board: c.empty,
		Phase: model.PhaseInProgress,
		Turn:  model.First,
	}

	c.logger.Info("game created",
		slog.String("game_id", string(state.ID)),
		slog.Int("size", c.rules.Size),
		slog.Int("win_length", c.rules.WinLength),
	)

	return state
}

// ApplyMove handles a click on clickedIndex and returns the next snapshot.
//
// A click on a concluded game resets it and the clicked cell is discarded.
// A click on an occupied cell returns the state unchanged. Errors are only
// returned for caller bugs: an index off the board or a malformed state.
func (c *Controller) ApplyMove(state model.GameState, clickedIndex int) (model.GameState, error) {
	if err := c.validateState(state); err != nil {
		return state, err
	}
	if !state.Board.IsValidIndex(clickedIndex) {
		_, _, err := model.IndexToCoord(clickedIndex, c.rules.Size)
		return state, err
	}

	if state.IsConcluded() {
		c.logger.Info("game reset",
			slog.String("game_id", string(state.ID)),
			slog.String("outcome", string(state.Outcome().Kind)),
			slog.Int("moves", state.Moves),
		)
		return c.NewGame(), nil
	}

	if !state.Board.IsEmpty(clickedIndex) {
		c.logger.Debug("move rejected: cell occupied",
			slog.String("game_id", string(state.ID)),
			slog.Int("index", clickedIndex),
		)
		return state, nil
	}

	board, err := state.Board.Place(clickedIndex, state.Turn)
	if err != nil {
		return state, err
	}

	conclusions, err := c.evaluator.Evaluate(board, c.rules.WinLength)
	if err != nil {
		return state, err
	}

	next := model.GameState{
		ID:          state.ID,
		Board:       board,
		Phase:       model.PhaseInProgress,
		Turn:        state.Turn.Opponent(),
		Moves:       state.Moves + 1,
		Conclusions: conclusions,
	}

	c.logger.Debug("move applied",
		slog.String("game_id", string(state.ID)),
		slog.String("player", state.Turn.String()),
		slog.Int("index", clickedIndex),
		slog.Int("moves", next.Moves),
	)

	if len(conclusions) > 0 {
		outcome := model.Summarize(conclusions)
		next.Phase = model.PhaseConcluded
		next.Status = model.StatusFor(outcome)

		c.logger.Info("game concluded",
			slog.String("game_id", string(state.ID)),
			slog.String("outcome", string(outcome.Kind)),
			slog.String("winner", outcome.Player.String()),
			slog.Int("moves", next.Moves),
		)
	}

	return next, nil
}

// validateState rejects snapshots that could not have come from this controller
func (c *Controller) validateState(state model.GameState) error {
	if state.Board.Size() != c.rules.Size {
		return fmt.Errorf("%w: board size %d, rules expect %d", model.ErrInvalidState, state.Board.Size(), c.rules.Size)
	}
	switch state.Phase {
	case model.PhaseInProgress:
		if !state.Turn.IsMover() {
			return fmt.Errorf("%w: %s cannot move", model.ErrInvalidState, state.Turn)
		}
	case model.PhaseConcluded:
	default:
		return fmt.Errorf("%w: unknown phase %q", model.ErrInvalidState, state.Phase)
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Rules() model.Rules
	NewGame() model.GameState
	ApplyMove(state model.GameState, clickedIndex int) (model.GameState, error)
}

var _ ControllerInterface = (*Controller)(nil)
