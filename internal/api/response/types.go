package response

import (
	"fmt"

	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/services/lines"
)

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// Rules represents the configured game rules
type Rules struct {
	Size      int `json:"size"`
	WinLength int `json:"win_length"`
}

// RulesFromModel converts model.Rules
func RulesFromModel(r model.Rules) Rules {
	return Rules{
		Size:      r.Size,
		WinLength: r.WinLength,
	}
}

// Conclusion represents one finding of a board evaluation
type Conclusion struct {
	Kind         string `json:"kind"`
	Player       string `json:"player,omitempty"`
	WinningCells []int  `json:"winning_cells,omitempty"`
}

// ConclusionFromModel converts a model.Conclusion
func ConclusionFromModel(c model.Conclusion) Conclusion {
	resp := Conclusion{Kind: string(c.Kind)}
	if c.IsWin() {
		resp.Player = c.Player.String()
		resp.WinningCells = c.WinningCells
	}
	return resp
}

// ConclusionsFromModel converts an evaluation result; never returns nil
func ConclusionsFromModel(cs []model.Conclusion) []Conclusion {
	out := make([]Conclusion, len(cs))
	for i, c := range cs {
		out[i] = ConclusionFromModel(c)
	}
	return out
}

// ToModel converts the response form back into a model.Conclusion
func (c Conclusion) ToModel() (model.Conclusion, error) {
	switch model.ConclusionKind(c.Kind) {
	case model.ConclusionOngoing:
		return model.Ongoing(), nil
	case model.ConclusionDraw:
		return model.Draw(), nil
	case model.ConclusionWin:
		p, ok := model.ParsePlayerName(c.Player)
		if !ok || !p.IsMover() {
			return model.Conclusion{}, fmt.Errorf("%w: win for unknown player %q", model.ErrInvalidState, c.Player)
		}
		if len(c.WinningCells) == 0 {
			return model.Conclusion{}, fmt.Errorf("%w: win without winning cells", model.ErrInvalidState)
		}
		return model.Win(p, c.WinningCells), nil
	default:
		return model.Conclusion{}, fmt.Errorf("%w: unknown conclusion kind %q", model.ErrInvalidState, c.Kind)
	}
}

// GameState represents a game snapshot in API requests and responses
type GameState struct {
	ID          string       `json:"id"`
	Size        int          `json:"size"`
	Board       []string     `json:"board"`
	Turn        string       `json:"turn"`
	Phase       string       `json:"phase"`
	Moves       int          `json:"moves"`
	Status      string       `json:"status"`
	Prompt      string       `json:"prompt"`
	Outcome     Conclusion   `json:"outcome"`
	Conclusions []Conclusion `json:"conclusions"`
	Highlighted []int        `json:"highlighted"`
}

// GameStateFromModel converts a model.GameState
func GameStateFromModel(s model.GameState) GameState {
	highlighted := s.HighlightedCells()
	if highlighted == nil {
		highlighted = []int{}
	}

	return GameState{
		ID:          string(s.ID),
		Size:        s.Board.Size(),
		Board:       s.Board.Rows(),
		Turn:        s.Turn.String(),
		Phase:       string(s.Phase),
		Moves:       s.Moves,
		Status:      s.Status,
		Prompt:      s.Prompt(),
		Outcome:     ConclusionFromModel(s.Outcome()),
		Conclusions: ConclusionsFromModel(s.Conclusions),
		Highlighted: highlighted,
	}
}

// ToModel converts a client-held snapshot back into a model.GameState.
// Derived fields (prompt, outcome, highlighted) are ignored.
func (g GameState) ToModel() (model.GameState, error) {
	board, err := model.ParseBoard(g.Board)
	if err != nil {
		return model.GameState{}, err
	}
	if g.Size != 0 && g.Size != board.Size() {
		return model.GameState{}, fmt.Errorf("%w: size %d does not match a %d row board", model.ErrInvalidState, g.Size, board.Size())
	}

	turn, ok := model.ParsePlayerName(g.Turn)
	if !ok {
		return model.GameState{}, fmt.Errorf("%w: unknown turn %q", model.ErrInvalidState, g.Turn)
	}
	if g.Moves < 0 {
		return model.GameState{}, fmt.Errorf("%w: negative move count %d", model.ErrInvalidState, g.Moves)
	}

	var conclusions []model.Conclusion
	for _, c := range g.Conclusions {
		mc, err := c.ToModel()
		if err != nil {
			return model.GameState{}, err
		}
		if mc.Kind == model.ConclusionOngoing {
			continue
		}
		conclusions = append(conclusions, mc)
	}

	return model.GameState{
		ID:          model.GameID(g.ID),
		Board:       board,
		Phase:       model.Phase(g.Phase),
		Turn:        turn,
		Moves:       g.Moves,
		Conclusions: conclusions,
		Status:      g.Status,
	}, nil
}

// Line represents one row, column or diagonal
type Line struct {
	Direction string `json:"direction"`
	Cells     []int  `json:"cells"`
}

// LinesResponse is the response for the line enumeration endpoint
type LinesResponse struct {
	Size   int            `json:"size"`
	Count  int            `json:"count"`
	Counts map[string]int `json:"counts"`
	Lines  []Line         `json:"lines"`
}

// LinesFromSet converts a lines.Set
func LinesFromSet(set lines.Set) LinesResponse {
	resp := LinesResponse{
		Size:   set.Size,
		Count:  len(set.Lines),
		Counts: make(map[string]int),
		Lines:  make([]Line, len(set.Lines)),
	}
	for i, l := range set.Lines {
		resp.Lines[i] = Line{Direction: string(l.Direction), Cells: l.Cells}
		resp.Counts[string(l.Direction)]++
	}
	return resp
}

// EvaluateResponse is the response for evaluating an arbitrary board
type EvaluateResponse struct {
	Board       []string     `json:"board"`
	Size        int          `json:"size"`
	WinLength   int          `json:"win_length"`
	Outcome     Conclusion   `json:"outcome"`
	Conclusions []Conclusion `json:"conclusions"`
	Highlighted []int        `json:"highlighted"`
}

// EvaluateResponseFromModel builds the response for an evaluation
func EvaluateResponseFromModel(board model.Board, winLength int, cs []model.Conclusion) EvaluateResponse {
	highlighted := model.HighlightedCells(cs)
	if highlighted == nil {
		highlighted = []int{}
	}
	return EvaluateResponse{
		Board:       board.Rows(),
		Size:        board.Size(),
		WinLength:   winLength,
		Outcome:     ConclusionFromModel(model.Summarize(cs)),
		Conclusions: ConclusionsFromModel(cs),
		Highlighted: highlighted,
	}
}
