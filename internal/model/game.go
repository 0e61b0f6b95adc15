package model

import "fmt"

// GameID uniquely identifies one game between resets
type GameID string

// Phase represents the current phase of a game
type Phase string

const (
	PhaseInProgress Phase = "in_progress" // Waiting for the player to move
	PhaseConcluded  Phase = "concluded"   // Won or drawn; the next click resets
)

// Status texts shown once a game concludes
const (
	statusWinFormat = "%s wins! Click anywhere to play again."
	StatusDraw      = "It's a tie! Click anywhere to play again."
)

// GameState is an immutable snapshot of a game. Transitions never modify a
// snapshot; they return a new one.
type GameState struct {
	ID    GameID
	Board Board
	Phase Phase
	Turn  Player // Always First or Second
	Moves int    // Accepted moves since the last reset

	// Conclusions holds every finding of the last evaluation; empty while ongoing
	Conclusions []Conclusion
	Status      string
}

// IsConcluded returns true once the game has been won or drawn
func (s GameState) IsConcluded() bool {
	return s.Phase == PhaseConcluded
}

// Outcome returns the single authoritative conclusion of the game
func (s GameState) Outcome() Conclusion {
	return Summarize(s.Conclusions)
}

// HighlightedCells returns the cells renderers should mark as winning
func (s GameState) HighlightedCells() []int {
	return HighlightedCells(s.Conclusions)
}

// Prompt returns the text naming the player to move
func (s GameState) Prompt() string {
	if s.IsConcluded() {
		return s.Status
	}
	return fmt.Sprintf("%s to move", s.Turn)
}

// StatusFor returns the status text for a concluding evaluation, or "" while ongoing
func StatusFor(c Conclusion) string {
	switch c.Kind {
	case ConclusionWin:
		return fmt.Sprintf(statusWinFormat, c.Player)
	case ConclusionDraw:
		return StatusDraw
	default:
		return ""
	}
}
