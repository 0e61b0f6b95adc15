package model

import "sort"

// ConclusionKind tags the variants of a Conclusion
type ConclusionKind string

const (
	ConclusionOngoing ConclusionKind = "ongoing" // No run found and the board has space
	ConclusionWin     ConclusionKind = "win"     // A player holds a qualifying run
	ConclusionDraw    ConclusionKind = "draw"    // Board full without any run
)

// Conclusion is one finding of a board evaluation.
// Player and WinningCells are only set for ConclusionWin.
type Conclusion struct {
	Kind         ConclusionKind
	Player       Player
	WinningCells []int // Linear indices of the run, in line order
}

// Ongoing returns the conclusion for an unfinished board
func Ongoing() Conclusion {
	return Conclusion{Kind: ConclusionOngoing}
}

// Win returns a win conclusion for p over the given cells
func Win(p Player, cells []int) Conclusion {
	return Conclusion{Kind: ConclusionWin, Player: p, WinningCells: cells}
}

// Draw returns the conclusion for a full board without a winner
func Draw() Conclusion {
	return Conclusion{Kind: ConclusionDraw}
}

// IsWin returns true for win conclusions
func (c Conclusion) IsWin() bool {
	return c.Kind == ConclusionWin
}

// IsDraw returns true for draw conclusions
func (c Conclusion) IsDraw() bool {
	return c.Kind == ConclusionDraw
}

// Summarize reduces an evaluation to a single authoritative conclusion.
// Any win outranks a draw; among wins the first one found is reported.
func Summarize(conclusions []Conclusion) Conclusion {
	var draw *Conclusion
	for i := range conclusions {
		switch conclusions[i].Kind {
		case ConclusionWin:
			return conclusions[i]
		case ConclusionDraw:
			draw = &conclusions[i]
		}
	}
	if draw != nil {
		return *draw
	}
	return Ongoing()
}

// Winners returns each player holding at least one winning run, in first-found order
func Winners(conclusions []Conclusion) []Player {
	var winners []Player
	seen := make(map[Player]bool)
	for _, c := range conclusions {
		if c.IsWin() && !seen[c.Player] {
			seen[c.Player] = true
			winners = append(winners, c.Player)
		}
	}
	return winners
}

// HighlightedCells flattens the winning cells of every win into one sorted,
// de-duplicated slice for renderers
func HighlightedCells(conclusions []Conclusion) []int {
	seen := make(map[int]bool)
	var cells []int
	for _, c := range conclusions {
		if !c.IsWin() {
			continue
		}
		for _, i := range c.WinningCells {
			if !seen[i] {
				seen[i] = true
				cells = append(cells, i)
			}
		}
	}
	sort.Ints(cells)
	return cells
}
