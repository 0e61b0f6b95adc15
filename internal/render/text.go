package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/inarow/internal/model"
)

// Board writes a grid with column and row headers. Highlighted cells are
// wrapped in brackets so winning runs stand out without colour.
func Board(w io.Writer, board model.Board, highlighted []int) error {
	marked := make(map[int]bool, len(highlighted))
	for _, i := range highlighted {
		marked[i] = true
	}

	size := board.Size()
	width := len(fmt.Sprint(size - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width+1))
	for x := 0; x < size; x++ {
		fmt.Fprintf(&sb, "%*d ", width+1, x)
	}
	sb.WriteString("\n")

	cells := board.Cells()
	for y := 0; y < size; y++ {
		fmt.Fprintf(&sb, "%*d ", width, y)
		for x := 0; x < size; x++ {
			i := y*size + x
			symbol := string(cells[i].Symbol())
			if marked[i] {
				fmt.Fprintf(&sb, "%*s", width+2, "["+symbol+"]")
			} else {
				fmt.Fprintf(&sb, "%*s ", width+1, symbol)
			}
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// State writes the board of a snapshot followed by its prompt
func State(w io.Writer, state model.GameState) error {
	if err := Board(w, state.Board, state.HighlightedCells()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, state.Prompt())
	return err
}

// Conclusions writes one line per finding of an evaluation
func Conclusions(w io.Writer, conclusions []model.Conclusion) error {
	if len(conclusions) == 0 {
		_, err := fmt.Fprintln(w, "ongoing")
		return err
	}
	for _, c := range conclusions {
		var err error
		switch c.Kind {
		case model.ConclusionWin:
			_, err = fmt.Fprintf(w, "win %s %v\n", c.Player, c.WinningCells)
		default:
			_, err = fmt.Fprintln(w, string(c.Kind))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
