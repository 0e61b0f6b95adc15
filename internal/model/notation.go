package model

import (
	"fmt"
	"strings"
)

// ParseBoard builds a board from one string per row, using X for First,
// O for Second and '.', '-' or '_' for empty cells.
// The number of rows sets the board size; every row must match it.
func ParseBoard(rows []string) (Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return Board{}, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}

	for y, row := range rows {
		marks := []rune(row)
		if len(marks) != board.size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, y, len(marks), board.size)
		}
		for x, r := range marks {
			p, ok := ParsePlayer(r)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown mark %q at (%d, %d)", ErrInvalidBoard, r, x, y)
			}
			board.cells[y*board.size+x] = p
		}
	}

	return board, nil
}

// ParseBoardString parses a board written as rows separated by '/', ','
// or whitespace, e.g. "XO./.X./..X".
func ParseBoardString(s string) (Board, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == ',' || r == '\n' || r == '\r' || r == '\t' || r == ' '
	})
	return ParseBoard(rows)
}

// String renders the board in the notation accepted by ParseBoardString
func (b Board) String() string {
	return strings.Join(b.Rows(), "/")
}
