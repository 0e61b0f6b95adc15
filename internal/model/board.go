package model

import "fmt"

// Board is a square grid of player marks stored row-major.
// Boards are values: every write returns a new Board and leaves the
// receiver untouched, so a proposed move never leaks into a displayed board.
type Board struct {
	size  int
	cells []Player
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) (Board, error) {
	if size < 1 {
		return Board{}, fmt.Errorf("%w: board size %d must be at least 1", ErrConfig, size)
	}
	return Board{
		size:  size,
		cells: make([]Player, size*size),
	}, nil
}

// Size returns the grid dimension
func (b Board) Size() int {
	return b.size
}

// Len returns the number of cells
func (b Board) Len() int {
	return len(b.cells)
}

// Get returns the mark at column x, row y
func (b Board) Get(x, y int) (Player, error) {
	i, err := CoordToIndex(x, y, b.size)
	if err != nil {
		return None, err
	}
	return b.cells[i], nil
}

// At returns the mark at linear index i
func (b Board) At(i int) (Player, error) {
	if !b.IsValidIndex(i) {
		return None, indexError(i, b.size)
	}
	return b.cells[i], nil
}

// Set returns a copy of the board with (x, y) set to p
func (b Board) Set(x, y int, p Player) (Board, error) {
	i, err := CoordToIndex(x, y, b.size)
	if err != nil {
		return b, err
	}
	return b.with(i, p), nil
}

// Place returns a copy of the board with linear index i set to p
func (b Board) Place(i int, p Player) (Board, error) {
	if !b.IsValidIndex(i) {
		return b, indexError(i, b.size)
	}
	return b.with(i, p), nil
}

func (b Board) with(i int, p Player) Board {
	next := b.Clone()
	next.cells[i] = p
	return next
}

// Clone returns an independent copy of the board
func (b Board) Clone() Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// Cells returns a copy of all marks in row-major order
func (b Board) Cells() []Player {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// IsValidIndex returns true if i addresses a cell on this board
func (b Board) IsValidIndex(i int) bool {
	return i >= 0 && i < len(b.cells)
}

// IsEmpty returns true if the cell at linear index i holds no mark.
// Out of range indices are never empty.
func (b Board) IsEmpty(i int) bool {
	return b.IsValidIndex(i) && b.cells[i] == None
}

// IsFull returns true if every cell holds a mark
func (b Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b Board) EmptyCount() int {
	count := 0
	for _, c := range b.cells {
		if c == None {
			count++
		}
	}
	return count
}

// Count returns how many cells hold p
func (b Board) Count(p Player) int {
	count := 0
	for _, c := range b.cells {
		if c == p {
			count++
		}
	}
	return count
}

// Equal compares two boards by content
func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the board as one string of mark symbols per row
func (b Board) Rows() []string {
	rows := make([]string, b.size)
	for y := 0; y < b.size; y++ {
		row := make([]rune, b.size)
		for x := 0; x < b.size; x++ {
			row[x] = b.cells[y*b.size+x].Symbol()
		}
		rows[y] = string(row)
	}
	return rows
}

// IndexToCoord converts a linear index to (x, y) on a board of the given size
func IndexToCoord(i, size int) (x, y int, err error) {
	if size < 1 || i < 0 || i >= size*size {
		return 0, 0, indexError(i, size)
	}
	return i % size, i / size, nil
}

// CoordToIndex converts (x, y) to a linear index on a board of the given size
func CoordToIndex(x, y, size int) (int, error) {
	if x < 0 || x >= size || y < 0 || y >= size {
		return 0, fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrIndexOutOfRange, x, y, size, size)
	}
	return y*size + x, nil
}

func indexError(i, size int) error {
	return fmt.Errorf("%w: %d on a %dx%d board", ErrIndexOutOfRange, i, size, size)
}
