package lines

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/inarow/internal/model"
)

// Direction names the family a line belongs to
type Direction string

const (
	DirectionRow          Direction = "row"
	DirectionColumn       Direction = "column"
	DirectionDiagonal     Direction = "diagonal"      // top-left to bottom-right
	DirectionAntiDiagonal Direction = "anti_diagonal" // top-right to bottom-left
)

// Directions returns every line family in generation order
func Directions() []Direction {
	return []Direction{DirectionRow, DirectionColumn, DirectionDiagonal, DirectionAntiDiagonal}
}

// Line is an ordered run of cell indices along one row, column or diagonal
type Line struct {
	Direction Direction
	Cells     []int
}

// Len returns the number of cells on the line
func (l Line) Len() int {
	return len(l.Cells)
}

// Set is the complete collection of lines for one board size.
// Sets handed out by the Service are shared and must not be modified.
type Set struct {
	Size  int
	Lines []Line
}

// ByDirection returns the lines of a single family
func (s Set) ByDirection(d Direction) []Line {
	var out []Line
	for _, l := range s.Lines {
		if l.Direction == d {
			out = append(out, l)
		}
	}
	return out
}

// AtLeast returns the lines long enough to hold a run of n cells
func (s Set) AtLeast(n int) []Line {
	var out []Line
	for _, l := range s.Lines {
		if l.Len() >= n {
			out = append(out, l)
		}
	}
	return out
}

// Generate enumerates all rows, columns and both diagonal families of a
// size x size board. Diagonals of every length are included.
func Generate(size int) (Set, error) {
	if size < 1 {
		return Set{}, fmt.Errorf("%w: board size %d must be at least 1", model.ErrConfig, size)
	}

	all := make([]Line, 0, 6*size-2)
	all = append(all, rows(size)...)
	all = append(all, columns(size)...)
	all = append(all, diagonals(size)...)
	all = append(all, antiDiagonals(size)...)

	return Set{Size: size, Lines: all}, nil
}

func rows(size int) []Line {
	out := make([]Line, size)
	for r := 0; r < size; r++ {
		cells := make([]int, size)
		for c := 0; c < size; c++ {
			cells[c] = r*size + c
		}
		out[r] = Line{Direction: DirectionRow, Cells: cells}
	}
	return out
}

func columns(size int) []Line {
	out := make([]Line, size)
	for c := 0; c < size; c++ {
		cells := make([]int, size)
		for r := 0; r < size; r++ {
			cells[r] = r*size + c
		}
		out[c] = Line{Direction: DirectionColumn, Cells: cells}
	}
	return out
}

// diagonals walks offsets x-y from the top-right corner (size-1) down to the
// bottom-left corner (-(size-1)); each line steps (+1, +1).
func diagonals(size int) []Line {
	out := make([]Line, 0, 2*size-1)
	for offset := size - 1; offset >= -(size - 1); offset-- {
		x0, y0 := offset, 0
		if offset < 0 {
			x0, y0 = 0, -offset
		}
		length := size - abs(offset)
		cells := make([]int, length)
		for k := 0; k < length; k++ {
			cells[k] = (y0+k)*size + x0 + k
		}
		out = append(out, Line{Direction: DirectionDiagonal, Cells: cells})
	}
	return out
}

// antiDiagonals walks sums x+y from the top-left corner (0) to the
// bottom-right corner (2*size-2); each line starts at its top-right end and
// steps (-1, +1).
func antiDiagonals(size int) []Line {
	out := make([]Line, 0, 2*size-1)
	for sum := 0; sum <= 2*size-2; sum++ {
		x0, y0, length := sum, 0, sum+1
		if sum >= size {
			x0, y0, length = size-1, sum-size+1, 2*size-1-sum
		}
		cells := make([]int, length)
		for k := 0; k < length; k++ {
			cells[k] = (y0+k)*size + x0 - k
		}
		out = append(out, Line{Direction: DirectionAntiDiagonal, Cells: cells})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Service hands out line sets, generating each board size once
type Service struct {
	mu     sync.RWMutex
	cache  map[int]Set
	logger *slog.Logger
}

// New creates a new line Service
func New(logger *slog.Logger) *Service {
	return &Service{
		cache:  make(map[int]Set),
		logger: logger,
	}
}

// For returns the line set for a board size
func (s *Service) For(size int) (Set, error) {
	s.mu.RLock()
	set, ok := s.cache[size]
	s.mu.RUnlock()
	if ok {
		return set, nil
	}

	set, err := Generate(size)
	if err != nil {
		return Set{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.cache[size]; ok {
		return cached, nil
	}
	s.cache[size] = set

	s.logger.Debug("line set generated",
		slog.Int("size", size),
		slog.Int("line_count", len(set.Lines)),
	)

	return set, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	For(size int) (Set, error)
}

var _ ServiceInterface = (*Service)(nil)
