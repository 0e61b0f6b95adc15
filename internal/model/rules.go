package model

import "fmt"

// Rules holds the board dimension and the run length needed to win
type Rules struct {
	Size      int // Grid dimension (e.g., 15 for 15x15)
	WinLength int // Contiguous marks required to win
}

// DefaultRules returns the classic 15x15 five-in-a-row setup
func DefaultRules() Rules {
	return Rules{
		Size:      15,
		WinLength: 5,
	}
}

// Validate rejects rules under which no line could ever hold a winning run
func (r Rules) Validate() error {
	if r.WinLength < 1 {
		return fmt.Errorf("%w: win length %d must be at least 1", ErrConfig, r.WinLength)
	}
	if r.Size < r.WinLength {
		return fmt.Errorf("%w: board size %d is smaller than win length %d", ErrConfig, r.Size, r.WinLength)
	}
	return nil
}

// NewBoard creates an empty board sized for these rules
func (r Rules) NewBoard() (Board, error) {
	if err := r.Validate(); err != nil {
		return Board{}, err
	}
	return NewBoard(r.Size)
}

// Cells returns the number of cells on a board under these rules
func (r Rules) Cells() int {
	return r.Size * r.Size
}
