package evaluator

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/services/lines"
)

// Service evaluates boards for wins and draws
type Service struct {
	lines  lines.ServiceInterface
	logger *slog.Logger
}

// New creates a new evaluator Service
func New(lines lines.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		lines:  lines,
		logger: logger,
	}
}

// Evaluate scans every line of the board for a run of winLength marks
func (s *Service) Evaluate(board model.Board, winLength int) ([]model.Conclusion, error) {
	set, err := s.lines.For(board.Size())
	if err != nil {
		return nil, err
	}

	conclusions, err := Evaluate(board, set, winLength)
	if err != nil {
		return nil, err
	}

	if len(conclusions) > 0 {
		s.logger.Debug("board concluded",
			slog.Int("size", board.Size()),
			slog.Int("win_length", winLength),
			slog.String("outcome", string(model.Summarize(conclusions).Kind)),
			slog.Int("conclusion_count", len(conclusions)),
		)
	}

	return conclusions, nil
}

// Evaluate returns one Win per (line, player) pair holding a run of at least
// winLength marks. Without any Win it returns a single Draw for a full board,
// or no conclusions while the game is still open.
func Evaluate(board model.Board, set lines.Set, winLength int) ([]model.Conclusion, error) {
	if winLength < 1 {
		return nil, fmt.Errorf("%w: win length %d must be at least 1", model.ErrConfig, winLength)
	}
	if set.Size != board.Size() {
		return nil, fmt.Errorf("%w: lines for size %d used on a board of size %d", model.ErrConfig, set.Size, board.Size())
	}

	cells := board.Cells()
	var conclusions []model.Conclusion

	for _, line := range set.Lines {
		if line.Len() < winLength {
			continue
		}

		marks := make([]model.Player, line.Len())
		for k, i := range line.Cells {
			marks[k] = cells[i]
		}

		for _, player := range model.Movers() {
			if run := winningRun(line.Cells, marks, player, winLength); len(run) > 0 {
				conclusions = append(conclusions, model.Win(player, run))
			}
		}
	}

	if len(conclusions) > 0 {
		return conclusions, nil
	}

	if board.IsFull() {
		return []model.Conclusion{model.Draw()}, nil
	}

	return nil, nil
}

// winningRun returns the cells of every maximal run of player on the line
// that is at least winLength long, in line order.
func winningRun(cells []int, marks []model.Player, player model.Player, winLength int) []int {
	var run []int
	start := -1

	flush := func(end int) {
		if start >= 0 && end-start >= winLength {
			run = append(run, cells[start:end]...)
		}
		start = -1
	}

	for k, m := range marks {
		if m == player {
			if start < 0 {
				start = k
			}
			continue
		}
		flush(k)
	}
	flush(len(marks))

	return run
}

// Interface for dependency injection
type ServiceInterface interface {
	Evaluate(board model.Board, winLength int) ([]model.Conclusion, error)
}

var _ ServiceInterface = (*Service)(nil)
