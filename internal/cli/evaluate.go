package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/inarow/internal/model"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate [board]",
		Short: "Judge a board position",
		Long: `Judge a board written as rows of X, O and '.', separated by '/',
commas or newlines, e.g. "XO./.X./..X". Without an argument the board is
read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var notation string
			if len(args) == 1 {
				notation = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read board: %w", err)
				}
				notation = strings.TrimSpace(string(data))
			}

			board, err := model.ParseBoardString(notation)
			if err != nil {
				return err
			}

			result, err := engine.Evaluate(board.Rows(), cfg.WinLength)
			if err != nil {
				return err
			}

			return newOutput(cmd).Print(result)
		},
	}
}

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List every row, column and diagonal of the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := engine.Lines(settings.Board.Size)
			if err != nil {
				return err
			}

			return newOutput(cmd).Print(result)
		},
	}
}
