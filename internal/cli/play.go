package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/mcoot/inarow/internal/model"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game on the terminal",
		Long: `Play a two-player game, reading one cell per line from stdin.

A cell is either a linear index ("12") or a column and row ("2,3").
Once a game is won or drawn, the next cell starts a new game.
Enter q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(cmd)

			state, err := engine.NewGame()
			if err != nil {
				return err
			}
			if err := out.Print(state); err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				input := strings.TrimSpace(scanner.Text())
				switch input {
				case "":
					continue
				case "q", "quit", "exit":
					return nil
				}

				index, err := parseCell(input, state.Size)
				if err != nil {
					out.PrintError(err)
					continue
				}

				next, err := engine.Move(state, index)
				if err != nil {
					out.PrintError(err)
					continue
				}

				state = next
				if err := out.Print(state); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}

// parseCell reads a linear index or an "x,y" pair
func parseCell(input string, size int) (int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	switch len(fields) {
	case 1:
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("invalid cell %q", input)
		}
		return i, nil
	case 2:
		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			return 0, fmt.Errorf("invalid cell %q", input)
		}
		return model.CoordToIndex(x, y, size)
	default:
		return 0, fmt.Errorf("invalid cell %q", input)
	}
}
