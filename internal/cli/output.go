package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/inarow/internal/api/response"
	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/render"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) error {
	if o.format == "json" {
		return o.printJSON(data)
	}
	return o.printText(data)
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (o *Output) printText(data any) error {
	switch v := data.(type) {
	case response.GameState:
		return o.printGameState(v)
	case response.EvaluateResponse:
		return o.printEvaluation(v)
	case response.LinesResponse:
		return o.printLines(v)
	case response.Rules:
		_, err := fmt.Fprintf(o.out, "Board: %dx%d\nWin length: %d\n", v.Size, v.Size, v.WinLength)
		return err
	case response.HealthResponse:
		_, err := fmt.Fprintf(o.out, "Status: %s\n", v.Status)
		return err
	default:
		// Fallback to JSON for unknown types
		return o.printJSON(data)
	}
}

func (o *Output) printGameState(g response.GameState) error {
	state, err := g.ToModel()
	if err != nil {
		return err
	}
	return render.State(o.out, state)
}

func (o *Output) printEvaluation(e response.EvaluateResponse) error {
	board, err := model.ParseBoard(e.Board)
	if err != nil {
		return err
	}
	if err := render.Board(o.out, board, e.Highlighted); err != nil {
		return err
	}

	conclusions := make([]model.Conclusion, 0, len(e.Conclusions))
	for _, c := range e.Conclusions {
		mc, err := c.ToModel()
		if err != nil {
			return err
		}
		conclusions = append(conclusions, mc)
	}
	return render.Conclusions(o.out, conclusions)
}

func (o *Output) printLines(l response.LinesResponse) error {
	if _, err := fmt.Fprintf(o.out, "Lines on a %dx%d board: %d\n", l.Size, l.Size, l.Count); err != nil {
		return err
	}
	for _, line := range l.Lines {
		if _, err := fmt.Fprintf(o.out, "%-13s %v\n", line.Direction, line.Cells); err != nil {
			return err
		}
	}
	return nil
}
