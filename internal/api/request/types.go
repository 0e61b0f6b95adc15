package request

import "github.com/mcoot/inarow/internal/api/response"

// MoveRequest is the request body for applying a click to a snapshot.
// The server keeps no games; the client sends back the last snapshot it received.
type MoveRequest struct {
	State response.GameState `json:"state"`
	Index *int               `json:"index"`
}

// EvaluateRequest is the request body for evaluating an arbitrary board
type EvaluateRequest struct {
	Board     []string `json:"board"`
	WinLength int      `json:"win_length,omitempty"`
}
