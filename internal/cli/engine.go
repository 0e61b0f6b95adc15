package cli

import (
	"fmt"

	"github.com/mcoot/inarow/internal/api/request"
	"github.com/mcoot/inarow/internal/api/response"
	"github.com/mcoot/inarow/internal/factory"
	"github.com/mcoot/inarow/internal/model"
)

// Engine runs the rules either in-process or against a remote server.
// Both forms speak the API response types so output is identical.
type Engine interface {
	Health() (response.HealthResponse, error)
	Rules() (response.Rules, error)
	NewGame() (response.GameState, error)
	Move(state response.GameState, index int) (response.GameState, error)
	// Evaluate judges an arbitrary board; winLength 0 uses the configured rules
	Evaluate(board []string, winLength int) (response.EvaluateResponse, error)
	Lines(size int) (response.LinesResponse, error)
}

// localEngine runs the rules in-process
type localEngine struct {
	app *factory.App
}

var _ Engine = (*localEngine)(nil)

func newLocalEngine(app *factory.App) *localEngine {
	return &localEngine{app: app}
}

func (e *localEngine) Health() (response.HealthResponse, error) {
	return response.HealthResponse{Status: "ok"}, nil
}

func (e *localEngine) Rules() (response.Rules, error) {
	return response.RulesFromModel(e.app.Rules), nil
}

func (e *localEngine) NewGame() (response.GameState, error) {
	return response.GameStateFromModel(e.app.GameController.NewGame()), nil
}

func (e *localEngine) Move(state response.GameState, index int) (response.GameState, error) {
	s, err := state.ToModel()
	if err != nil {
		return response.GameState{}, err
	}
	next, err := e.app.GameController.ApplyMove(s, index)
	if err != nil {
		return response.GameState{}, err
	}
	return response.GameStateFromModel(next), nil
}

func (e *localEngine) Evaluate(rows []string, winLength int) (response.EvaluateResponse, error) {
	board, err := model.ParseBoard(rows)
	if err != nil {
		return response.EvaluateResponse{}, err
	}
	if winLength == 0 {
		winLength = e.app.Rules.WinLength
	}
	conclusions, err := e.app.EvaluatorService.Evaluate(board, winLength)
	if err != nil {
		return response.EvaluateResponse{}, err
	}
	return response.EvaluateResponseFromModel(board, winLength, conclusions), nil
}

func (e *localEngine) Lines(size int) (response.LinesResponse, error) {
	set, err := e.app.LineService.For(size)
	if err != nil {
		return response.LinesResponse{}, err
	}
	return response.LinesFromSet(set), nil
}

// remoteEngine forwards every call to the JSON API
type remoteEngine struct {
	client *Client
}

var _ Engine = (*remoteEngine)(nil)

func newRemoteEngine(client *Client) *remoteEngine {
	return &remoteEngine{client: client}
}

func (e *remoteEngine) Health() (response.HealthResponse, error) {
	var result response.HealthResponse
	err := e.client.Get("/api/v1/health", &result)
	return result, err
}

func (e *remoteEngine) Rules() (response.Rules, error) {
	var result response.Rules
	err := e.client.Get("/api/v1/rules", &result)
	return result, err
}

func (e *remoteEngine) NewGame() (response.GameState, error) {
	var result response.GameState
	err := e.client.Post("/api/v1/games", nil, &result)
	return result, err
}

func (e *remoteEngine) Move(state response.GameState, index int) (response.GameState, error) {
	var result response.GameState
	err := e.client.Post("/api/v1/games/move", request.MoveRequest{State: state, Index: &index}, &result)
	return result, err
}

func (e *remoteEngine) Evaluate(board []string, winLength int) (response.EvaluateResponse, error) {
	var result response.EvaluateResponse
	err := e.client.Post("/api/v1/evaluate", request.EvaluateRequest{Board: board, WinLength: winLength}, &result)
	return result, err
}

func (e *remoteEngine) Lines(size int) (response.LinesResponse, error) {
	var result response.LinesResponse
	err := e.client.Get(fmt.Sprintf("/api/v1/lines?size=%d", size), &result)
	return result, err
}
