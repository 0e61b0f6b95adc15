package factory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/inarow/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	app, err := NewTestApp(model.Rules{Size: 5, WinLength: 5})
	s.Require().NoError(err)
	s.app = app
}

func (s *IntegrationSuite) apply(state model.GameState, indices ...int) model.GameState {
	for _, i := range indices {
		var err error
		state, err = s.app.GameController.ApplyMove(state, i)
		s.Require().NoError(err)
	}
	return state
}

// Test: Complete game flow from first move through win and reset
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockIDs.Queue("GAME01", "GAME02")

	// Step 1: Start a game
	state := s.app.GameController.NewGame()
	s.Equal(model.GameID("GAME01"), state.ID)

	// Step 2: First fills the anti-diagonal while Second plays elsewhere
	state = s.apply(state, 4, 0, 8, 1, 12, 2, 16, 3)
	s.False(state.IsConcluded())
	s.Equal(8, state.Moves)

	// Step 3: Completing the run concludes the game
	state = s.apply(state, 20)
	s.True(state.IsConcluded())
	s.Equal(model.Win(model.First, []int{4, 8, 12, 16, 20}), state.Outcome())

	// Step 4: The evaluator agrees when asked directly
	conclusions, err := s.app.EvaluatorService.Evaluate(state.Board, s.app.Rules.WinLength)
	s.Require().NoError(err)
	s.Equal(state.Conclusions, conclusions)

	// Step 5: Any click starts a new game
	state = s.apply(state, 7)
	s.Equal(model.GameID("GAME02"), state.ID)
	s.Equal(25, state.Board.EmptyCount())
	s.Equal(model.First, state.Turn)
	s.Equal(2, s.app.MockIDs.Calls())
}

// Test: The line service is shared between the evaluator and direct callers
func (s *IntegrationSuite) TestLineSetsAreGeneratedForConfiguredSize() {
	set, err := s.app.LineService.For(s.app.Rules.Size)
	s.Require().NoError(err)
	s.Len(set.Lines, 6*5-2)
}

func TestNewDefaultsRules(t *testing.T) {
	app, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.Rules != model.DefaultRules() {
		t.Fatalf("expected default rules, got %+v", app.Rules)
	}
}

func TestNewRejectsInvalidRules(t *testing.T) {
	_, err := New(Config{Rules: model.Rules{Size: 3, WinLength: 4}})
	if err == nil {
		t.Fatal("expected error for board smaller than win length")
	}
}
