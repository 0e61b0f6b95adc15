package factory

import (
	"github.com/mcoot/inarow/internal/dependencies/mocks"
	"github.com/mcoot/inarow/internal/model"
	"github.com/mcoot/inarow/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockIDs *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp(rules model.Rules) (*TestApp, error) {
	mockIDs := mocks.NewMockIDs()

	app, err := newWithDependencies(rules, mockIDs, testutil.NopLogger())
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:     app,
		MockIDs: mockIDs,
	}, nil
}
