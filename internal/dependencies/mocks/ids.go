package mocks

import (
	"fmt"

	"github.com/mcoot/inarow/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	queue []string
	count int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a MockIDs with an empty queue
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// Queue adds identifiers to be returned in order
func (m *MockIDs) Queue(values ...string) {
	m.queue = append(m.queue, values...)
}

// NewID returns the next queued identifier, or a numbered one once the queue is empty
func (m *MockIDs) NewID() string {
	m.count++
	if len(m.queue) > 0 {
		id := m.queue[0]
		m.queue = m.queue[1:]
		return id
	}
	return fmt.Sprintf("game-%d", m.count)
}

// Calls returns how many identifiers have been handed out
func (m *MockIDs) Calls() int {
	return m.count
}
