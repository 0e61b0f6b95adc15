package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("empty is ongoing", func(t *testing.T) {
		assert.Equal(t, Ongoing(), Summarize(nil))
	})

	t.Run("draw alone", func(t *testing.T) {
		assert.Equal(t, Draw(), Summarize([]Conclusion{Draw()}))
	})

	t.Run("win outranks draw", func(t *testing.T) {
		win := Win(Second, []int{0, 1, 2})
		assert.Equal(t, win, Summarize([]Conclusion{Draw(), win}))
	})

	t.Run("first win is reported", func(t *testing.T) {
		first := Win(First, []int{0, 1, 2})
		second := Win(Second, []int{3, 4, 5})
		assert.Equal(t, first, Summarize([]Conclusion{first, second}))
	})
}

func TestHighlightedCells(t *testing.T) {
	conclusions := []Conclusion{
		Win(First, []int{6, 3, 0}),
		Win(First, []int{0, 1, 2}),
		Draw(),
	}
	assert.Equal(t, []int{0, 1, 2, 3, 6}, HighlightedCells(conclusions))
	assert.Empty(t, HighlightedCells([]Conclusion{Draw()}))
}

func TestWinners(t *testing.T) {
	conclusions := []Conclusion{
		Win(Second, []int{0}),
		Win(First, []int{1}),
		Win(Second, []int{2}),
	}
	assert.Equal(t, []Player{Second, First}, Winners(conclusions))
	assert.Empty(t, Winners(nil))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, "First wins! Click anywhere to play again.", StatusFor(Win(First, []int{0})))
	assert.Equal(t, "Second wins! Click anywhere to play again.", StatusFor(Win(Second, []int{0})))
	assert.Equal(t, "It's a tie! Click anywhere to play again.", StatusFor(Draw()))
	assert.Equal(t, "", StatusFor(Ongoing()))
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, Second, First.Opponent())
	assert.Equal(t, First, Second.Opponent())
	assert.Equal(t, None, None.Opponent())
	assert.False(t, None.IsMover())
	assert.True(t, First.IsMover())

	for _, p := range []Player{None, First, Second} {
		parsed, ok := ParsePlayer(p.Symbol())
		assert.True(t, ok)
		assert.Equal(t, p, parsed)

		named, ok := ParsePlayerName(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, named)
	}

	_, ok := ParsePlayer('#')
	assert.False(t, ok)
}
