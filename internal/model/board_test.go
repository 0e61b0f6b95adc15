package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)

	assert.Equal(t, 4, b.Size())
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, 16, b.EmptyCount())
	assert.False(t, b.IsFull())

	_, err = NewBoard(0)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestRulesNewBoard(t *testing.T) {
	t.Run("default rules", func(t *testing.T) {
		b, err := DefaultRules().NewBoard()
		require.NoError(t, err)
		assert.Equal(t, 15, b.Size())
	})

	t.Run("size smaller than win length", func(t *testing.T) {
		_, err := Rules{Size: 4, WinLength: 5}.NewBoard()
		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("win length below one", func(t *testing.T) {
		_, err := Rules{Size: 3, WinLength: 0}.NewBoard()
		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("size equal to win length", func(t *testing.T) {
		_, err := Rules{Size: 5, WinLength: 5}.NewBoard()
		assert.NoError(t, err)
	})
}

func TestSetIsCopyOnWrite(t *testing.T) {
	original, err := NewBoard(3)
	require.NoError(t, err)

	updated, err := original.Set(1, 2, First)
	require.NoError(t, err)

	p, err := updated.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, First, p)

	p, err = original.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, None, p, "original board must be untouched")
	assert.Equal(t, 9, original.EmptyCount())
}

func TestPlaceAndAt(t *testing.T) {
	b, err := NewBoard(3)
	require.NoError(t, err)

	b, err = b.Place(7, Second)
	require.NoError(t, err)

	p, err := b.At(7)
	require.NoError(t, err)
	assert.Equal(t, Second, p)

	p, err = b.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Second, p, "index 7 is x=1, y=2")

	assert.False(t, b.IsEmpty(7))
	assert.True(t, b.IsEmpty(0))
	assert.False(t, b.IsEmpty(9))
}

func TestOutOfRangeAccess(t *testing.T) {
	b, err := NewBoard(3)
	require.NoError(t, err)

	_, err = b.Get(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.Get(0, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.At(9)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.Set(-1, 0, First)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.Place(-1, First)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCoordinateConversionRoundTrip(t *testing.T) {
	for size := 1; size <= 15; size++ {
		for i := 0; i < size*size; i++ {
			x, y, err := IndexToCoord(i, size)
			require.NoError(t, err)
			assert.Equal(t, i%size, x)
			assert.Equal(t, i/size, y)

			back, err := CoordToIndex(x, y, size)
			require.NoError(t, err)
			assert.Equal(t, i, back)
		}
	}
}

func TestCoordinateConversionOutOfRange(t *testing.T) {
	_, _, err := IndexToCoord(25, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, _, err = IndexToCoord(-1, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = CoordToIndex(5, 0, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = CoordToIndex(0, 5, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestIsFullAndCount(t *testing.T) {
	b, err := ParseBoard([]string{"XO", "OX"})
	require.NoError(t, err)

	assert.True(t, b.IsFull())
	assert.Equal(t, 2, b.Count(First))
	assert.Equal(t, 2, b.Count(Second))
	assert.Equal(t, 0, b.Count(None))
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard([]string{"X.o", "-O_", "..x"})
	require.NoError(t, err)

	assert.Equal(t, []Player{First, None, Second, None, Second, None, None, None, First}, b.Cells())
	assert.Equal(t, []string{"X.O", ".O.", "..X"}, b.Rows())
	assert.Equal(t, "X.O/.O./..X", b.String())

	again, err := ParseBoardString(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(again))
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard(nil)
	assert.ErrorIs(t, err, ErrInvalidBoard)

	_, err = ParseBoard([]string{"XX", "X"})
	assert.ErrorIs(t, err, ErrInvalidBoard)

	_, err = ParseBoard([]string{"XZ", ".."})
	assert.ErrorIs(t, err, ErrInvalidBoard)

	_, err = ParseBoardString("XO./..")
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestEqual(t *testing.T) {
	a, err := ParseBoardString("X./.O")
	require.NoError(t, err)
	b, err := ParseBoardString("X./.O")
	require.NoError(t, err)
	c, err := ParseBoardString("X./O.")
	require.NoError(t, err)
	d, err := NewBoard(3)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestParseBoardStringSpacesSeparateRows(t *testing.T) {
	spaced, err := ParseBoardString("X. .O")
	require.NoError(t, err)
	slashed, err := ParseBoardString("X./.O")
	require.NoError(t, err)
	assert.True(t, spaced.Equal(slashed))

	_, ok := ParsePlayer(' ')
	assert.False(t, ok)

	_, err = ParseBoard([]string{"X ", ".O"})
	assert.ErrorIs(t, err, ErrInvalidBoard)
}
