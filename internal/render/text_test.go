package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/inarow/internal/model"
)

func TestBoard(t *testing.T) {
	board, err := model.ParseBoardString("XO./.X./..X")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Board(&buf, board, []int{0, 4, 8}))

	expected := "   0  1  2 \n" +
		"0 [X] O  . \n" +
		"1  . [X] . \n" +
		"2  .  . [X]\n"
	assert.Equal(t, expected, buf.String())
}

func TestBoardWideHeaders(t *testing.T) {
	board, err := model.NewBoard(11)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Board(&buf, board, nil))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 12)
	assert.Contains(t, string(lines[0]), " 10 ")
	assert.Equal(t, len(lines[1]), len(lines[11]))
}

func TestState(t *testing.T) {
	board, err := model.NewBoard(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, State(&buf, model.GameState{Board: board, Phase: model.PhaseInProgress, Turn: model.Second}))

	assert.Contains(t, buf.String(), "Second to move\n")
}

func TestConclusions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Conclusions(&buf, nil))
	assert.Equal(t, "ongoing\n", buf.String())

	buf.Reset()
	require.NoError(t, Conclusions(&buf, []model.Conclusion{
		model.Win(model.First, []int{0, 1, 2}),
		model.Win(model.Second, []int{3, 4, 5}),
	}))
	assert.Equal(t, "win First [0 1 2]\nwin Second [3 4 5]\n", buf.String())

	buf.Reset()
	require.NoError(t, Conclusions(&buf, []model.Conclusion{model.Draw()}))
	assert.Equal(t, "draw\n", buf.String())
}
