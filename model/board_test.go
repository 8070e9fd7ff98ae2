package model

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, cells [][]uint8) *Board {
	t.Helper()
	b, err := NewBoard(cells)
	require.NoError(t, err)
	return b
}

func TestNewBoardRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]uint8
		want  error
	}{
		{"empty", nil, ErrInvalidSize},
		{"ragged", [][]uint8{{0, 1}, {1}}, ErrNotSquare},
		{"rectangular", [][]uint8{{0, 1, 0}, {1, 0, 0}}, ErrNotSquare},
		{"bad value", [][]uint8{{0, 2}, {1, 0}}, ErrInvalidCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.cells)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewBoardCopiesInput(t *testing.T) {
	cells := [][]uint8{{0, 1}, {1, 0}}
	b := mustBoard(t, cells)
	cells[0][0] = 1
	assert.Equal(t, Dead, b.Get(Position{0, 0}))

	out := b.Cells()
	out[0][1] = 0
	assert.Equal(t, Alive, b.Get(Position{0, 1}))
}

func TestEmptyBoard(t *testing.T) {
	b, err := EmptyBoard(3)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
	assert.Zero(t, b.CountLivingCells())

	_, err = EmptyBoard(0)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestBoardHashAndEqual(t *testing.T) {
	a := mustBoard(t, [][]uint8{{0, 1}, {1, 0}})
	b := mustBoard(t, [][]uint8{{0, 1}, {1, 0}})
	c := mustBoard(t, [][]uint8{{1, 1}, {1, 0}})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "01\n10\n", a.String())
}

func TestRandomBoard(t *testing.T) {
	a, err := RandomBoard(20, rand.New(rand.NewSource(7)), 0.5)
	require.NoError(t, err)
	b, err := RandomBoard(20, rand.New(rand.NewSource(7)), 0.5)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed should give the same board")

	live := a.CountLivingCells()
	assert.Greater(t, live, 100)
	assert.Less(t, live, 300)

	full, err := RandomBoard(4, rand.New(rand.NewSource(1)), 1)
	require.NoError(t, err)
	assert.Equal(t, 16, full.CountLivingCells())

	_, err = RandomBoard(4, rand.New(rand.NewSource(1)), 1.5)
	assert.Error(t, err)
	_, err = RandomBoard(-1, rand.New(rand.NewSource(1)), 0.5)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestParseBoard(t *testing.T) {
	src := `# blinker
010
0, 1, 0

0 1 0
`
	b, err := ParseBoard(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "010\n010\n010\n", b.String())

	_, err = ParseBoard(strings.NewReader("01\n0x\n"))
	assert.True(t, errors.Is(err, ErrInvalidCell))

	_, err = ParseBoard(strings.NewReader("011\n01\n"))
	assert.True(t, errors.Is(err, ErrNotSquare))
}

func TestLoadBoard(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "board.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[[1,0],[0,1]]`), 0o644))
	b, err := LoadBoard(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "10\n01\n", b.String())

	txtPath := filepath.Join(dir, "board.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("11\n00\n"), 0o644))
	b, err = LoadBoard(txtPath)
	require.NoError(t, err)
	assert.Equal(t, 2, b.CountLivingCells())

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`[[3,0],[0,1]]`), 0o644))
	_, err = LoadBoard(badPath)
	assert.True(t, errors.Is(err, ErrInvalidCell))

	_, err = LoadBoard(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
