package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLiveNeighbors(t *testing.T) {
	b := mustBoard(t, [][]uint8{
		{1, 1, 0, 0},
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 0, 1, 1},
	})
	tests := []struct {
		p    Position
		want int
	}{
		{Position{0, 0}, 2},
		{Position{0, 3}, 1},
		{Position{3, 0}, 0},
		{Position{3, 3}, 3},
		{Position{0, 1}, 2},
		{Position{2, 0}, 2},
		{Position{1, 1}, 4},
		{Position{2, 2}, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountLiveNeighbors(b, tt.p), "p=%v", tt.p)
	}
}

func TestCountLiveNeighborsFullBoard(t *testing.T) {
	const n = 5
	cells := make([][]uint8, n)
	for i := range cells {
		cells[i] = []uint8{1, 1, 1, 1, 1}
	}
	b := mustBoard(t, cells)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p := Position{r, c}
			assert.Equal(t, len(Classify(p, n).Offsets()), CountLiveNeighbors(b, p))
		}
	}
}

func TestCountLiveNeighborsSingleCell(t *testing.T) {
	b := mustBoard(t, [][]uint8{{1}})
	assert.Zero(t, CountLiveNeighbors(b, Position{0, 0}))
}
