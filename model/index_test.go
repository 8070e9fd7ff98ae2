package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRefreshPartitionsBoard(t *testing.T) {
	b := mustBoard(t, [][]uint8{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})
	idx := Refresh(b)

	assert.Equal(t, []Position{{0, 1}, {1, 0}, {2, 2}}, idx.Live)
	assert.Len(t, idx.Dead, 6)
	assert.Equal(t, Position{0, 0}, idx.Dead[0])

	seen := map[Position]int{}
	for _, p := range append(append([]Position{}, idx.Live...), idx.Dead...) {
		seen[p]++
	}
	assert.Len(t, seen, 9)
	for p, n := range seen {
		assert.Equal(t, 1, n, "position %v", p)
	}
	assert.NoError(t, idx.validate(b))
}

func TestIndexValidate(t *testing.T) {
	b := mustBoard(t, [][]uint8{{0, 1}, {1, 0}})
	good := Refresh(b)

	tests := []struct {
		name string
		idx  Index
	}{
		{"missing cell", Index{Live: good.Live, Dead: good.Dead[:1]}},
		{"out of bounds", Index{Live: []Position{{0, 1}, {5, 5}}, Dead: good.Dead}},
		{"wrong state", Index{Live: good.Dead, Dead: good.Live}},
		{"duplicate", Index{Live: []Position{{0, 1}, {0, 1}}, Dead: good.Dead}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.idx.validate(b), ErrStaleIndex))
		})
	}
}
