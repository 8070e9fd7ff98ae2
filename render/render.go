// Package render draws committed generations. Renderers only ever see the
// live-cell list of a generation and the board size, never the board.
package render

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-bounded/model"
)

// ErrQuit is returned by a Poller when the user asks to stop.
var ErrQuit = errors.New("quit requested")

// Frame is one committed generation as seen by a renderer.
type Frame struct {
	Generation int
	Size       int
	Live       []model.Position
	Population int
}

func NewFrame(generation, size int, live []model.Position) Frame {
	return Frame{
		Generation: generation,
		Size:       size,
		Live:       live,
		Population: len(live),
	}
}

// Title is the caption shown above every frame.
func (f Frame) Title() string {
	return "Generation " + strconv.Itoa(f.Generation)
}

// Renderer consumes one frame per generation.
type Renderer interface {
	Render(f Frame) error
	Close() error
}

// Poller is implemented by interactive renderers that watch for user input.
// Poll blocks until ctx is done (returning nil) or the user quits (ErrQuit).
type Poller interface {
	Poll(ctx context.Context) error
}

// liveMask expands a frame's live list into a row-major bitmap.
func liveMask(f Frame) []bool {
	mask := make([]bool, f.Size*f.Size)
	for _, p := range f.Live {
		if p.Row >= 0 && p.Row < f.Size && p.Col >= 0 && p.Col < f.Size {
			mask[p.Row*f.Size+p.Col] = true
		}
	}
	return mask
}
