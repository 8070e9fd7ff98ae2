package render

import (
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TextRenderer implements basic terminal rendering
type TextRenderer struct {
	out   io.Writer
	clear bool
}

// NewTextRenderer writes frames to out, clearing the terminal first when clear is set
func NewTextRenderer(out io.Writer, clear bool) *TextRenderer {
	return &TextRenderer{out: out, clear: clear}
}

// Render writes the title and the grid
func (r *TextRenderer) Render(f Frame) error {
	if r.clear {
		if err := r.Clear(); err != nil {
			return err
		}
	}

	var sb strings.Builder
	sb.WriteString(f.Title())
	sb.WriteByte('\n')
	for i, alive := range liveMask(f) {
		if alive {
			sb.WriteString(gridPosBlock)
		} else {
			sb.WriteString(gridPosEmpty)
		}
		if (i+1)%f.Size == 0 {
			sb.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[TextRenderer.Clear] failed to clear terminal")
	}
	return nil
}

func (r *TextRenderer) Close() error { return nil }
