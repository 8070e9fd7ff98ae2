package render

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const liveGlyph = '█'

var (
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	liveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
)

// ScreenRenderer is the interactive display mode. Each cell takes two
// terminal columns; the title sits on the first line.
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer opens the controlling terminal.
func NewTerminalRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] failed to create screen")
	}
	return NewScreenRenderer(screen)
}

// NewScreenRenderer initializes screen and draws onto it.
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.Clear()
	return &ScreenRenderer{screen: screen}, nil
}

func (r *ScreenRenderer) Render(f Frame) error {
	r.screen.Clear()

	title := f.Title() + "  live: " + strconv.Itoa(f.Population) + "  (q to quit)"
	for i, ch := range title {
		r.screen.SetContent(i, 0, ch, nil, titleStyle)
	}

	width, height := r.screen.Size()
	for _, p := range f.Live {
		x, y := p.Col*2, p.Row+1
		if x+1 >= width || y >= height {
			continue
		}
		r.screen.SetContent(x, y, liveGlyph, nil, liveStyle)
		r.screen.SetContent(x+1, y, liveGlyph, nil, liveStyle)
	}

	r.screen.Show()
	return nil
}

// Poll handles keyboard and resize events until ctx is done or the user
// presses q, Esc or Ctrl-C.
func (r *ScreenRenderer) Poll(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return ErrQuit
			}
		}
	}
}

func (r *ScreenRenderer) Close() error {
	r.screen.Fini()
	return nil
}
