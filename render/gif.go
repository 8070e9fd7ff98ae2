package render

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 16

const (
	bgIndex uint8 = iota
	textIndex
	liveIndex
)

var palette = color.Palette{
	bgIndex:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	textIndex: color.RGBA{A: 0xff},
	liveIndex: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
}

// GIFRenderer is the export mode: it collects one frame per generation and
// encodes an animated GIF on Close.
type GIFRenderer struct {
	out    io.Writer
	file   *os.File
	scale  int
	delay  int
	frames gif.GIF
}

// NewGIFRenderer encodes to out. Each cell is drawn as a cellPixels square
// and every frame is shown for frameRate.
func NewGIFRenderer(out io.Writer, cellPixels int, frameRate time.Duration) *GIFRenderer {
	if cellPixels <= 0 {
		cellPixels = 1
	}
	return &GIFRenderer{
		out:   out,
		scale: cellPixels,
		delay: int(frameRate / (10 * time.Millisecond)),
	}
}

// CreateGIF is NewGIFRenderer writing to a newly created file at path.
func CreateGIF(path string, cellPixels int, frameRate time.Duration) (*GIFRenderer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[CreateGIF] failed to create file: %+v", path)
	}
	r := NewGIFRenderer(f, cellPixels, frameRate)
	r.file = f
	return r, nil
}

func (r *GIFRenderer) Render(f Frame) error {
	side := f.Size * r.scale
	img := image.NewPaletted(image.Rect(0, 0, side, side+captionHeight), palette)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(palette[textIndex]),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, captionHeight-4),
	}
	d.DrawString(f.Title())

	for i, alive := range liveMask(f) {
		if !alive {
			continue
		}
		x0, y0 := (i%f.Size)*r.scale, (i/f.Size)*r.scale+captionHeight
		for y := y0; y < y0+r.scale; y++ {
			for x := x0; x < x0+r.scale; x++ {
				img.SetColorIndex(x, y, liveIndex)
			}
		}
	}

	r.frames.Image = append(r.frames.Image, img)
	r.frames.Delay = append(r.frames.Delay, r.delay)
	return nil
}

// Frames returns the number of frames collected so far.
func (r *GIFRenderer) Frames() int {
	return len(r.frames.Image)
}

// Close encodes the animation and closes the file opened by CreateGIF.
func (r *GIFRenderer) Close() error {
	var err error
	if len(r.frames.Image) > 0 {
		if err = gif.EncodeAll(r.out, &r.frames); err != nil {
			err = errors.Wrap(err, "[GIFRenderer.Close] failed to encode animation")
		}
	}
	if r.file != nil {
		if cerr := r.file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "[GIFRenderer.Close] failed to close file")
		}
	}
	return err
}
