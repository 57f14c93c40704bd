// Package preview renders the monitor layout as it would look blanked.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/blanqr/internal/model"
)

// DefaultMaxWidth bounds the rendered image width in pixels.
const DefaultMaxWidth = 960

const margin = 16

var (
	background = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF}
	frame      = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
)

// Options controls rendering.
type Options struct {
	// Fill is the overlay color painted over each monitor.
	Fill model.Color
	// MaxWidth bounds the output width; zero means DefaultMaxWidth.
	MaxWidth int
}

// Render draws every monitor, scaled to fit, filled with opts.Fill and
// labelled with its index and size. An empty layout yields a small blank
// image.
func Render(monitors []model.Monitor, opts Options) *image.RGBA {
	maxW := opts.MaxWidth
	if maxW <= 0 {
		maxW = DefaultMaxWidth
	}
	virt := model.VirtualBounds(monitors)
	if virt.Empty() {
		img := image.NewRGBA(image.Rect(0, 0, 2*margin, 2*margin))
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
		return img
	}

	scale := float64(maxW-2*margin) / float64(virt.Width())
	if scale > 1 {
		scale = 1
	}
	w := int(float64(virt.Width())*scale) + 2*margin
	h := int(float64(virt.Height())*scale) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	fill := toRGBA(opts.Fill)
	text := contrast(opts.Fill)
	for i, m := range monitors {
		r := image.Rect(
			margin+int(float64(m.Bounds.Left-virt.Left)*scale),
			margin+int(float64(m.Bounds.Top-virt.Top)*scale),
			margin+int(float64(m.Bounds.Right-virt.Left)*scale),
			margin+int(float64(m.Bounds.Bottom-virt.Top)*scale),
		)
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
		drawRectangle(img, r, frame)

		label := fmt.Sprintf("%d: %dx%d", i+1, m.Bounds.Width(), m.Bounds.Height())
		if m.Primary {
			label += " *"
		}
		cx := (r.Min.X + r.Max.X) / 2
		cy := (r.Min.Y + r.Max.Y) / 2
		drawText(img, label, cx, cy, text)
	}
	return img
}

// WritePNG renders the layout and encodes it to w.
func WritePNG(w io.Writer, monitors []model.Monitor, opts Options) error {
	return EncodePNG(w, Render(monitors, opts))
}

// EncodePNG encodes a rendered layout.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: failed to encode PNG: %w", err)
	}
	return nil
}

func toRGBA(c model.Color) color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// contrast picks black or white text for legibility on c.
func contrast(c model.Color) color.RGBA {
	lum := 299*int(c.R()) + 587*int(c.G()) + 114*int(c.B())
	if lum > 128*1000 {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// drawRectangle outlines r, clamped to the image.
func drawRectangle(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawText centers text on (x, y) using the 7x13 basic font.
func drawText(img *image.RGBA, text string, x, y int, c color.Color) {
	const charW, charH = 7, 13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(x - len(text)*charW/2),
			Y: fixed.I(y + charH/2),
		},
	}
	d.DrawString(text)
}
