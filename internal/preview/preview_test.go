package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/mj1618/blanqr/internal/model"
)

func twoMonitors() []model.Monitor {
	return []model.Monitor{
		{Bounds: model.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}, Primary: true},
		{Bounds: model.Rect{Left: 1920, Top: 0, Right: 3840, Bottom: 1080}},
	}
}

func TestRender_ScalesToMaxWidth(t *testing.T) {
	img := Render(twoMonitors(), Options{Fill: model.White, MaxWidth: 400})

	if got := img.Bounds().Dx(); got != 400 {
		t.Errorf("width = %d, want 400", got)
	}
	monH, monW := 1080.0, 3840.0
	wantH := int(monH*float64(400-2*margin)/monW) + 2*margin
	if got := img.Bounds().Dy(); got != wantH {
		t.Errorf("height = %d, want %d", got, wantH)
	}
}

func TestRender_FillsMonitors(t *testing.T) {
	amber := model.RGB(0xFF, 0xA0, 0x40)
	img := Render(twoMonitors(), Options{Fill: amber, MaxWidth: 400})

	// A point inside the first monitor, away from the frame and label.
	got := img.RGBAAt(margin+5, margin+5)
	want := color.RGBA{R: 0xFF, G: 0xA0, B: 0x40, A: 0xFF}
	if got != want {
		t.Errorf("fill pixel = %v, want %v", got, want)
	}
	if bg := img.RGBAAt(1, 1); bg != background {
		t.Errorf("margin pixel = %v, want background", bg)
	}
}

func TestRender_Empty(t *testing.T) {
	img := Render(nil, Options{})
	if img.Bounds().Dx() != 2*margin || img.Bounds().Dy() != 2*margin {
		t.Errorf("unexpected empty image size %v", img.Bounds())
	}
}

func TestRender_NoUpscale(t *testing.T) {
	small := []model.Monitor{{Bounds: model.Rect{Right: 200, Bottom: 100}}}
	img := Render(small, Options{MaxWidth: 2000})
	if got := img.Bounds().Dx(); got != 200+2*margin {
		t.Errorf("width = %d, want %d", got, 200+2*margin)
	}
}

func TestContrast(t *testing.T) {
	if c := contrast(model.White); c.R != 0 {
		t.Errorf("expected dark text on white, got %v", c)
	}
	if c := contrast(model.Black); c.R != 0xFF {
		t.Errorf("expected light text on black, got %v", c)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, twoMonitors(), Options{Fill: model.Black}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != DefaultMaxWidth {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), DefaultMaxWidth)
	}
}
