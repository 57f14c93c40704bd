// Package display enumerates monitors portably with kbinani/screenshot.
//
// It backs the diagnostic commands on every OS. The tray app on Windows uses
// the Win32 enumerator, which also reports device names.
package display

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/mj1618/blanqr/internal/model"
)

// Source abstracts the screenshot package for tests.
type Source interface {
	NumActiveDisplays() int
	GetDisplayBounds(i int) image.Rectangle
}

type screenshotSource struct{}

func (screenshotSource) NumActiveDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (screenshotSource) GetDisplayBounds(i int) image.Rectangle {
	return screenshot.GetDisplayBounds(i)
}

// Enumerator implements platform.MonitorEnumerator.
type Enumerator struct {
	src Source
}

// New returns an enumerator over the active displays.
func New() *Enumerator { return &Enumerator{src: screenshotSource{}} }

// NewWithSource returns an enumerator over src.
func NewWithSource(src Source) *Enumerator { return &Enumerator{src: src} }

// Monitors lists the active displays. Display 0 is the primary one; empty
// bounds are skipped.
func (e *Enumerator) Monitors() ([]model.Monitor, error) {
	n := e.src.NumActiveDisplays()
	if n < 0 {
		return nil, fmt.Errorf("display: invalid display count %d", n)
	}
	out := make([]model.Monitor, 0, n)
	for i := 0; i < n; i++ {
		b := e.src.GetDisplayBounds(i)
		if b.Empty() {
			continue
		}
		out = append(out, model.Monitor{
			Bounds: model.Rect{
				Left:   int32(b.Min.X),
				Top:    int32(b.Min.Y),
				Right:  int32(b.Max.X),
				Bottom: int32(b.Max.Y),
			},
			Primary:    i == 0,
			DeviceName: fmt.Sprintf("display%d", i),
		})
	}
	return out, nil
}
