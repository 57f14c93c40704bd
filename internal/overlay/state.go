package overlay

import (
	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/platform"
)

// State is a point-in-time copy of the controller.
type State struct {
	Visible bool          `yaml:"visible" json:"visible"`
	Color   model.Color   `yaml:"color" json:"color"`
	Windows []WindowState `yaml:"windows" json:"windows"`
}

// WindowState describes one live overlay window.
type WindowState struct {
	Bounds  model.Rect  `yaml:"bounds" json:"bounds"`
	Color   model.Color `yaml:"color" json:"color"`
	Visible bool        `yaml:"visible" json:"visible"`
}

// VisibleWindows counts the windows currently shown.
func (s State) VisibleWindows() int {
	n := 0
	for _, w := range s.Windows {
		if w.Visible {
			n++
		}
	}
	return n
}

// Snapshot returns the current state. Called from inside a transition it
// reflects the state before that transition commits.
func (c *Controller) Snapshot() State {
	c.stateMu.Lock()
	s := State{Visible: c.visible, Color: c.color}
	windows := append([]platform.OverlayWindow(nil), c.windows...)
	c.stateMu.Unlock()

	s.Windows = make([]WindowState, 0, len(windows))
	for _, w := range windows {
		s.Windows = append(s.Windows, WindowState{
			Bounds:  w.Bounds(),
			Color:   w.Color(),
			Visible: w.Visible(),
		})
	}
	return s
}

// Visible reports whether the overlay is in the Visible state.
func (c *Controller) Visible() bool { return c.isVisible() }

// Color returns the current fill color.
func (c *Controller) Color() model.Color { return c.currentColor() }
