// Package overlay drives the set of full-monitor overlay windows.
//
// A Controller is either Hidden or Visible. Every transition runs to
// completion before the next one starts: a transition requested while
// another is running (for example a dismiss gesture delivered from inside a
// window callback during ShowAll) is queued and executed right after the
// running one commits. Observers therefore only ever see whole states.
package overlay

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/platform"
)

// Controller owns the overlay windows, the fill color and the visible flag.
type Controller struct {
	monitors platform.MonitorEnumerator
	host     platform.OverlayHost
	log      *zap.Logger

	// mu guards the transition queue.
	mu      sync.Mutex
	pending []op
	running bool

	// stateMu guards the fields below for Snapshot readers.
	stateMu sync.Mutex
	windows []platform.OverlayWindow
	color   model.Color
	visible bool
}

type op struct {
	name string
	fn   func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithColor sets the initial fill color.
func WithColor(col model.Color) Option {
	return func(c *Controller) { c.color = col }
}

// New returns a Hidden controller and installs its Dismiss method as the
// host's dismiss handler.
func New(monitors platform.MonitorEnumerator, host platform.OverlayHost, opts ...Option) *Controller {
	c := &Controller{
		monitors: monitors,
		host:     host,
		log:      zap.NewNop(),
		color:    model.DefaultColor,
	}
	for _, o := range opts {
		o(c)
	}
	host.SetDismissHandler(c.Dismiss)
	return c
}

// Toggle hides the overlay when it is visible and shows it otherwise. The
// decision is made when the transition runs, not when it is requested.
func (c *Controller) Toggle() {
	c.submit("toggle", func() {
		if c.isVisible() {
			c.hideAll()
		} else {
			c.showAll()
		}
	})
}

// ShowAll rebuilds one window per connected monitor and shows them all.
// Windows that fail to create are skipped; with no monitors at all the
// controller is still Visible.
func (c *Controller) ShowAll() { c.submit("show", c.showAll) }

// HideAll hides every window and keeps them for later destruction. It has no
// effect when the overlay is already hidden.
func (c *Controller) HideAll() { c.submit("hide", c.hideAll) }

// SetColor records col and pushes it to every live window, visible or not.
func (c *Controller) SetColor(col model.Color) {
	c.submit("set-color", func() { c.setColor(col) })
}

// Resync reacts to a monitor layout change. A visible overlay is rebuilt
// for the new layout; a hidden one drops its stale windows.
func (c *Controller) Resync() {
	c.submit("resync", func() {
		if c.isVisible() {
			c.showAll()
			return
		}
		c.destroyAll()
	})
}

// Dismiss is invoked for a click or Escape on any overlay window.
func (c *Controller) Dismiss() {
	c.submit("dismiss", func() {
		c.log.Debug("dismiss gesture")
		c.hideAll()
	})
}

// Close destroys every window and leaves the controller Hidden.
func (c *Controller) Close() {
	c.submit("close", func() {
		c.destroyAll()
		c.stateMu.Lock()
		c.visible = false
		c.stateMu.Unlock()
	})
}

// submit runs fn now, or queues it behind the transition already running.
// A caller on another goroutine may return before its queued fn has run.
func (c *Controller) submit(name string, fn func()) {
	c.mu.Lock()
	c.pending = append(c.pending, op{name: name, fn: fn})
	if c.running {
		c.mu.Unlock()
		c.log.Debug("transition queued", zap.String("op", name))
		return
	}
	c.running = true
	c.mu.Unlock()

	// A panicking transition must not leave the queue marked as running.
	drained := false
	defer func() {
		if !drained {
			c.mu.Lock()
			c.running = false
			c.mu.Unlock()
		}
	}()
	for {
		c.mu.Lock()
		if len(c.pending) == 0 {
			c.running = false
			drained = true
			c.mu.Unlock()
			return
		}
		next := c.pending[0]
		c.pending = c.pending[1:]
		c.mu.Unlock()
		next.fn()
	}
}

func (c *Controller) showAll() {
	monitors, err := c.monitors.Monitors()
	if err != nil {
		c.log.Warn("monitor enumeration failed", zap.Error(err))
		monitors = nil
	}

	c.destroyAll()

	col := c.currentColor()
	windows := make([]platform.OverlayWindow, 0, len(monitors))
	for _, m := range monitors {
		w, err := c.host.CreateOverlay(m, col)
		if err != nil {
			c.log.Warn("overlay window creation failed",
				zap.String("monitor", m.DeviceName),
				zap.Stringer("bounds", m.Bounds),
				zap.Error(err))
			continue
		}
		w.SetColor(col)
		windows = append(windows, w)
	}

	c.stateMu.Lock()
	c.windows = windows
	c.visible = true
	c.stateMu.Unlock()

	for _, w := range windows {
		w.Show()
	}
	c.log.Info("overlay shown",
		zap.Int("monitors", len(monitors)),
		zap.Int("windows", len(windows)),
		zap.Stringer("color", col))
}

func (c *Controller) hideAll() {
	windows := c.liveWindows()
	anyVisible := false
	for _, w := range windows {
		if w.Visible() {
			anyVisible = true
			break
		}
	}
	if !c.isVisible() && !anyVisible {
		return
	}

	c.stateMu.Lock()
	c.visible = false
	c.stateMu.Unlock()

	for _, w := range windows {
		w.Hide()
	}
	c.log.Info("overlay hidden", zap.Int("windows", len(windows)))
}

func (c *Controller) setColor(col model.Color) {
	c.stateMu.Lock()
	c.color = col
	windows := append([]platform.OverlayWindow(nil), c.windows...)
	c.stateMu.Unlock()

	for _, w := range windows {
		w.SetColor(col)
	}
	c.log.Debug("color set", zap.Stringer("color", col), zap.Int("windows", len(windows)))
}

func (c *Controller) destroyAll() {
	c.stateMu.Lock()
	windows := c.windows
	c.windows = nil
	c.stateMu.Unlock()

	for _, w := range windows {
		w.Destroy()
	}
	if len(windows) > 0 {
		c.log.Debug("overlay windows destroyed", zap.Int("windows", len(windows)))
	}
}

func (c *Controller) liveWindows() []platform.OverlayWindow {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return append([]platform.OverlayWindow(nil), c.windows...)
}

func (c *Controller) isVisible() bool {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.visible
}

func (c *Controller) currentColor() model.Color {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.color
}
