// Package platform defines the OS backends blanqr drives and the pure
// helpers shared by their implementations.
package platform

import (
	"context"

	"github.com/mj1618/blanqr/internal/model"
)

// MonitorEnumerator takes display snapshots.
type MonitorEnumerator interface {
	// Monitors returns every active display. Zero displays is an empty
	// slice, not an error; the order is whatever the OS reports.
	Monitors() ([]model.Monitor, error)
}

// OverlayWindow is one borderless, top-most window covering a single monitor.
// Its geometry is fixed at creation.
type OverlayWindow interface {
	// Show makes the window visible, re-asserts top-most ordering and
	// suppresses the cursor while any overlay of the host is visible.
	Show()
	// Hide makes the window invisible and releases its cursor suppression.
	Hide()
	// SetColor changes the fill color and schedules a repaint.
	SetColor(c model.Color)

	Color() model.Color
	Bounds() model.Rect
	Visible() bool

	// Destroy releases the native window. Calls after the first are no-ops.
	Destroy()
}

// OverlayHost creates overlay windows and routes their dismiss gestures.
type OverlayHost interface {
	// SetDismissHandler installs the single handler invoked once per dismiss
	// gesture (left click, right click or Escape) on any overlay window.
	SetDismissHandler(fn func())
	// CreateOverlay creates a hidden window covering m, filled with c.
	CreateOverlay(m model.Monitor, c model.Color) (OverlayWindow, error)
}

// HotkeyRegistrar owns the single global toggle hotkey.
type HotkeyRegistrar interface {
	// Register binds hk, replacing any binding made earlier.
	Register(hk model.Hotkey) error
	Unregister() error
}

// Tray is the notification-area icon and its context menu.
type Tray interface {
	Start(opts TrayOptions) error
	// SetHotkeyLabel updates the grayed "Toggle: ..." hint in the menu.
	SetHotkeyLabel(label string)
	Close() error
}

// ColorPicker asks the user for a fill color.
type ColorPicker interface {
	// PickColor blocks until the user chooses; ok is false on cancel.
	PickColor(current model.Color) (c model.Color, ok bool)
}

// HotkeyCapture records a key combination from the physical keyboard.
type HotkeyCapture interface {
	// CaptureHotkey blocks until the user confirms or cancels; ok is false on cancel.
	CaptureHotkey(current model.Hotkey) (hk model.Hotkey, ok bool)
}

// Autostart controls "run at login" for the current executable.
type Autostart interface {
	IsEnabled() bool
	Enable() error
	Disable() error
}

// EventLoop pumps the OS message queue on the calling thread.
type EventLoop interface {
	// Run dispatches events to fn until Quit is called or ctx is done.
	// It must be called on the thread that created the windows.
	Run(ctx context.Context, fn func(Event)) error
	// Quit asks Run to return after the current event.
	Quit()
}
