// Package model holds the value types shared by the overlay, the platform
// backends and the diagnostics: monitors, colors and hotkeys.
package model

import "fmt"

// Rect is a rectangle in virtual-screen coordinates. Right and Bottom are
// exclusive, matching the Win32 RECT convention.
type Rect struct {
	Left   int32 `yaml:"left"   json:"left"`
	Top    int32 `yaml:"top"    json:"top"`
	Right  int32 `yaml:"right"  json:"right"`
	Bottom int32 `yaml:"bottom" json:"bottom"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Union returns the smallest rectangle containing both r and o.
// An empty rectangle does not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width(), r.Height(), r.Left, r.Top)
}

// Monitor describes one display device at the moment it was enumerated.
// Monitors are snapshots: a fresh slice is produced on every enumeration and
// values are never updated in place.
type Monitor struct {
	Handle     uintptr `yaml:"-"                     json:"-"`
	Bounds     Rect    `yaml:"bounds"                json:"bounds"`
	Primary    bool    `yaml:"primary,omitempty"     json:"primary,omitempty"`
	DeviceName string  `yaml:"device_name,omitempty" json:"device_name,omitempty"`
}

// VirtualBounds returns the bounding rectangle of all monitors.
func VirtualBounds(monitors []Monitor) Rect {
	var r Rect
	for _, m := range monitors {
		r = r.Union(m.Bounds)
	}
	return r
}
