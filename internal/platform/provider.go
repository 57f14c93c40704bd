package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Monitors      MonitorEnumerator
	Overlays      OverlayHost
	Hotkeys       HotkeyRegistrar
	Tray          Tray
	ColorPicker   ColorPicker
	HotkeyCapture HotkeyCapture
	Autostart     Autostart
	Loop          EventLoop
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("blanqr is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// ErrHotkeyInUse is returned when another application already owns the binding.
var ErrHotkeyInUse = errors.New("hotkey is already registered by another application")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// Validate reports the first backend missing from p.
func (p *Provider) Validate() error {
	missing := func(name string) error {
		return fmt.Errorf("platform provider has no %s backend", name)
	}
	switch {
	case p.Monitors == nil:
		return missing("monitor")
	case p.Overlays == nil:
		return missing("overlay")
	case p.Hotkeys == nil:
		return missing("hotkey")
	case p.Tray == nil:
		return missing("tray")
	case p.ColorPicker == nil:
		return missing("color picker")
	case p.HotkeyCapture == nil:
		return missing("hotkey capture")
	case p.Autostart == nil:
		return missing("autostart")
	case p.Loop == nil:
		return missing("event loop")
	}
	return nil
}
