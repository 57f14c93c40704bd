//go:build windows

package win32

import (
	"runtime"

	"github.com/mj1618/blanqr/internal/platform"
)

func init() {
	// Windows and their message queue are bound to the creating thread.
	runtime.LockOSThread()

	platform.NewProviderFunc = func() (*platform.Provider, error) {
		l, err := newListener()
		if err != nil {
			return nil, err
		}
		host, err := NewOverlayHost()
		if err != nil {
			l.destroy()
			return nil, err
		}
		capture, err := NewHotkeyCapture()
		if err != nil {
			l.destroy()
			return nil, err
		}
		return &platform.Provider{
			Monitors:      NewMonitorEnumerator(),
			Overlays:      host,
			Hotkeys:       newHotkeyRegistrar(l),
			Tray:          newTray(l),
			ColorPicker:   newColorPicker(l),
			HotkeyCapture: capture,
			Autostart:     NewAutostart(),
			Loop:          newEventLoop(l),
		}, nil
	}
}
