//go:build windows

package win32

import (
	"errors"
	"fmt"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/platform"
)

const (
	modNoRepeat = 0x4000

	errHotkeyAlreadyRegistered = windows.Errno(1409)
)

// HotkeyRegistrar binds the toggle hotkey to the listener window.
type HotkeyRegistrar struct {
	hwnd       win.HWND
	current    model.Hotkey
	registered bool
}

// newHotkeyRegistrar returns a registrar delivering WM_HOTKEY to l.
func newHotkeyRegistrar(l *listener) *HotkeyRegistrar {
	return &HotkeyRegistrar{hwnd: l.hwnd}
}

// Register replaces the current binding with hk. If hk cannot be bound the
// previous binding is restored and the error is returned.
func (r *HotkeyRegistrar) Register(hk model.Hotkey) error {
	prev, had := r.current, r.registered
	if had {
		_ = r.Unregister()
	}
	if err := r.register(hk); err != nil {
		if had && r.register(prev) == nil {
			r.current, r.registered = prev, true
		}
		if errors.Is(err, errHotkeyAlreadyRegistered) {
			return fmt.Errorf("register %s: %w", hk, platform.ErrHotkeyInUse)
		}
		return fmt.Errorf("register %s: %w", hk, err)
	}
	r.current, r.registered = hk, true
	return nil
}

func (r *HotkeyRegistrar) register(hk model.Hotkey) error {
	ret, _, err := procRegisterHotKey.Call(uintptr(r.hwnd), hotkeyID,
		uintptr(hk.Modifiers)|modNoRepeat, uintptr(hk.Key))
	if ret == 0 {
		return err
	}
	return nil
}

func (r *HotkeyRegistrar) Unregister() error {
	if !r.registered {
		return nil
	}
	r.registered = false
	ret, _, err := procUnregisterHotKey.Call(uintptr(r.hwnd), hotkeyID)
	if ret == 0 {
		return fmt.Errorf("unregister %s: %w", r.current, err)
	}
	return nil
}
