//go:build windows

package win32

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows/registry"

	"github.com/mj1618/blanqr/internal/platform"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// Autostart manages the per-user Run key entry for the running executable.
type Autostart struct {
	executable func() (string, error)
}

// NewAutostart returns an Autostart for os.Executable.
func NewAutostart() *Autostart {
	return &Autostart{executable: os.Executable}
}

func (a *Autostart) IsEnabled() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()
	_, _, err = k.GetStringValue(platform.AutostartName)
	return err == nil
}

func (a *Autostart) Enable() error {
	exe, err := a.executable()
	if err != nil {
		return fmt.Errorf("autostart: failed to resolve executable: %w", err)
	}
	k, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("autostart: failed to open Run key: %w", err)
	}
	defer k.Close()
	if err := k.SetStringValue(platform.AutostartName, platform.AutostartCommand(exe)); err != nil {
		return fmt.Errorf("autostart: failed to write Run value: %w", err)
	}
	return nil
}

func (a *Autostart) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("autostart: failed to open Run key: %w", err)
	}
	defer k.Close()
	if err := k.DeleteValue(platform.AutostartName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("autostart: failed to delete Run value: %w", err)
	}
	return nil
}
