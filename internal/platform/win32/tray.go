//go:build windows

package win32

import (
	"errors"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/platform"
)

// Tray is the notification-area icon.
type Tray struct {
	l     *listener
	nid   win.NOTIFYICONDATA
	opts  platform.TrayOptions
	label string
	added bool
}

// newTray returns a tray icon bound to l. It is not shown until Start.
func newTray(l *listener) *Tray {
	return &Tray{l: l}
}

func (t *Tray) Start(opts platform.TrayOptions) error {
	t.opts = opts
	t.label = opts.HotkeyLabel

	t.nid = win.NOTIFYICONDATA{}
	t.nid.CbSize = uint32(unsafe.Sizeof(t.nid))
	t.nid.HWnd = t.l.hwnd
	t.nid.UID = 1
	t.nid.UFlags = win.NIF_ICON | win.NIF_MESSAGE | win.NIF_TIP
	t.nid.UCallbackMessage = wmTrayIcon
	t.nid.HIcon = win.LoadIcon(0, win.MAKEINTRESOURCE(win.IDI_APPLICATION))
	tip, err := windows.UTF16FromString(opts.Tooltip)
	if err != nil {
		return err
	}
	copy(t.nid.SzTip[:len(t.nid.SzTip)-1], tip)

	if !win.Shell_NotifyIcon(win.NIM_ADD, &t.nid) {
		return errors.New("Shell_NotifyIcon NIM_ADD failed")
	}
	t.added = true
	t.l.tray = t
	return nil
}

func (t *Tray) SetHotkeyLabel(label string) { t.label = label }

func (t *Tray) Close() error {
	t.l.tray = nil
	if !t.added {
		return nil
	}
	t.added = false
	if !win.Shell_NotifyIcon(win.NIM_DELETE, &t.nid) {
		return errors.New("Shell_NotifyIcon NIM_DELETE failed")
	}
	return nil
}

// readd restores the icon after Explorer restarts.
func (t *Tray) readd() {
	if t.added {
		win.Shell_NotifyIcon(win.NIM_ADD, &t.nid)
	}
}

func (t *Tray) handle(code uint32) {
	switch code {
	case win.WM_LBUTTONDBLCLK:
		t.emit(platform.TrayDoubleClick)
	case win.WM_RBUTTONUP, win.WM_CONTEXTMENU:
		t.showMenu()
	}
}

func (t *Tray) showMenu() {
	startup := false
	if t.opts.StartupEnabled != nil {
		startup = t.opts.StartupEnabled()
	}
	cmd := popupMenu(t.l.hwnd, platform.TrayMenu(t.label, startup))
	if e, ok := platform.TrayCommand(cmd); ok {
		t.emit(e)
	}
}

func (t *Tray) emit(e platform.TrayEvent) {
	if t.opts.OnEvent != nil {
		t.opts.OnEvent(e)
	}
}
