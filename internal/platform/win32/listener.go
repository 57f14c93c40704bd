//go:build windows

package win32

import (
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/platform"
)

const (
	hotkeyID   = 1
	wmTrayIcon = win.WM_APP + 1
)

// listener is a hidden top-level window. It owns the global hotkey, receives
// tray callbacks and gets the WM_DISPLAYCHANGE broadcast, which message-only
// windows never see.
type listener struct {
	hwnd           win.HWND
	taskbarCreated uint32

	onEvent func(platform.Event)
	tray    *Tray
}

func newListener() (*listener, error) {
	l := &listener{
		taskbarCreated: win.RegisterWindowMessage(windows.StringToUTF16Ptr("TaskbarCreated")),
	}
	cls, err := registerClass("BlanqrListener", windows.NewCallback(l.wndProc), 0, 0)
	if err != nil {
		return nil, err
	}
	hwnd, err := cls.create(win.WS_EX_TOOLWINDOW, win.WS_OVERLAPPED, "Blanqr", 0, 0, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	l.hwnd = hwnd
	return l, nil
}

func (l *listener) destroy() {
	if l.hwnd != 0 {
		win.DestroyWindow(l.hwnd)
		l.hwnd = 0
	}
}

func (l *listener) emit(e platform.Event) {
	if l.onEvent != nil {
		l.onEvent(e)
	}
}

func (l *listener) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == l.taskbarCreated && l.taskbarCreated != 0 {
		if l.tray != nil {
			l.tray.readd()
		}
		return 0
	}
	switch msg {
	case win.WM_HOTKEY:
		if wParam == hotkeyID {
			l.emit(platform.EventHotkey)
		}
		return 0
	case win.WM_DISPLAYCHANGE:
		l.emit(platform.EventDisplayChange)
		return 0
	case wmTrayIcon:
		if l.tray != nil {
			l.tray.handle(loword(lParam))
		}
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}
