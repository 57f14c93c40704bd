//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// Procedures github.com/lxn/win does not wrap.
var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procAppendMenuW         = user32.NewProc("AppendMenuW")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procFillRect            = user32.NewProc("FillRect")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
	procIsWindow            = user32.NewProc("IsWindow")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
	procRegisterHotKey      = user32.NewProc("RegisterHotKey")
	procSetWindowTextW      = user32.NewProc("SetWindowTextW")
	procShowCursor          = user32.NewProc("ShowCursor")
	procUnregisterHotKey    = user32.NewProc("UnregisterHotKey")

	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
)

func appendMenu(menu win.HMENU, flags uint32, id uint32, text string) error {
	var ptr uintptr
	if text != "" {
		p, err := windows.UTF16PtrFromString(text)
		if err != nil {
			return err
		}
		ptr = uintptr(unsafe.Pointer(p))
	}
	r, _, err := procAppendMenuW.Call(uintptr(menu), uintptr(flags), uintptr(id), ptr)
	if r == 0 {
		return fmt.Errorf("AppendMenuW %q: %w", text, err)
	}
	return nil
}

func fillRect(hdc win.HDC, rc *win.RECT, color uint32) {
	brush, _, _ := procCreateSolidBrush.Call(uintptr(color))
	if brush == 0 {
		return
	}
	procFillRect.Call(uintptr(hdc), uintptr(unsafe.Pointer(rc)), brush)
	win.DeleteObject(win.HGDIOBJ(brush))
}

func keyDown(vk uint32) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return int16(r) < 0
}

func isWindow(hwnd win.HWND) bool {
	r, _, _ := procIsWindow.Call(uintptr(hwnd))
	return r != 0
}

func setWindowText(hwnd win.HWND, text string) {
	p, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	procSetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(p)))
}

func showCursor(show bool) {
	var v uintptr
	if show {
		v = 1
	}
	procShowCursor.Call(v)
}

func postThreadQuit(threadID uint32) {
	procPostThreadMessageW.Call(uintptr(threadID), win.WM_QUIT, 0, 0)
}
