//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/platform"
)

// windowClass is a registered Win32 window class.
type windowClass struct {
	name  *uint16
	hinst win.HINSTANCE
}

// registerClass registers a class whose window procedure is proc. proc must
// have been created once with windows.NewCallback; callbacks are never freed.
func registerClass(name string, proc uintptr, style uint32, background win.HBRUSH) (*windowClass, error) {
	cls, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	hinst := win.GetModuleHandle(nil)
	wc := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		Style:         style,
		LpfnWndProc:   proc,
		HInstance:     hinst,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		HbrBackground: background,
		LpszClassName: cls,
	}
	if win.RegisterClassEx(&wc) == 0 {
		return nil, fmt.Errorf("RegisterClassEx %s: %w", name, windows.GetLastError())
	}
	return &windowClass{name: cls, hinst: hinst}, nil
}

func (c *windowClass) create(exStyle, style uint32, title string, x, y, w, h int32, parent win.HWND) (win.HWND, error) {
	var titlePtr *uint16
	if title != "" {
		p, err := windows.UTF16PtrFromString(title)
		if err != nil {
			return 0, err
		}
		titlePtr = p
	}
	hwnd := win.CreateWindowEx(exStyle, c.name, titlePtr, style, x, y, w, h, parent, 0, c.hinst, nil)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx: %w", windows.GetLastError())
	}
	return hwnd, nil
}

// createControl creates a standard child control such as STATIC or BUTTON.
func createControl(parent win.HWND, class, text string, style uint32, id uintptr, x, y, w, h int32) win.HWND {
	cls, _ := windows.UTF16PtrFromString(class)
	txt, _ := windows.UTF16PtrFromString(text)
	hwnd := win.CreateWindowEx(0, cls, txt, win.WS_CHILD|win.WS_VISIBLE|style,
		x, y, w, h, parent, win.HMENU(id), win.GetModuleHandle(nil), nil)
	if hwnd != 0 {
		font := win.GetStockObject(win.DEFAULT_GUI_FONT)
		win.SendMessage(hwnd, win.WM_SETFONT, uintptr(font), 1)
	}
	return hwnd
}

// popupMenu shows items at the cursor and returns the chosen command ID,
// zero when the menu was dismissed.
func popupMenu(owner win.HWND, items []platform.MenuItem) uint32 {
	menu := win.CreatePopupMenu()
	if menu == 0 {
		return 0
	}
	defer win.DestroyMenu(menu)

	for _, it := range items {
		flags := uint32(win.MF_STRING)
		switch {
		case it.Separator:
			flags = win.MF_SEPARATOR
		case it.Grayed:
			flags |= win.MF_GRAYED
		}
		if it.Checked {
			flags |= win.MF_CHECKED
		}
		if err := appendMenu(menu, flags, it.ID, it.Text); err != nil {
			return 0
		}
	}

	var pt win.POINT
	win.GetCursorPos(&pt)
	// The menu only closes on an outside click when its owner is foreground.
	win.SetForegroundWindow(owner)
	cmd := win.TrackPopupMenu(menu, win.TPM_RETURNCMD|win.TPM_RIGHTBUTTON|win.TPM_NONOTIFY,
		pt.X, pt.Y, 0, owner, nil)
	win.PostMessage(owner, win.WM_NULL, 0, 0)
	return cmd
}

func loword(v uintptr) uint32 { return uint32(v) & 0xFFFF }
