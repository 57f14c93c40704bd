//go:build windows

package win32

import (
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/platform"
)

const (
	captureTimerID   = 1
	capturePollMilli = 50

	captureWidth  = 320
	captureHeight = 180
)

// HotkeyCapture runs the "Configure Hotkey" dialog. The dialog polls the
// physical keyboard instead of reading WM_KEYDOWN so that combinations the
// shell would swallow, like Win+key, still register.
type HotkeyCapture struct {
	cls    *windowClass
	active *captureDialog
}

type captureDialog struct {
	hwnd      win.HWND
	edit      win.HWND
	hotkey    model.Hotkey
	lastKey   uint32
	confirmed bool
}

// NewHotkeyCapture registers the dialog window class.
func NewHotkeyCapture() (*HotkeyCapture, error) {
	c := &HotkeyCapture{}
	cls, err := registerClass("BlanqrHotkeyDialog", windows.NewCallback(c.wndProc), 0,
		win.HBRUSH(win.COLOR_BTNFACE+1))
	if err != nil {
		return nil, err
	}
	c.cls = cls
	return c, nil
}

// CaptureHotkey shows the dialog and pumps its messages until it is closed.
// If WM_QUIT arrives meanwhile it is re-posted for the outer loop.
func (c *HotkeyCapture) CaptureHotkey(current model.Hotkey) (model.Hotkey, bool) {
	if c.active != nil {
		win.SetForegroundWindow(c.active.hwnd)
		return current, false
	}
	dlg := &captureDialog{hotkey: current}
	c.active = dlg
	defer func() { c.active = nil }()

	hwnd, err := c.cls.create(win.WS_EX_DLGMODALFRAME|win.WS_EX_TOPMOST,
		win.WS_OVERLAPPED|win.WS_CAPTION|win.WS_SYSMENU, "Configure Hotkey",
		win.CW_USEDEFAULT, win.CW_USEDEFAULT, captureWidth, captureHeight, 0)
	if err != nil {
		return current, false
	}
	dlg.hwnd = hwnd
	win.ShowWindow(hwnd, win.SW_SHOW)
	win.SetForegroundWindow(hwnd)
	win.SetFocus(hwnd)

	var msg win.MSG
	for isWindow(hwnd) {
		r := win.GetMessage(&msg, 0, 0, 0)
		if r == 0 {
			win.PostQuitMessage(int32(msg.WParam))
			win.DestroyWindow(hwnd)
			break
		}
		if r == -1 {
			win.DestroyWindow(hwnd)
			break
		}
		if !win.IsDialogMessage(hwnd, &msg) {
			win.TranslateMessage(&msg)
			win.DispatchMessage(&msg)
		}
	}

	if dlg.confirmed && !dlg.hotkey.IsZero() {
		return dlg.hotkey, true
	}
	return current, false
}

func (c *HotkeyCapture) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	dlg := c.active
	if dlg == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}
	switch msg {
	case win.WM_CREATE:
		createControl(hwnd, "STATIC", "Press your desired hotkey combination:", win.SS_CENTER, 0, 10, 15, 280, 20)
		dlg.edit = createControl(hwnd, "EDIT", dlg.hotkey.String(),
			win.WS_TABSTOP|win.ES_CENTER|win.ES_READONLY|win.WS_BORDER, 0, 40, 50, 220, 26)
		createControl(hwnd, "BUTTON", "OK", win.WS_TABSTOP|win.BS_DEFPUSHBUTTON, win.IDOK, 60, 100, 80, 28)
		createControl(hwnd, "BUTTON", "Cancel", win.WS_TABSTOP|win.BS_PUSHBUTTON, win.IDCANCEL, 160, 100, 80, 28)
		win.SetTimer(hwnd, captureTimerID, capturePollMilli, 0)
		return 0
	case win.WM_TIMER:
		if wParam == captureTimerID {
			dlg.poll()
		}
		return 0
	case win.WM_COMMAND:
		switch loword(wParam) {
		case win.IDOK:
			if dlg.hotkey.Key == 0 {
				warn(hwnd, "Please press a valid key combination.")
				return 0
			}
			dlg.confirmed = true
			closeDialog(hwnd)
		case win.IDCANCEL:
			closeDialog(hwnd)
		}
		return 0
	case win.WM_CLOSE:
		closeDialog(hwnd)
		return 0
	case win.WM_DESTROY:
		// The loop in CaptureHotkey ends on its own; no WM_QUIT here.
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (d *captureDialog) poll() {
	hk, ok := platform.ScanKeys(keyDown)
	if !ok {
		d.lastKey = 0
		return
	}
	if hk.Key == d.lastKey {
		return
	}
	d.hotkey = hk
	d.lastKey = hk.Key
	setWindowText(d.edit, hk.String())
}

func closeDialog(hwnd win.HWND) {
	win.KillTimer(hwnd, captureTimerID)
	win.DestroyWindow(hwnd)
}

func warn(owner win.HWND, text string) {
	t, _ := windows.UTF16PtrFromString(text)
	title, _ := windows.UTF16PtrFromString("Warning")
	win.MessageBox(owner, t, title, win.MB_OK|win.MB_ICONWARNING)
}
