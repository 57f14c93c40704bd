//go:build windows

package win32

import (
	"fmt"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/platform"
)

var overlayHosts int

// OverlayHost creates overlay windows and maps their HWNDs back to them.
type OverlayHost struct {
	cls     *windowClass
	windows map[win.HWND]*overlayWindow
	dismiss func()
	// cursorRefs counts visible windows; the OS cursor is hidden while > 0.
	cursorRefs int
}

// NewOverlayHost registers the overlay window class.
func NewOverlayHost() (*OverlayHost, error) {
	h := &OverlayHost{windows: map[win.HWND]*overlayWindow{}}
	overlayHosts++
	cls, err := registerClass(fmt.Sprintf("BlanqrOverlay%d", overlayHosts),
		windows.NewCallback(h.wndProc), win.CS_HREDRAW|win.CS_VREDRAW, 0)
	if err != nil {
		return nil, err
	}
	h.cls = cls
	return h, nil
}

func (h *OverlayHost) SetDismissHandler(fn func()) { h.dismiss = fn }

func (h *OverlayHost) CreateOverlay(m model.Monitor, c model.Color) (platform.OverlayWindow, error) {
	b := m.Bounds
	hwnd, err := h.cls.create(win.WS_EX_TOPMOST|win.WS_EX_TOOLWINDOW, win.WS_POPUP, "Blanqr",
		b.Left, b.Top, b.Width(), b.Height(), 0)
	if err != nil {
		return nil, fmt.Errorf("overlay for %s %s: %w", m.DeviceName, b, err)
	}
	w := &overlayWindow{host: h, hwnd: hwnd, bounds: b, color: c}
	h.windows[hwnd] = w
	return w, nil
}

func (h *OverlayHost) holdCursor() {
	h.cursorRefs++
	if h.cursorRefs == 1 {
		showCursor(false)
	}
}

func (h *OverlayHost) releaseCursor() {
	if h.cursorRefs == 0 {
		return
	}
	h.cursorRefs--
	if h.cursorRefs == 0 {
		showCursor(true)
	}
}

func (h *OverlayHost) fireDismiss() {
	if h.dismiss != nil {
		h.dismiss()
	}
}

func (h *OverlayHost) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	w := h.windows[hwnd]
	if w == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}
	switch msg {
	case win.WM_PAINT:
		var ps win.PAINTSTRUCT
		hdc := win.BeginPaint(hwnd, &ps)
		fillRect(hdc, &ps.RcPaint, uint32(w.color))
		win.EndPaint(hwnd, &ps)
		return 0
	case win.WM_ERASEBKGND:
		return 1
	case win.WM_SETCURSOR:
		win.SetCursor(0)
		return 1
	case win.WM_LBUTTONDOWN, win.WM_RBUTTONDOWN:
		h.fireDismiss()
		return 0
	case win.WM_KEYDOWN:
		if wParam == win.VK_ESCAPE {
			h.fireDismiss()
		}
		return 0
	case win.WM_CLOSE:
		h.fireDismiss()
		return 0
	case win.WM_DESTROY:
		w.release()
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

// overlayWindow is one full-monitor window.
type overlayWindow struct {
	host      *OverlayHost
	hwnd      win.HWND
	bounds    model.Rect
	color     model.Color
	cursor    bool
	destroyed bool
}

func (w *overlayWindow) Show() {
	if w.destroyed {
		return
	}
	b := w.bounds
	win.SetWindowPos(w.hwnd, win.HWND_TOPMOST, b.Left, b.Top, b.Width(), b.Height(), win.SWP_SHOWWINDOW)
	win.SetForegroundWindow(w.hwnd)
	win.SetFocus(w.hwnd)
	if !w.cursor {
		w.cursor = true
		w.host.holdCursor()
	}
}

func (w *overlayWindow) Hide() {
	if w.destroyed {
		return
	}
	win.ShowWindow(w.hwnd, win.SW_HIDE)
	w.dropCursor()
}

func (w *overlayWindow) SetColor(c model.Color) {
	w.color = c
	if !w.destroyed {
		win.InvalidateRect(w.hwnd, nil, true)
	}
}

func (w *overlayWindow) Color() model.Color { return w.color }

func (w *overlayWindow) Bounds() model.Rect { return w.bounds }

func (w *overlayWindow) Visible() bool {
	return !w.destroyed && win.IsWindowVisible(w.hwnd)
}

func (w *overlayWindow) Destroy() {
	if w.destroyed {
		return
	}
	hwnd := w.hwnd
	w.release()
	win.DestroyWindow(hwnd)
}

// release forgets the window. It runs once, from Destroy or WM_DESTROY.
func (w *overlayWindow) release() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.dropCursor()
	delete(w.host.windows, w.hwnd)
}

func (w *overlayWindow) dropCursor() {
	if w.cursor {
		w.cursor = false
		w.host.releaseCursor()
	}
}
