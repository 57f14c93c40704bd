//go:build windows

package win32

import (
	"unsafe"

	"github.com/lxn/win"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/platform"
)

// ColorPicker offers the presets as a popup menu and falls back to the
// system color dialog for "Custom...".
type ColorPicker struct {
	owner win.HWND
	// custom keeps the dialog's custom color row between calls.
	custom [16]win.COLORREF
}

// newColorPicker returns a picker whose menu and dialog are owned by l.
func newColorPicker(l *listener) *ColorPicker {
	p := &ColorPicker{owner: l.hwnd}
	for i := range p.custom {
		p.custom[i] = win.RGB(255, 255, 255)
	}
	return p
}

func (p *ColorPicker) PickColor(current model.Color) (model.Color, bool) {
	choice, c := platform.ColorCommand(popupMenu(p.owner, platform.ColorMenu(current)))
	switch choice {
	case platform.ColorPreset:
		return c, true
	case platform.ColorCustom:
		return p.chooseColor(current)
	}
	return current, false
}

func (p *ColorPicker) chooseColor(current model.Color) (model.Color, bool) {
	cc := win.CHOOSECOLOR{
		HwndOwner:    p.owner,
		RgbResult:    win.COLORREF(current),
		LpCustColors: &p.custom,
		Flags:        win.CC_FULLOPEN | win.CC_RGBINIT,
	}
	cc.LStructSize = uint32(unsafe.Sizeof(cc))
	if !win.ChooseColor(&cc) {
		return current, false
	}
	return model.Color(cc.RgbResult) & 0x00FFFFFF, true
}
