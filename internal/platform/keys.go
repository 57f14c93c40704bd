package platform

import "github.com/mj1618/blanqr/internal/model"

// Virtual-key codes polled while capturing a hotkey.
const (
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12
	vkLWin    = 0x5B
	vkRWin    = 0x5C
)

// captureRanges lists the keys a hotkey may use, in scan order.
var captureRanges = [][2]uint32{
	{'A', 'Z'},
	{'0', '9'},
	{0x70, 0x7B}, // F1-F12
}

// ScanKeys builds a hotkey from the keys currently held down. It reports
// false while no bindable key is pressed, even if modifiers are.
func ScanKeys(down func(vk uint32) bool) (model.Hotkey, bool) {
	var hk model.Hotkey
	if down(vkControl) {
		hk.Modifiers |= model.ModControl
	}
	if down(vkMenu) {
		hk.Modifiers |= model.ModAlt
	}
	if down(vkShift) {
		hk.Modifiers |= model.ModShift
	}
	if down(vkLWin) || down(vkRWin) {
		hk.Modifiers |= model.ModWin
	}
	for _, r := range captureRanges {
		for vk := r[0]; vk <= r[1]; vk++ {
			if down(vk) {
				hk.Key = vk
				return hk, true
			}
		}
	}
	return model.Hotkey{}, false
}
