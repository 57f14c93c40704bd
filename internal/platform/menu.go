package platform

import (
	"fmt"

	"github.com/mj1618/blanqr/internal/model"
)

// MenuItem is one entry of a native popup menu.
type MenuItem struct {
	ID        uint32
	Text      string
	Separator bool
	Grayed    bool
	Checked   bool
}

// Tray menu command IDs.
const (
	MenuSelectColor     uint32 = 1001
	MenuConfigureHotkey uint32 = 1002
	MenuStartup         uint32 = 1003
	MenuExit            uint32 = 1004
)

// Color menu command IDs. Preset i uses MenuPresetBase+i.
const (
	MenuPresetBase  uint32 = 2000
	MenuCustomColor uint32 = 2100
)

var separator = MenuItem{Separator: true}

// TrayMenu returns the tray context menu.
func TrayMenu(hotkeyLabel string, startupEnabled bool) []MenuItem {
	return []MenuItem{
		{Text: fmt.Sprintf("Toggle: %s", hotkeyLabel), Grayed: true},
		separator,
		{ID: MenuSelectColor, Text: "Select Color..."},
		{ID: MenuConfigureHotkey, Text: "Configure Hotkey..."},
		separator,
		{ID: MenuStartup, Text: "Run at Startup", Checked: startupEnabled},
		separator,
		{ID: MenuExit, Text: "Exit"},
	}
}

// TrayCommand maps a tray menu command ID to its event. Zero (menu
// dismissed) and unknown IDs report false.
func TrayCommand(id uint32) (TrayEvent, bool) {
	switch id {
	case MenuSelectColor:
		return TraySelectColor, true
	case MenuConfigureHotkey:
		return TrayConfigureHotkey, true
	case MenuStartup:
		return TrayToggleStartup, true
	case MenuExit:
		return TrayExit, true
	}
	return 0, false
}

// ColorMenu lists the presets with current checked, then "Custom...".
func ColorMenu(current model.Color) []MenuItem {
	items := make([]MenuItem, 0, len(model.Presets)+2)
	for i, p := range model.Presets {
		items = append(items, MenuItem{
			ID:      MenuPresetBase + uint32(i),
			Text:    p.Name,
			Checked: p.Color == current,
		})
	}
	return append(items, separator, MenuItem{ID: MenuCustomColor, Text: "Custom..."})
}

// ColorChoice is the outcome of the color menu.
type ColorChoice int

const (
	ColorCancelled ColorChoice = iota
	ColorPreset
	ColorCustom
)

// ColorCommand resolves a color menu command ID.
func ColorCommand(id uint32) (ColorChoice, model.Color) {
	if id == MenuCustomColor {
		return ColorCustom, 0
	}
	if id >= MenuPresetBase && id < MenuPresetBase+uint32(len(model.Presets)) {
		return ColorPreset, model.Presets[id-MenuPresetBase].Color
	}
	return ColorCancelled, 0
}
