package platform

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mj1618/blanqr/internal/model"
)

func TestTrayMenu_Layout(t *testing.T) {
	got := TrayMenu("Ctrl+Shift+B", true)
	want := []MenuItem{
		{Text: "Toggle: Ctrl+Shift+B", Grayed: true},
		{Separator: true},
		{ID: MenuSelectColor, Text: "Select Color..."},
		{ID: MenuConfigureHotkey, Text: "Configure Hotkey..."},
		{Separator: true},
		{ID: MenuStartup, Text: "Run at Startup", Checked: true},
		{Separator: true},
		{ID: MenuExit, Text: "Exit"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tray menu mismatch (-want +got):\n%s", diff)
	}

	if TrayMenu("x", false)[5].Checked {
		t.Error("Run at Startup should be unchecked when autostart is off")
	}
}

func TestTrayCommand(t *testing.T) {
	tests := []struct {
		id   uint32
		want TrayEvent
		ok   bool
	}{
		{MenuSelectColor, TraySelectColor, true},
		{MenuConfigureHotkey, TrayConfigureHotkey, true},
		{MenuStartup, TrayToggleStartup, true},
		{MenuExit, TrayExit, true},
		{0, 0, false},
		{MenuCustomColor, 0, false},
	}
	for _, tt := range tests {
		got, ok := TrayCommand(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TrayCommand(%d) = %v, %v; want %v, %v", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTrayMenu_EveryCommandMaps(t *testing.T) {
	for _, item := range TrayMenu("x", false) {
		if item.Separator || item.Grayed {
			continue
		}
		if _, ok := TrayCommand(item.ID); !ok {
			t.Errorf("menu item %q has no event", item.Text)
		}
	}
}

func TestColorMenu(t *testing.T) {
	items := ColorMenu(model.White)
	if len(items) != len(model.Presets)+2 {
		t.Fatalf("expected %d items, got %d", len(model.Presets)+2, len(items))
	}
	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
			if item.Text != "White" {
				t.Errorf("checked item = %q, want White", item.Text)
			}
		}
	}
	if checked != 1 {
		t.Errorf("expected exactly one checked preset, got %d", checked)
	}
	last := items[len(items)-1]
	if last.ID != MenuCustomColor || last.Text != "Custom..." {
		t.Errorf("last item = %+v, want Custom...", last)
	}

	for _, item := range ColorMenu(model.RGB(1, 2, 3)) {
		if item.Checked {
			t.Errorf("no preset should be checked for a custom color, got %q", item.Text)
		}
	}
}

func TestColorCommand(t *testing.T) {
	for i, p := range model.Presets {
		choice, c := ColorCommand(MenuPresetBase + uint32(i))
		if choice != ColorPreset || c != p.Color {
			t.Errorf("preset %d (%s): got %v %v", i, p.Name, choice, c)
		}
	}
	if choice, _ := ColorCommand(MenuCustomColor); choice != ColorCustom {
		t.Errorf("custom: got %v", choice)
	}
	for _, id := range []uint32{0, MenuPresetBase + uint32(len(model.Presets)), MenuExit} {
		if choice, _ := ColorCommand(id); choice != ColorCancelled {
			t.Errorf("ColorCommand(%d) = %v, want cancelled", id, choice)
		}
	}
}
