package platform

import (
	"testing"

	"github.com/mj1618/blanqr/internal/model"
)

func pressed(vks ...uint32) func(uint32) bool {
	set := map[uint32]bool{}
	for _, vk := range vks {
		set[vk] = true
	}
	return func(vk uint32) bool { return set[vk] }
}

func TestScanKeys(t *testing.T) {
	tests := []struct {
		name string
		down []uint32
		want model.Hotkey
		ok   bool
	}{
		{"nothing", nil, model.Hotkey{}, false},
		{"modifiers only", []uint32{vkControl, vkShift}, model.Hotkey{}, false},
		{"ctrl shift b", []uint32{vkControl, vkShift, 'B'}, model.Hotkey{Modifiers: model.ModControl | model.ModShift, Key: 'B'}, true},
		{"ctrl alt 5", []uint32{vkControl, vkMenu, '5'}, model.Hotkey{Modifiers: model.ModControl | model.ModAlt, Key: '5'}, true},
		{"right win f12", []uint32{vkRWin, 0x7B}, model.Hotkey{Modifiers: model.ModWin, Key: 0x7B}, true},
		{"letter before digit", []uint32{'7', 'Q'}, model.Hotkey{Key: 'Q'}, true},
		{"unbindable key", []uint32{vkControl, 0x20}, model.Hotkey{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScanKeys(pressed(tt.down...))
			if ok != tt.ok || got != tt.want {
				t.Errorf("ScanKeys = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestScanKeys_FormatsLikeConfig(t *testing.T) {
	hk, ok := ScanKeys(pressed(vkControl, vkMenu, '5'))
	if !ok {
		t.Fatal("expected a hotkey")
	}
	if hk.String() != "Ctrl+Alt+5" {
		t.Errorf("String() = %q", hk.String())
	}
}

func TestAutostartCommand(t *testing.T) {
	tests := map[string]string{
		`C:\Program Files\Blanqr\blanqr.exe`:   `"C:\Program Files\Blanqr\blanqr.exe"`,
		`"C:\Program Files\Blanqr\blanqr.exe"`: `"C:\Program Files\Blanqr\blanqr.exe"`,
		`C:\tools\blanqr.exe`:                  `"C:\tools\blanqr.exe"`,
	}
	for in, want := range tests {
		if got := AutostartCommand(in); got != want {
			t.Errorf("AutostartCommand(%q) = %q, want %q", in, got, want)
		}
	}
}
