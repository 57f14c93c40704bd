package model

import "testing"

func TestParseHotkey_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Hotkey
	}{
		{"Ctrl+Shift+B", Hotkey{ModControl | ModShift, 'B'}},
		{"Ctrl+Alt+5", Hotkey{ModControl | ModAlt, '5'}},
		{"ctrl + alt + 5", Hotkey{ModControl | ModAlt, '5'}},
		{"Control+Windows+F12", Hotkey{ModControl | ModWin, 0x7B}},
		{"Win+F1", Hotkey{ModWin, 0x70}},
		{"Shift+z", Hotkey{ModShift, 'Z'}},
		{"F", Hotkey{0, 'F'}},
		{"Alt+0x20", Hotkey{ModAlt, 0x20}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHotkey(tt.input)
			if err != nil {
				t.Fatalf("ParseHotkey(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHotkey(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHotkey_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"Ctrl+Shift",
		"Ctrl+F13",
		"Ctrl+F0",
		"Ctrl+Space",
		"Ctrl+A+B",
		"Ctrl+",
		"Ctrl+#",
		"Alt+0xZZ",
	}
	for _, s := range tests {
		if _, err := ParseHotkey(s); err == nil {
			t.Errorf("ParseHotkey(%q) should fail", s)
		}
	}
}

func TestHotkey_String(t *testing.T) {
	tests := []struct {
		hk   Hotkey
		want string
	}{
		{DefaultHotkey, "Ctrl+Shift+B"},
		{Hotkey{ModControl | ModAlt, '5'}, "Ctrl+Alt+5"},
		// Modifier order is fixed regardless of how the mask was built.
		{Hotkey{ModWin | ModShift | ModAlt | ModControl, 'Q'}, "Ctrl+Alt+Shift+Win+Q"},
		{Hotkey{0, 0x70}, "F1"},
		{Hotkey{ModAlt, 0x20}, "Alt+0x20"},
		{Hotkey{ModControl, 0}, "Ctrl"},
	}
	for _, tt := range tests {
		if got := tt.hk.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.hk, got, tt.want)
		}
	}
}

func TestHotkey_RoundTrip(t *testing.T) {
	for _, s := range []string{"Ctrl+Alt+5", "Ctrl+Shift+B", "Win+F10", "Alt+Shift+0x20"} {
		hk, err := ParseHotkey(s)
		if err != nil {
			t.Fatalf("ParseHotkey(%q): %v", s, err)
		}
		if got := hk.String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		vk   uint32
		want string
	}{
		{0, ""},
		{'A', "A"},
		{'9', "9"},
		{0x70, "F1"},
		{0x7B, "F12"},
		{0x1B, "0x1B"},
	}
	for _, tt := range tests {
		if got := KeyName(tt.vk); got != tt.want {
			t.Errorf("KeyName(0x%X) = %q, want %q", tt.vk, got, tt.want)
		}
	}
}

func TestModifiers_Names(t *testing.T) {
	got := (ModWin | ModShift | ModControl).Names()
	want := []string{"Ctrl", "Shift", "Win"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
	if n := Modifiers(0).Names(); n != nil {
		t.Errorf("no modifiers: got %v, want nil", n)
	}
}

func TestParseHotkeyLenient(t *testing.T) {
	tests := []struct {
		in      string
		want    Hotkey
		wantErr bool
	}{
		{"Ctrl+Alt+5", Hotkey{Modifiers: ModControl | ModAlt, Key: '5'}, false},
		{"Ctrl+Alt+5+?", Hotkey{Modifiers: ModControl | ModAlt, Key: '5'}, false},
		{"ctrl + hyper + b", Hotkey{Modifiers: ModControl, Key: 'B'}, false},
		{"A+B", Hotkey{Key: 'B'}, false},
		{"Shift+F13+F2", Hotkey{Modifiers: ModShift, Key: 0x71}, false},
		{"Ctrl+Shift", Hotkey{}, true},
		{"", Hotkey{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHotkeyLenient(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHotkeyLenient(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHotkeyLenient(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
