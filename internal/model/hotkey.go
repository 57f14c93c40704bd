package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifiers is a bitmask of hotkey modifier keys. The values match the
// Win32 MOD_* constants so they can be passed to RegisterHotKey unchanged.
type Modifiers uint32

const (
	ModAlt     Modifiers = 0x0001
	ModControl Modifiers = 0x0002
	ModShift   Modifiers = 0x0004
	ModWin     Modifiers = 0x0008
)

// modifierOrder is the order modifiers appear in formatted bindings.
var modifierOrder = []struct {
	mod  Modifiers
	name string
}{
	{ModControl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModWin, "Win"},
}

// Names lists the set modifiers in display order.
func (m Modifiers) Names() []string {
	var names []string
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			names = append(names, o.name)
		}
	}
	return names
}

// Virtual-key ranges accepted as the non-modifier part of a binding.
const (
	vkA   = 0x41
	vkZ   = 0x5A
	vk0   = 0x30
	vk9   = 0x39
	vkF1  = 0x70
	vkF12 = 0x7B
)

// Hotkey is a global key binding: a modifier mask plus a virtual-key code.
type Hotkey struct {
	Modifiers Modifiers
	Key       uint32
}

// DefaultHotkey is Ctrl+Shift+B.
var DefaultHotkey = Hotkey{Modifiers: ModControl | ModShift, Key: 'B'}

// IsZero reports whether no key is bound.
func (h Hotkey) IsZero() bool { return h.Key == 0 }

// String formats the binding as "Ctrl+Alt+5". An unbound key formats as the
// modifiers alone.
func (h Hotkey) String() string {
	parts := h.Modifiers.Names()
	if name := KeyName(h.Key); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, "+")
}

// KeyName returns the display name of a virtual-key code: the letter or
// digit itself, "F1".."F12", or a hex literal for anything else. Zero maps
// to the empty string.
func KeyName(vk uint32) string {
	switch {
	case vk == 0:
		return ""
	case vk >= vkA && vk <= vkZ, vk >= vk0 && vk <= vk9:
		return string(rune(vk))
	case vk >= vkF1 && vk <= vkF12:
		return fmt.Sprintf("F%d", vk-vkF1+1)
	default:
		return fmt.Sprintf("0x%02X", vk)
	}
}

// ParseHotkey parses a binding such as "Ctrl+Shift+B". Tokens are
// case-insensitive and may be padded with spaces. Exactly one non-modifier
// key is required.
func ParseHotkey(s string) (Hotkey, error) {
	var h Hotkey
	if strings.TrimSpace(s) == "" {
		return h, fmt.Errorf("empty hotkey")
	}
	for _, part := range strings.Split(s, "+") {
		token := strings.ToUpper(strings.TrimSpace(part))
		switch token {
		case "CTRL", "CONTROL":
			h.Modifiers |= ModControl
		case "ALT":
			h.Modifiers |= ModAlt
		case "SHIFT":
			h.Modifiers |= ModShift
		case "WIN", "WINDOWS":
			h.Modifiers |= ModWin
		default:
			vk, err := parseKey(token)
			if err != nil {
				return Hotkey{}, fmt.Errorf("invalid hotkey %q: %w", s, err)
			}
			if h.Key != 0 {
				return Hotkey{}, fmt.Errorf("invalid hotkey %q: more than one key", s)
			}
			h.Key = vk
		}
	}
	if h.Key == 0 {
		return Hotkey{}, fmt.Errorf("invalid hotkey %q: no key", s)
	}
	return h, nil
}

// ParseHotkeyLenient reads a binding the way a hand-edited config file is
// read: unknown tokens are skipped and the last key wins. At least one key
// is still required.
func ParseHotkeyLenient(s string) (Hotkey, error) {
	var h Hotkey
	for _, part := range strings.Split(s, "+") {
		token := strings.ToUpper(strings.TrimSpace(part))
		switch token {
		case "":
		case "CTRL", "CONTROL":
			h.Modifiers |= ModControl
		case "ALT":
			h.Modifiers |= ModAlt
		case "SHIFT":
			h.Modifiers |= ModShift
		case "WIN", "WINDOWS":
			h.Modifiers |= ModWin
		default:
			if vk, err := parseKey(token); err == nil {
				h.Key = vk
			}
		}
	}
	if h.Key == 0 {
		return Hotkey{}, fmt.Errorf("invalid hotkey %q: no key", s)
	}
	return h, nil
}

func parseKey(token string) (uint32, error) {
	if len(token) == 1 {
		c := token[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return uint32(c), nil
		}
		return 0, fmt.Errorf("unsupported key %q", token)
	}
	if strings.HasPrefix(token, "0X") {
		v, err := strconv.ParseUint(token[2:], 16, 8)
		if err != nil || v == 0 {
			return 0, fmt.Errorf("unsupported key %q", token)
		}
		return uint32(v), nil
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(token, "F")); err == nil && token[0] == 'F' {
		if n >= 1 && n <= 12 {
			return vkF1 + uint32(n) - 1, nil
		}
	}
	return 0, fmt.Errorf("unsupported key %q", token)
}
