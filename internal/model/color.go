package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 32-bit RGB value in COLORREF layout (0x00BBGGRR). The high byte
// is unused and always cleared by the constructors in this package.
type Color uint32

const (
	Black Color = 0x00000000
	Gray  Color = 0x00808080
	White Color = 0x00FFFFFF

	// DefaultColor is the fill color used until the user picks another.
	DefaultColor = Black
)

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color(r) | Color(g)<<8 | Color(b)<<16
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// String returns the preset name when the color is a preset, otherwise its hex form.
func (c Color) String() string {
	if p, ok := PresetFor(c); ok {
		return p.Name
	}
	return c.Hex()
}

// Preset is a named entry of the color picker palette.
type Preset struct {
	Name  string
	Color Color
}

// Presets is the fixed palette offered by the color picker, in display order.
var Presets = []Preset{
	{"Black", 0x00000000},
	{"White", 0x00FFFFFF},
	{"Dark Gray", 0x00303030},
	{"Gray", 0x00808080},
	{"Amber", 0x0040A0FF},
	{"Warm", 0x0060C0FF},
	{"Soft", 0x0080D0FF},
	{"Cream", 0x00A0E0FF},
	{"Sunset", 0x00507DCD},
	{"Blush", 0x00889EDE},
	{"Peach", 0x008EBCF0},
	{"Apricot", 0x00B5D8F5},
	{"Sky", 0x00CD9E7D},
	{"Light Blue", 0x00E0C090},
	{"Pale Blue", 0x00F0D8A0},
	{"Ice", 0x00F5E6C8},
}

// PresetFor returns the preset whose color equals c.
func PresetFor(c Color) (Preset, bool) {
	for _, p := range Presets {
		if p.Color == c {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetByName looks up a preset case-insensitively, ignoring spaces,
// dashes and underscores ("light-blue" matches "Light Blue").
func PresetByName(name string) (Preset, bool) {
	want := normalizePresetName(name)
	for _, p := range Presets {
		if normalizePresetName(p.Name) == want {
			return p, true
		}
	}
	return Preset{}, false
}

func normalizePresetName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// ParseColor accepts "#RRGGBB", "RRGGBB" or a preset name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if p, ok := PresetByName(s); ok {
		return p.Color, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: expected #RRGGBB or a preset name", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
