package output

import (
	"fmt"

	"github.com/mj1618/blanqr/internal/model"
)

// MonitorsResult is the output of `diag monitors`.
type MonitorsResult struct {
	Count    int            `yaml:"count"    json:"count"`
	Virtual  model.Rect     `yaml:"virtual"  json:"virtual"`
	Monitors []MonitorEntry `yaml:"monitors" json:"monitors"`
}

// MonitorEntry is one display in a MonitorsResult.
type MonitorEntry struct {
	Index   int        `yaml:"index"            json:"index"`
	Device  string     `yaml:"device,omitempty" json:"device,omitempty"`
	Size    string     `yaml:"size"             json:"size"`
	Bounds  model.Rect `yaml:"bounds"           json:"bounds"`
	Primary bool       `yaml:"primary"          json:"primary"`
}

// NewMonitorsResult summarizes a monitor snapshot. Monitors is never nil.
func NewMonitorsResult(monitors []model.Monitor) MonitorsResult {
	r := MonitorsResult{
		Count:    len(monitors),
		Virtual:  model.VirtualBounds(monitors),
		Monitors: make([]MonitorEntry, 0, len(monitors)),
	}
	for i, m := range monitors {
		r.Monitors = append(r.Monitors, MonitorEntry{
			Index:   i,
			Device:  m.DeviceName,
			Size:    fmt.Sprintf("%dx%d", m.Bounds.Width(), m.Bounds.Height()),
			Bounds:  m.Bounds,
			Primary: m.Primary,
		})
	}
	return r
}

// PresetEntry is one named color of `diag presets`.
type PresetEntry struct {
	Name     string `yaml:"name"     json:"name"`
	Hex      string `yaml:"hex"      json:"hex"`
	ColorRef string `yaml:"colorref" json:"colorref"`
	Default  bool   `yaml:"default,omitempty" json:"default,omitempty"`
}

// NewPresetList returns the picker palette in display order.
func NewPresetList() []PresetEntry {
	list := make([]PresetEntry, 0, len(model.Presets))
	for _, p := range model.Presets {
		list = append(list, PresetEntry{
			Name:     p.Name,
			Hex:      p.Color.Hex(),
			ColorRef: fmt.Sprintf("0x%08X", uint32(p.Color)),
			Default:  p.Color == model.DefaultColor,
		})
	}
	return list
}

// HotkeyResult is the output of `diag hotkey`.
type HotkeyResult struct {
	Input     string   `yaml:"input,omitempty"     json:"input,omitempty"`
	Source    string   `yaml:"source"              json:"source"`
	Hotkey    string   `yaml:"hotkey"              json:"hotkey"`
	Modifiers []string `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Key       string   `yaml:"key"                 json:"key"`
	VK        string   `yaml:"vk"                  json:"vk"`
}

// Hotkey sources reported by HotkeyResult.
const (
	SourceArgument = "argument"
	SourceConfig   = "config"
)

// NewHotkeyResult describes hk. input is the text it was parsed from, if any.
func NewHotkeyResult(input, source string, hk model.Hotkey) HotkeyResult {
	return HotkeyResult{
		Input:     input,
		Source:    source,
		Hotkey:    hk.String(),
		Modifiers: hk.Modifiers.Names(),
		Key:       model.KeyName(hk.Key),
		VK:        fmt.Sprintf("0x%02X", hk.Key),
	}
}

// ConfigResult is the output of `diag config`.
type ConfigResult struct {
	Path    string `yaml:"path"     json:"path"`
	Exists  bool   `yaml:"exists"   json:"exists"`
	Hotkey  string `yaml:"hotkey"   json:"hotkey"`
	LogFile string `yaml:"log_file" json:"log_file"`
	Debug   bool   `yaml:"debug"    json:"debug"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
}

// LayoutResult is the output of `diag layout`.
type LayoutResult struct {
	Out      string `yaml:"out"      json:"out"`
	Width    int    `yaml:"width"    json:"width"`
	Height   int    `yaml:"height"   json:"height"`
	Monitors int    `yaml:"monitors" json:"monitors"`
	Fill     string `yaml:"fill"     json:"fill"`
}
