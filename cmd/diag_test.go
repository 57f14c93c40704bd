package cmd

import (
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/blanqr/internal/output"
	"github.com/mj1618/blanqr/internal/platform/platformtest"
)

func TestDiagMonitors_YAML(t *testing.T) {
	useConfig(t)
	useMonitors(t,
		platformtest.Monitor(`\\.\DISPLAY1`, 0, 0, 1920, 1080, true),
		platformtest.Monitor(`\\.\DISPLAY2`, -1280, 0, 1280, 1024, false),
	)

	out, err := execute(t, "diag", "monitors")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got output.MonitorsResult
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if got.Count != 2 {
		t.Errorf("count: got %d, want 2", got.Count)
	}
	if got.Virtual.Left != -1280 || got.Virtual.Right != 1920 {
		t.Errorf("virtual bounds: got %v", got.Virtual)
	}
	if got.Monitors[1].Size != "1280x1024" {
		t.Errorf("second monitor size: got %q", got.Monitors[1].Size)
	}
}

func TestDiagMonitors_JSON(t *testing.T) {
	useConfig(t)
	useMonitors(t)

	out, err := execute(t, "diag", "monitors", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != `{"count":0,"virtual":{"left":0,"top":0,"right":0,"bottom":0},"monitors":[]}` {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestDiagMonitors_EnumerationError(t *testing.T) {
	useConfig(t)
	fake := useMonitors(t)
	fake.Fail(errors.New("display driver gone"))

	if _, err := execute(t, "diag", "monitors"); err == nil || !strings.Contains(err.Error(), "display driver gone") {
		t.Errorf("got %v, want wrapped enumeration error", err)
	}
}

func TestDiag_UnsupportedFormat(t *testing.T) {
	useConfig(t)
	if _, err := execute(t, "diag", "presets", "--format", "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestDiagHotkey(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   output.HotkeyResult
	}{
		{
			name: "default when no config",
			args: nil,
			want: output.HotkeyResult{
				Source: output.SourceConfig, Hotkey: "Ctrl+Shift+B",
				Modifiers: []string{"Ctrl", "Shift"}, Key: "B", VK: "0x42",
			},
		},
		{
			name:   "configured binding",
			config: "hotkey = Alt+F9\n",
			want: output.HotkeyResult{
				Source: output.SourceConfig, Hotkey: "Alt+F9",
				Modifiers: []string{"Alt"}, Key: "F9", VK: "0x78",
			},
		},
		{
			name: "argument is normalized",
			args: []string{"win + shift + 7"},
			want: output.HotkeyResult{
				Input: "win + shift + 7", Source: output.SourceArgument, Hotkey: "Shift+Win+7",
				Modifiers: []string{"Shift", "Win"}, Key: "7", VK: "0x37",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := useConfig(t)
			if tt.config != "" {
				if err := os.WriteFile(path, []byte(tt.config), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			out, err := execute(t, append([]string{"diag", "hotkey", "--format", "json"}, tt.args...)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got output.HotkeyResult
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("output is not valid JSON: %v\n%s", err, out)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiagHotkey_Invalid(t *testing.T) {
	useConfig(t)
	for _, binding := range []string{"Ctrl+Shift", "Ctrl+F13", "A+B"} {
		if _, err := execute(t, "diag", "hotkey", binding); err == nil {
			t.Errorf("%q: expected parse error", binding)
		}
	}
}

func TestDiagPresets(t *testing.T) {
	useConfig(t)
	out, err := execute(t, "diag", "presets", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []output.PresetEntry
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(output.NewPresetList(), got); diff != "" {
		t.Errorf("presets mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagConfig(t *testing.T) {
	path := useConfig(t)

	out, err := execute(t, "diag", "config", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got output.ConfigResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := output.ConfigResult{
		Path:    path,
		Hotkey:  "Ctrl+Shift+B",
		LogFile: filepath.Join(filepath.Dir(path), "blanqr.log"),
		Debug:   os.Getenv("BLANQR_DEBUG") == "1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("diag config must not create the config file")
	}
}

func TestDiagConfig_Existing(t *testing.T) {
	path := useConfig(t)
	if err := os.WriteFile(path, []byte("# blanqr\nhotkey = Ctrl+Alt+5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "diag", "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got output.ConfigResult
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !got.Exists || got.Hotkey != "Ctrl+Alt+5" {
		t.Errorf("got %+v, want existing config with Ctrl+Alt+5", got)
	}
}

func TestDiagLayout(t *testing.T) {
	useConfig(t)
	useMonitors(t,
		platformtest.Monitor("a", 0, 0, 1920, 1080, true),
		platformtest.Monitor("b", 1920, 0, 1920, 1080, false),
	)
	file := filepath.Join(t.TempDir(), "layout.png")

	out, err := execute(t, "diag", "layout", "--out", file, "--color", "amber", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got output.LayoutResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Monitors != 2 || got.Fill != "Amber" || got.Width != 960 {
		t.Errorf("unexpected result: %+v", got)
	}

	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("layout is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != got.Width || img.Bounds().Dy() != got.Height {
		t.Errorf("image is %v, result says %dx%d", img.Bounds(), got.Width, got.Height)
	}
}

func TestDiagLayout_RequiresOut(t *testing.T) {
	useConfig(t)
	useMonitors(t)
	if _, err := execute(t, "diag", "layout"); err == nil {
		t.Error("expected error when --out is missing")
	}
}

func TestDiagLayout_InvalidColor(t *testing.T) {
	useConfig(t)
	useMonitors(t)
	file := filepath.Join(t.TempDir(), "layout.png")
	if _, err := execute(t, "diag", "layout", "--out", file, "--color", "mauve"); err == nil {
		t.Error("expected error for unknown color")
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("no file should be written for an invalid color")
	}
}

func TestDiag_KeepsCapturedOutput(t *testing.T) {
	useConfig(t)
	out, err := execute(t, "diag", "presets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "name: Black") {
		t.Errorf("output should reach the captured writer, got:\n%s", out)
	}
}

func TestDiag_HelpMentionsRedirect(t *testing.T) {
	if !strings.Contains(diagCmd.Long, "> monitors.yaml") {
		t.Error("diag help should show how to redirect output from a GUI build")
	}
}
