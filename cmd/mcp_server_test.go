package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/blanqr/internal/output"
	"github.com/mj1618/blanqr/internal/platform/platformtest"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	oldFormat := output.OutputFormat
	output.OutputFormat = output.FormatJSON
	t.Cleanup(func() { output.OutputFormat = oldFormat })

	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("got %d content items, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestMCPServer_ListMonitors(t *testing.T) {
	useMonitors(t, platformtest.Monitor("a", 0, 0, 2560, 1440, true))
	s := newMCPServer()

	text, isErr := callTool(t, s.handleListMonitors, nil)
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got output.MonitorsResult
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("tool output is not JSON: %v", err)
	}
	if got.Count != 1 || got.Monitors[0].Size != "2560x1440" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestMCPServer_ParseHotkey(t *testing.T) {
	useConfig(t)
	s := newMCPServer()

	text, isErr := callTool(t, s.handleParseHotkey, map[string]any{"binding": "ctrl+f12"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got output.HotkeyResult
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("tool output is not JSON: %v", err)
	}
	if got.Hotkey != "Ctrl+F12" || got.Source != output.SourceArgument {
		t.Errorf("unexpected result: %+v", got)
	}

	text, isErr = callTool(t, s.handleParseHotkey, map[string]any{})
	if isErr || !strings.Contains(text, `"source":"config"`) {
		t.Errorf("without a binding the configured hotkey should be shown, got %s", text)
	}

	if text, isErr := callTool(t, s.handleParseHotkey, map[string]any{"binding": "Ctrl"}); !isErr {
		t.Errorf("expected tool error for a binding without a key, got %s", text)
	}
}

func TestMCPServer_ListPresets(t *testing.T) {
	s := newMCPServer()
	text, isErr := callTool(t, s.handleListPresets, nil)
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got []output.PresetEntry
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("tool output is not JSON: %v", err)
	}
	if len(got) != 16 {
		t.Errorf("got %d presets, want 16", len(got))
	}
}

func TestMCPServer_ShowConfig(t *testing.T) {
	path := useConfig(t)
	s := newMCPServer()
	text, isErr := callTool(t, s.handleShowConfig, nil)
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got output.ConfigResult
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("tool output is not JSON: %v", err)
	}
	if got.Path != path || got.Exists {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestMCPServer_RenderLayout(t *testing.T) {
	useMonitors(t, platformtest.Monitor("a", 0, 0, 800, 600, true))
	s := newMCPServer()
	file := filepath.Join(t.TempDir(), "layout.png")

	text, isErr := callTool(t, s.handleRenderLayout, map[string]any{"out": file, "color": "#102030"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got output.LayoutResult
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("tool output is not JSON: %v", err)
	}
	// 800 px fits without scaling.
	if got.Width != 832 || got.Height != 632 || got.Fill != "#102030" {
		t.Errorf("unexpected result: %+v", got)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("layout file not written: %v", err)
	}

	if _, isErr := callTool(t, s.handleRenderLayout, map[string]any{}); !isErr {
		t.Error("expected tool error without out")
	}
	if _, isErr := callTool(t, s.handleRenderLayout, map[string]any{"out": file, "color": "nope"}); !isErr {
		t.Error("expected tool error for an invalid color")
	}
}

func TestMCPServer_UnsupportedTransport(t *testing.T) {
	s := newMCPServer()
	if err := s.serve(MCPConfig{Transport: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unsupported transport")
	}
}
