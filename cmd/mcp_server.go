package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/output"
	"github.com/mj1618/blanqr/internal/preview"
	"github.com/mj1618/blanqr/internal/version"
)

// mcpServer wraps the MCP server with the diagnostic tools.
type mcpServer struct {
	mcp *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

func newMCPServer() *mcpServer {
	s := &mcpServer{
		mcp: mcpserver.NewMCPServer("blanqr", version.Version),
	}
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_monitors",
			mcp.WithDescription("List the active monitors with their bounds in virtual-screen coordinates"),
		),
		s.handleListMonitors,
	)

	s.mcp.AddTool(
		mcp.NewTool("parse_hotkey",
			mcp.WithDescription("Parse and normalize a hotkey binding such as 'Ctrl+Shift+B'. Without a binding, the configured hotkey is shown."),
			mcp.WithString("binding", mcp.Description("Binding to parse, e.g. 'ctrl+alt+5'")),
		),
		s.handleParseHotkey,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_presets",
			mcp.WithDescription("List the named fill colors offered by the color picker"),
		),
		s.handleListPresets,
	)

	s.mcp.AddTool(
		mcp.NewTool("show_config",
			mcp.WithDescription("Show the config file location, whether it exists and the effective hotkey"),
		),
		s.handleShowConfig,
	)

	s.mcp.AddTool(
		mcp.NewTool("render_layout",
			mcp.WithDescription("Render the monitor layout filled with a color to a PNG file"),
			mcp.WithString("out", mcp.Required(), mcp.Description("Output PNG path")),
			mcp.WithString("color", mcp.Description("Preset name or #RRGGBB (default Black)")),
		),
		s.handleRenderLayout,
	)
}

func (s *mcpServer) handleListMonitors(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	monitors, err := snapshotMonitors()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(output.NewMonitorsResult(monitors))
}

func (s *mcpServer) handleParseHotkey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args []string
	if binding := req.GetString("binding", ""); binding != "" {
		args = append(args, binding)
	}
	result, err := describeHotkey(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(result)
}

func (s *mcpServer) handleListPresets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(output.NewPresetList())
}

func (s *mcpServer) handleShowConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := describeConfig()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(result)
}

func (s *mcpServer) handleRenderLayout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := req.GetString("out", "")
	if out == "" {
		return mcp.NewToolResultError("out is required"), nil
	}
	fill := model.DefaultColor
	if name := req.GetString("color", ""); name != "" {
		c, err := model.ParseColor(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		fill = c
	}
	monitors, err := snapshotMonitors()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := writeLayout(out, monitors, preview.Options{Fill: fill})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(result)
}

// toolResult renders v in the current output format as the tool's text content.
func toolResult(v any) (*mcp.CallToolResult, error) {
	text, err := output.Sprint(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}
