// Package mcpserver exposes the date tools to MCP clients over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	logcontext "github.com/va6996/dateaware/context"
	"github.com/va6996/dateaware/dateaware"
	"github.com/va6996/dateaware/log"
)

// ServerName is reported to MCP clients
const ServerName = "dateaware"

// New creates an MCP server with the plugin's tools registered
func New(p *dateaware.Plugin, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(true),
	)
	RegisterTools(s, p)
	return s
}

// RegisterTools adds get_date_info and date_lookup to s
func RegisterTools(s *server.MCPServer, p *dateaware.Plugin) {
	infoTool := mcp.NewTool(dateaware.InfoToolName,
		mcp.WithDescription(p.InfoTool.Description()),
	)
	s.AddTool(infoTool, handleDateInfo(p.InfoTool))

	lookupTool := mcp.NewTool(dateaware.LookupToolName,
		mcp.WithDescription(p.LookupTool.Description()),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("JavaScript expression evaluating to a Date or ISO date string; 'now' is the current timestamp in milliseconds"),
		),
	)
	s.AddTool(lookupTool, handleDateLookup(p.LookupTool))
}

// ServeStdio blocks serving s on stdin/stdout
func ServeStdio(s *server.MCPServer) error {
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}

func handleDateInfo(tool *dateaware.InfoTool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logcontext.EnsureRequestID(ctx)
		out := tool.Execute(ctx, &dateaware.InfoInput{})
		if out.Error != "" {
			return mcp.NewToolResultError(out.Error), nil
		}
		return mcp.NewToolResultText(out.Content), nil
	}
}

func handleDateLookup(tool *dateaware.LookupTool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logcontext.EnsureRequestID(ctx)
		args, _ := request.Params.Arguments.(map[string]interface{})

		expression, ok := args["expression"].(string)
		if !ok || expression == "" {
			return mcp.NewToolResultError("expression is required"), nil
		}

		out := tool.Execute(ctx, &dateaware.LookupInput{Expression: expression})
		if out.Error != "" {
			return mcp.NewToolResultError(out.Error), nil
		}

		result, err := json.Marshal(out.Day)
		if err != nil {
			log.Errorf(ctx, "Failed to encode lookup result: %v", err)
			return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(result)), nil
	}
}
