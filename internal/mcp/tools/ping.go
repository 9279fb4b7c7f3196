package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// PingHandler answers liveness checks from agents wiring up the server.
type PingHandler struct{}

func (h *PingHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}
