package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"forest-haiku-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"generate_haiku": mcp.NewTool("generate_haiku",
			mcp.WithDescription("Generate a 5-7-5 syllable haiku about forest loss data. Use when the user asks for a haiku, poem, poetry, or another creative format for previously retrieved forest-change data."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("The user's original request (e.g., 'Write a haiku about Brazil deforestation')"),
			),
			mcp.WithObject("state",
				mcp.Required(),
				mcp.Description("Shared agent state with raw_data, aoi, and dataset as populated by pick_aoi, pick_dataset, and pull_data"),
			),
		),
		"ping": mcp.NewTool("ping",
			mcp.WithDescription("Liveness probe; returns 'pong'."),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
