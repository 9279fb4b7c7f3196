package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/canopywatch/forest-haiku/internal/state"
)

// HaikuService is what the tool adapter needs from the pipeline. The contract
// is total: the service returns a poem or a fixed diagnostic, never an error.
type HaikuService interface {
	Generate(ctx context.Context, query string, st state.Context) string
}

type GenerateHaikuHandler struct{ Service HaikuService }

func (h *GenerateHaikuHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	rawState, ok := args["state"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("state parameter must be an object"), nil
	}

	st, err := decodeState(rawState)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid state: %v", err)), nil
	}

	return mcp.NewToolResultText(h.Service.Generate(ctx, query, st)), nil
}

// decodeState converts the loosely typed tool argument into the typed state
// snapshot via a JSON round trip. An absent raw_data key decodes to a nil
// map, which the pipeline distinguishes from a present-but-empty one.
func decodeState(raw map[string]any) (state.Context, error) {
	var st state.Context
	buf, err := json.Marshal(raw)
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(buf, &st); err != nil {
		return st, err
	}
	return st, nil
}
