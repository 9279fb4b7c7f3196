package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/canopywatch/forest-haiku/internal/config"
	"github.com/canopywatch/forest-haiku/internal/haiku"
	"github.com/canopywatch/forest-haiku/internal/logging"
	"github.com/canopywatch/forest-haiku/internal/mcp/tools"
	"github.com/canopywatch/forest-haiku/internal/observability"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.ForLevel(config.LogLevel())

	pipelineCfg := haiku.Config{
		ModelName:   config.PoeticModel(),
		OllamaURL:   config.OllamaURL(),
		KeepAlive:   config.LLMKeepAlive(),
		CallTimeout: config.LLMCallTimeout(),
		Logger:      baseLogger.WithName("haiku"),
		Metrics:     observability.NewMetrics(),
	}

	completer, err := haiku.NewOllamaCompleter(pipelineCfg)
	if err != nil {
		log.Fatalf("failed to init poetic model client: %v", err)
	}
	generator := haiku.NewGenerator(pipelineCfg, completer)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"generate_haiku": &tools.GenerateHaikuHandler{Service: generator},
			"ping":           &tools.PingHandler{},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
