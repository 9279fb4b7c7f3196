package haiku

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Completer is the one capability the pipeline needs from a generative model:
// a single prompt in, a single trimmed text completion out. Implementations
// must be context-aware; the pipeline issues exactly one call per invocation,
// with no retry and no streaming.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ollamaCompleter struct {
	llm *ollama.LLM
	to  time.Duration
}

// NewOllamaCompleter builds the production Completer bound to the poetic
// model.
func NewOllamaCompleter(cfg Config) (Completer, error) {
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("poetic model name is required")
	}
	keepAlive := cfg.KeepAlive
	if keepAlive == "" {
		keepAlive = "5m"
	}

	client, err := ollama.New(
		ollama.WithModel(cfg.ModelName),
		ollama.WithServerURL(cfg.OllamaURL),
		ollama.WithKeepAlive(keepAlive),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &ollamaCompleter{llm: client, to: cfg.CallTimeout}, nil
}

func (c *ollamaCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", c.annotateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func (c *ollamaCompleter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}

func (c *ollamaCompleter) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("llm call timed out after %s: %w", c.to, err)
	}
	return err
}
