package haiku

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/canopywatch/forest-haiku/internal/observability"
)

// Config wires the haiku pipeline.
type Config struct {
	ModelName   string
	OllamaURL   string
	KeepAlive   string
	CallTimeout time.Duration
	Logger      logr.Logger
	Metrics     *observability.Metrics
}
