// Package haiku turns forest-change observation records into a three-line
// 5-7-5 poem via a single call to a generative model. The pipeline locates
// the relevant record set in the shared agent state, aggregates statistics,
// renders a constrained prompt, invokes the model once, and normalizes the
// output shape.
package haiku

import (
	"context"
	"time"

	"github.com/canopywatch/forest-haiku/internal/logging"
	"github.com/canopywatch/forest-haiku/internal/observability"
	"github.com/canopywatch/forest-haiku/internal/state"
)

// Fixed user-facing diagnostics. Part of the tool contract: Generate always
// returns a plain string, never an error.
const (
	msgNoData       = "No forest data available. Please retrieve data first using pick_aoi, pick_dataset, and pull_data."
	msgNoRecords    = "No forest data found in raw_data structure."
	msgFailedPrefix = "Failed to generate haiku: "
)

// Generator runs the state → statistics → prompt → completion → haiku
// pipeline. It holds no mutable state; concurrent invocations are
// independent.
type Generator struct {
	log       logging.Logger
	completer Completer
	metrics   *observability.Metrics
}

func NewGenerator(cfg Config, completer Completer) *Generator {
	return &Generator{
		log:       logging.New(cfg.Logger),
		completer: completer,
		metrics:   cfg.Metrics,
	}
}

// Generate produces a haiku about the forest-change records resolved from the
// agent-state snapshot. Every failure branch is absorbed into the returned
// string: callers get a poem or a fixed diagnostic, never an error.
func (g *Generator) Generate(ctx context.Context, query string, st state.Context) string {
	g.log.Info("generate_haiku invoked", "query", query)

	if st.RawData == nil {
		g.log.Info("no raw data in state, caller must pull data first")
		g.metrics.CountRequest(observability.OutcomeNoData)
		return msgNoData
	}

	obs, ok := locateObservations(st.RawData)
	if !ok {
		g.log.Info("no observation set found in raw data")
		g.metrics.CountRequest(observability.OutcomeNoRecords)
		return msgNoRecords
	}

	sum := summarize(obs)
	location := st.AOI.Name
	if location == "" {
		location = defaultLocation
	}
	datasetName := st.Dataset.DatasetName
	if datasetName == "" {
		datasetName = defaultDataset
	}

	g.log.Debug("extracted haiku context",
		"aoi_name", location,
		"total_area", sum.TotalAreaHa,
		"main_driver", sum.MainDriver,
		"period", sum.Period,
	)

	prompt := buildPrompt(sum, location, datasetName)
	promptTokens := estimateTokens(prompt)
	g.metrics.ObservePromptTokens(promptTokens)

	g.log.Debug("calling poetic model", "prompt_tokens", promptTokens)
	started := time.Now()
	raw, err := g.completer.Complete(ctx, prompt)
	g.metrics.ObserveGenerationSeconds(time.Since(started).Seconds())
	if err != nil {
		g.log.Error(err, "haiku generation failed")
		g.metrics.CountRequest(observability.OutcomeLLMError)
		return msgFailedPrefix + err.Error()
	}

	poem, truncated := normalizeLines(raw)
	if truncated {
		g.log.Info("completion exceeded three lines, truncating", "raw", raw)
		g.metrics.CountTruncation()
	}

	g.log.Info("haiku generated", "haiku", poem)
	g.metrics.CountRequest(observability.OutcomeOK)
	return poem
}
