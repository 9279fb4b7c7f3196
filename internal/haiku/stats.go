package haiku

import (
	"time"

	"github.com/canopywatch/forest-haiku/internal/state"
)

const (
	defaultDriver = "unknown"
	defaultPeriod = "recent"
)

// Summary is the per-invocation aggregate the prompt is built from.
type Summary struct {
	TotalAreaHa float64
	MainDriver  string
	Period      string
}

// summarize derives the haiku statistics from one observation set. Missing or
// malformed fields degrade to documented defaults; nothing here fails.
func summarize(obs state.Observations) Summary {
	return Summary{
		TotalAreaHa: totalArea(obs),
		MainDriver:  dominantDriver(obs),
		Period:      periodLabel(obs),
	}
}

func totalArea(obs state.Observations) float64 {
	var total float64
	for _, v := range obs.Floats("area_ha") {
		total += v
	}
	return total
}

// dominantDriver returns the most frequent driver label. Ties resolve to the
// label seen first, so counts are tracked in first-seen order instead of a
// bare map.
func dominantDriver(obs state.Observations) string {
	drivers := obs.Strings("driver")
	if len(drivers) == 0 {
		return defaultDriver
	}
	counts := make(map[string]int, len(drivers))
	order := make([]string, 0, len(drivers))
	for _, d := range drivers {
		if _, seen := counts[d]; !seen {
			order = append(order, d)
		}
		counts[d]++
	}
	best := order[0]
	for _, d := range order[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

// periodLabel turns the first alert date into a full month name. alert_date
// wins over dist_alert_date when both carry values; a missing, empty, or
// unparsable date falls back to "recent".
func periodLabel(obs state.Observations) string {
	dates := obs.Strings("alert_date")
	if len(dates) == 0 {
		dates = obs.Strings("dist_alert_date")
	}
	if len(dates) == 0 {
		return defaultPeriod
	}
	parsed, err := time.Parse("2006-01-02", dates[0])
	if err != nil {
		return defaultPeriod
	}
	return parsed.Month().String()
}
