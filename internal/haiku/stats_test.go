package haiku

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canopywatch/forest-haiku/internal/state"
)

func TestTotalArea(t *testing.T) {
	t.Run("sums the sequence", func(t *testing.T) {
		obs := state.Observations{"area_ha": []any{450.5, 320.8, 210.3, 180.2}}
		assert.InDelta(t, 1161.8, totalArea(obs), 1e-9)
	})

	t.Run("order independent", func(t *testing.T) {
		obs := state.Observations{"area_ha": []any{180.2, 450.5, 210.3, 320.8}}
		assert.InDelta(t, 1161.8, totalArea(obs), 1e-9)
	})

	t.Run("empty sequence", func(t *testing.T) {
		assert.Zero(t, totalArea(state.Observations{"area_ha": []any{}}))
	})

	t.Run("absent field", func(t *testing.T) {
		assert.Zero(t, totalArea(state.Observations{}))
	})
}

func TestDominantDriver(t *testing.T) {
	t.Run("majority wins", func(t *testing.T) {
		obs := state.Observations{"driver": []any{
			"Potential conversion", "Potential conversion", "Crop management", "Flooding",
		}}
		assert.Equal(t, "Potential conversion", dominantDriver(obs))
	})

	t.Run("tie resolves to first seen", func(t *testing.T) {
		obs := state.Observations{"driver": []any{"Flooding", "Wildfire", "Wildfire", "Flooding"}}
		assert.Equal(t, "Flooding", dominantDriver(obs))
	})

	t.Run("empty sequence", func(t *testing.T) {
		assert.Equal(t, "unknown", dominantDriver(state.Observations{"driver": []any{}}))
	})

	t.Run("absent field", func(t *testing.T) {
		assert.Equal(t, "unknown", dominantDriver(state.Observations{}))
	})
}

func TestPeriodLabel(t *testing.T) {
	t.Run("full month name from first date", func(t *testing.T) {
		obs := state.Observations{"dist_alert_date": []any{"2025-09-01", "2025-10-15"}}
		assert.Equal(t, "September", periodLabel(obs))
	})

	t.Run("alert_date preferred over dist_alert_date", func(t *testing.T) {
		obs := state.Observations{
			"alert_date":      []any{"2024-03-15"},
			"dist_alert_date": []any{"2025-09-01"},
		}
		assert.Equal(t, "March", periodLabel(obs))
	})

	t.Run("empty alert_date falls back to dist_alert_date", func(t *testing.T) {
		obs := state.Observations{
			"alert_date":      []any{},
			"dist_alert_date": []any{"2024-03-15"},
		}
		assert.Equal(t, "March", periodLabel(obs))
	})

	t.Run("malformed date", func(t *testing.T) {
		obs := state.Observations{"dist_alert_date": []any{"invalid-date", "also-invalid"}}
		assert.Equal(t, "recent", periodLabel(obs))
	})

	t.Run("wrong format", func(t *testing.T) {
		obs := state.Observations{"alert_date": []any{"15/03/2024"}}
		assert.Equal(t, "recent", periodLabel(obs))
	})

	t.Run("absent field", func(t *testing.T) {
		assert.Equal(t, "recent", periodLabel(state.Observations{}))
	})
}

func TestSummarize(t *testing.T) {
	obs := state.Observations{
		"area_ha":         []any{450.5, 320.8, 210.3, 180.2},
		"driver":          []any{"Potential conversion", "Potential conversion", "Crop management", "Flooding"},
		"dist_alert_date": []any{"2025-09-01", "2025-09-05", "2025-09-10", "2025-09-15"},
	}
	sum := summarize(obs)
	assert.InDelta(t, 1161.8, sum.TotalAreaHa, 1e-9)
	assert.Equal(t, "Potential conversion", sum.MainDriver)
	assert.Equal(t, "September", sum.Period)
}
