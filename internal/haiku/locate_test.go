package haiku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopywatch/forest-haiku/internal/state"
)

func TestLocateObservations(t *testing.T) {
	t.Run("single region and dataset", func(t *testing.T) {
		raw := map[string]map[string]state.Observations{
			"BRA": {"0": {"area_ha": []any{100.0}}},
		}
		obs, ok := locateObservations(raw)
		require.True(t, ok)
		assert.Equal(t, []float64{100}, obs.Floats("area_ha"))
	})

	t.Run("multiple regions use sorted-first only", func(t *testing.T) {
		raw := map[string]map[string]state.Observations{
			"USA": {"0": {"driver": []any{"Wildfire"}}},
			"BRA": {"0": {"driver": []any{"Potential conversion"}}},
		}
		obs, ok := locateObservations(raw)
		require.True(t, ok)
		assert.Equal(t, []string{"Potential conversion"}, obs.Strings("driver"))
	})

	t.Run("empty dataset mapping is skipped", func(t *testing.T) {
		raw := map[string]map[string]state.Observations{
			"BRA": {"0": {}},
			"USA": {"0": {"area_ha": []any{500.0}}},
		}
		obs, ok := locateObservations(raw)
		require.True(t, ok)
		assert.Equal(t, []float64{500}, obs.Floats("area_ha"))
	})

	t.Run("empty raw data", func(t *testing.T) {
		_, ok := locateObservations(map[string]map[string]state.Observations{})
		assert.False(t, ok)
	})

	t.Run("only empty dataset mappings", func(t *testing.T) {
		raw := map[string]map[string]state.Observations{
			"BRA": {},
			"USA": {"0": {}},
		}
		_, ok := locateObservations(raw)
		assert.False(t, ok)
	})
}
