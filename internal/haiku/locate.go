package haiku

import (
	"sort"

	"github.com/canopywatch/forest-haiku/internal/state"
)

// locateObservations flattens the nested region → dataset mapping into a
// deterministically ordered candidate list and returns the first non-empty
// observation set. Go map iteration order is not stable, so both levels are
// walked in sorted key order. Only the first hit is used; remaining regions
// and datasets are ignored rather than merged.
func locateObservations(raw map[string]map[string]state.Observations) (state.Observations, bool) {
	regions := make([]string, 0, len(raw))
	for region := range raw {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		datasets := raw[region]
		ids := make([]string, 0, len(datasets))
		for id := range datasets {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if obs := datasets[id]; len(obs) > 0 {
				return obs, true
			}
		}
	}
	return nil, false
}
