// Package state defines the slice of shared agent state the haiku tool reads.
// The snapshot is populated upstream by the pick_aoi, pick_dataset, and
// pull_data tools and is never written back by this module.
package state

// Observations is one dataset's record set for a region: parallel sequences
// keyed by field name (area_ha, driver, alert dates) plus a few scalar
// descriptive fields. All sequences in a set have the same length.
type Observations map[string]any

// Floats returns the numeric sequence stored under key. A missing field
// yields nil; elements that are not numbers are skipped.
func (o Observations) Floats(key string) []float64 {
	raw, ok := o[key].([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			out = append(out, n)
		case int:
			out = append(out, float64(n))
		}
	}
	return out
}

// Strings returns the string sequence stored under key, skipping non-string
// elements.
func (o Observations) Strings(key string) []string {
	raw, ok := o[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// AOI is the area of interest selected upstream.
type AOI struct {
	Name    string `json:"name,omitempty"`
	Source  string `json:"source,omitempty"`
	SrcID   string `json:"src_id,omitempty"`
	Subtype string `json:"subtype,omitempty"`
}

// Dataset describes the dataset selected upstream.
type Dataset struct {
	DatasetName  string `json:"dataset_name,omitempty"`
	ContextLayer string `json:"context_layer,omitempty"`
}

// Context is the agent-state snapshot handed to the tool. RawData nests
// region code → dataset id → observation set. A nil RawData means the data
// pull has not run yet; a non-nil empty one means it ran and found nothing,
// and the two produce different user-facing messages.
type Context struct {
	RawData map[string]map[string]Observations `json:"raw_data,omitempty"`
	AOI     AOI                                `json:"aoi,omitempty"`
	Dataset Dataset                            `json:"dataset,omitempty"`
}
