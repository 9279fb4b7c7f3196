package haiku

import (
	"fmt"
	"strings"
)

const (
	defaultLocation = "unknown location"
	defaultDataset  = "forest change"
)

const haikuPromptTemplate = `You are a master haiku poet. Create a haiku (exactly 5-7-5 syllables) about forest loss.

CONSTRAINTS:
- Line 1: exactly 5 syllables
- Line 2: exactly 7 syllables
- Line 3: exactly 5 syllables
- Use concrete, sensory imagery
- Make it data-driven. reference the location, area lost, main cause, and time period (not necessarily directly, can be metaphoric).
- Evoke loss and melancholy
- NO explanations, ONLY the haiku

DATA:
- Location: {{.Location}}
- Total area lost: {{.TotalArea}} hectares
- Main cause: {{.MainDriver}}
- Time period: {{.Period}}
- Dataset: {{.Dataset}}

EXAMPLES:
"Twelve thousand hectares / Conversion spreads through silence / October weeps"
"Fire-scarred earth remains / Seven hundred hectares gone / Smoke obscures the stars"

Now create a haiku about this specific data. Return ONLY the haiku, nothing else.`

// buildPrompt renders the model instruction. Pure formatting: the same inputs
// always produce the same prompt. Area is rounded to whole hectares here and
// nowhere earlier.
func buildPrompt(sum Summary, location, dataset string) string {
	if location == "" {
		location = defaultLocation
	}
	if dataset == "" {
		dataset = defaultDataset
	}
	prompt := strings.ReplaceAll(haikuPromptTemplate, "{{.Location}}", location)
	prompt = strings.ReplaceAll(prompt, "{{.TotalArea}}", fmt.Sprintf("%.0f", sum.TotalAreaHa))
	prompt = strings.ReplaceAll(prompt, "{{.MainDriver}}", sum.MainDriver)
	prompt = strings.ReplaceAll(prompt, "{{.Period}}", sum.Period)
	prompt = strings.ReplaceAll(prompt, "{{.Dataset}}", dataset)
	return prompt
}
