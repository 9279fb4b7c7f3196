package haiku

import "strings"

// normalizeLines enforces the three-line shape on the raw completion. More
// than three lines is truncated to the first three; three or fewer passes
// through unchanged, short output included. The asymmetry is intentional:
// truncate down, never pad up or reject. Returns whether truncation happened
// so the caller can log and count it.
func normalizeLines(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) <= 3 {
		return text, false
	}
	return strings.Join(lines[:3], "\n"), true
}
