package utils

import "strings"

// TruncateForLog trims s and cuts it to limit runes, marking a cut with "...".
// Payload previews in log entries and error messages go through it.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
