package content

import "strings"

const (
	fence     = "```"
	jsonFence = "```json"
)

// StripFences removes one opening Markdown code fence (bare or tagged json)
// and one closing fence, then trims surrounding whitespace. Text without
// fences is only trimmed.
func StripFences(s string) string {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, jsonFence):
		s = strings.TrimPrefix(s, jsonFence)
	case strings.HasPrefix(s, fence):
		s = strings.TrimPrefix(s, fence)
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, fence)

	return strings.TrimSpace(s)
}
