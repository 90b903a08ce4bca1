package util

import "strings"

// StripCodeFences removes a surrounding markdown code fence that some models
// wrap around JSON output even in JSON response mode.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
