package helpers

import "strings"

// TrimToNil trims surrounding whitespace and returns nil when the result is empty.
// Used to normalize optional text fields before they reach the database, so that
// blank submissions are stored as NULL rather than empty strings.
func TrimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SplitCSV splits a comma-separated value into trimmed, non-empty parts.
// Returns nil for an empty input.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
