package service

import "strings"

// Extract walks the alias list in order and returns the first cell that is
// present and non-empty after trimming. Empty string means "absent".
// Header keys are matched case-sensitively; tolerance for header variation
// lives in the alias lists, not here.
func Extract(row map[string]string, aliases []string) string {
	for _, a := range aliases {
		v, ok := row[a]
		if !ok {
			continue
		}
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
