package model

import "strings"

// SplitTags turns a comma-delimited tag string into trimmed tokens. Empty
// tokens are dropped, so "" and " , " both yield an empty sequence.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}

	return tags
}
