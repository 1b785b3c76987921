package question

import "strings"

// normalizeText collapses runs of whitespace into single spaces.
func normalizeText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, normalizeText(value))
	}
	return normalized
}
