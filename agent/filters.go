package agent

import "strings"

// snakeToCamel converts a snake_case name to the camelCase convention the
// Price List API uses for its field names. The first segment is left
// untouched; names without underscores pass through unchanged.
func snakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}

	return b.String()
}

// NormalizeFilters converts caller-supplied filter names to the camelCase
// field names the Price List API expects. Unrecognized fields are forwarded
// as-is; there is no validation against a known field list.
func NormalizeFilters(filters map[string]string) map[string]string {
	normalized := make(map[string]string, len(filters))
	for key, value := range filters {
		normalized[snakeToCamel(key)] = value
	}
	return normalized
}
