package catalog

import "strings"

// NormalizeQuery trims and lower-cases a raw query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Search returns the entries of working whose name, code or dial code
// contains query, case-insensitively, in working order. An empty query
// returns working unchanged.
func Search(working []Entry, query string) []Entry {
	query = NormalizeQuery(query)
	if query == "" {
		return working
	}

	matched := make([]Entry, 0, len(working))
	for _, e := range working {
		if matches(e, query) {
			matched = append(matched, e)
		}
	}
	return matched
}

func matches(e Entry, query string) bool {
	for _, field := range [...]string{e.Name, e.Code, e.DialCode} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
