package table

import (
	"strings"
)

// MatchesSearch reports whether a record matches a free-text search term.
// An empty term matches everything; otherwise at least one searchable field
// must contain the lower-cased term as a substring. Absent fields behave as
// empty strings and simply fail that field's match.
func MatchesSearch(record Record, searchTerm string, searchableFields []string) bool {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return true
	}
	for _, field := range searchableFields {
		value := strings.ToLower(ResolveString(record, field))
		if value != "" && strings.Contains(value, term) {
			return true
		}
	}
	return false
}

// MatchesFilters reports whether a record satisfies every discrete filter.
// The "all" sentinel (or an empty value) disables a filter. Comparison is
// exact after stringifying, so "true" matches a bool true and "3" matches
// a JSON number 3.
func MatchesFilters(record Record, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" || want == FilterAll {
			continue
		}
		if ResolveString(record, field) != want {
			return false
		}
	}
	return true
}

// Apply returns the records passing both the search predicate and every
// active discrete filter. The input slice is never mutated.
func Apply(records []Record, state FilterState, searchableFields []string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if !MatchesSearch(record, state.SearchTerm, searchableFields) {
			continue
		}
		if !MatchesFilters(record, state.Filters) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}
