package table

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Sort orders records by the active sort key. A nil key returns the input
// unchanged, preserving fetch order. The sort is stable: equal keys retain
// their relative order from the input list. The input slice is never
// mutated; a new slice is returned.
//
// The default comparison lower-cases both values and compares them as
// strings, so numeric columns sort lexicographically ("100" before "20")
// unless the column opts into CompareNumber or CompareDate.
func Sort(records []Record, state SortState, columns []ColumnDefinition) []Record {
	if state.Key == "" {
		return records
	}

	compareAs := CompareText
	valuePath := state.Key
	for _, col := range columns {
		if col.Key == state.Key {
			if col.CompareAs != "" {
				compareAs = col.CompareAs
			}
			// Columns over nested objects compare on the leaf the
			// reader sees, not the container.
			valuePath = col.ValuePath()
			break
		}
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)

	less := lessFunc(valuePath, compareAs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if state.Direction == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(key string, compareAs CompareAs) func(a, b Record) bool {
	switch compareAs {
	case CompareNumber:
		return func(a, b Record) bool {
			return numericValue(a, key) < numericValue(b, key)
		}
	case CompareDate:
		return func(a, b Record) bool {
			return dateValue(a, key).Before(dateValue(b, key))
		}
	default:
		return func(a, b Record) bool {
			return strings.ToLower(ResolveString(a, key)) < strings.ToLower(ResolveString(b, key))
		}
	}
}

// numericValue coerces a field to float64 for CompareNumber columns.
// Unparseable values sort as 0.
func numericValue(record Record, key string) float64 {
	raw := strings.TrimSpace(ResolveString(record, key))
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// dateValue coerces a field to a timestamp for CompareDate columns.
// Unparseable values sort as the zero time.
func dateValue(record Record, key string) time.Time {
	raw := strings.TrimSpace(ResolveString(record, key))
	if raw == "" {
		return time.Time{}
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
