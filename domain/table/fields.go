package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve walks a dotted field path (e.g. "user.email") through nested
// mappings. It returns (nil, false) when any intermediate segment is
// missing, nil or not a mapping; it never panics. Records from different
// endpoints have inconsistent optional nesting, so a missing path is an
// ordinary outcome here.
func Resolve(record Record, path string) (interface{}, bool) {
	if record == nil || path == "" {
		return nil, false
	}

	var current interface{} = map[string]interface{}(record)
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

// ResolveString resolves a path and renders the value as a display string.
// Missing paths and nil values render as "", never as a null literal.
func ResolveString(record Record, path string) string {
	value, ok := Resolve(record, path)
	if !ok {
		return ""
	}
	return Stringify(value)
}

// Stringify renders an arbitrary record value for search, sort and export.
// Floats that hold integral values print without a decimal point so JSON
// numbers round-trip the way the backend sent them.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return Stringify(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
