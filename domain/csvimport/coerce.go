package csvimport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// coerce validates one raw cell against its field spec and returns the
// typed value stored on the validated record. An empty optional cell
// coerces to nil.
func coerce(spec FieldSpec, raw string) (interface{}, error) {
	value := strings.TrimSpace(raw)
	if spec.Normalize != nil {
		value = spec.Normalize(value)
	}

	if value == "" {
		if spec.Required {
			return nil, fmt.Errorf("column %q: required value is empty", spec.Name)
		}
		return nil, nil
	}

	switch spec.Type {
	case FieldNumber:
		number, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: %q is not a number", spec.Name, value)
		}
		return number, nil

	case FieldBool:
		switch strings.ToLower(value) {
		case "true", "t", "yes", "y", "1":
			return true, nil
		case "false", "f", "no", "n", "0":
			return false, nil
		}
		return nil, fmt.Errorf("column %q: %q is not a boolean", spec.Name, value)

	case FieldDate:
		parsed, err := dateparse.ParseAny(value)
		if err != nil {
			return nil, fmt.Errorf("column %q: %q is not a date", spec.Name, value)
		}
		return parsed.Format("2006-01-02"), nil

	case FieldEnum:
		for _, allowed := range spec.Enum {
			if strings.EqualFold(value, allowed) {
				return allowed, nil
			}
		}
		return nil, fmt.Errorf("column %q: %q is not one of %s",
			spec.Name, value, strings.Join(spec.Enum, ", "))

	default:
		return value, nil
	}
}
