// File: lixenwraith/params/helper.go
package params

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		// Check if the value is a map that can be further flattened
		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// formatValues converts a decoded file value to parameter values.
// Lists give one value per element; nil gives none, leaving the name absent.
func formatValues(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			s, err := formatScalar(item)
			if err != nil {
				return nil, err
			}
			values = append(values, s)
		}
		return values, nil
	case []map[string]any:
		return nil, fmt.Errorf("arrays of tables are not supported")
	default:
		s, err := formatScalar(v)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

// formatScalar renders a single decoded value the way strconv would write it.
func formatScalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		// toml.LocalDate, toml.LocalTime, toml.LocalDateTime
		return v.String(), nil
	default:
		return "", fmt.Errorf("cannot convert %T to a parameter value", value)
	}
}
