// FILE: lixenwraith/params/coerce.go
package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type names carried by ParamError.Kind
const (
	KindBool    = "bool"
	KindInt     = "int"
	KindInt64   = "int64"
	KindFloat32 = "float32"
	KindFloat64 = "float64"
)

// ParseBool accepts values starting with "true", "on" or "yes" as true, and values
// starting with "false", "off" or exactly "no" as false. Matching is case-sensitive.
func ParseBool(s string) (bool, error) {
	switch {
	case strings.HasPrefix(s, "true"), strings.HasPrefix(s, "on"), strings.HasPrefix(s, "yes"):
		return true, nil
	case strings.HasPrefix(s, "false"), strings.HasPrefix(s, "off"), s == "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
}

// ParseInt parses a base-10 integer in the 32-bit signed range.
func ParseInt(s string) (int, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(i), nil
}

// ParseInt64 parses a base-10 64-bit signed integer.
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ParseFloat32 parses a single precision float.
// Surrounding white space and a trailing f/F/d/D type suffix are accepted.
// Values beyond the float32 range become ±Inf.
func ParseFloat32(s string) (float32, error) {
	f, err := parseFloat(s, 32)
	return float32(f), err
}

// ParseFloat64 parses a double precision float, with the same leniency as ParseFloat32.
func ParseFloat64(s string) (float64, error) {
	return parseFloat(s, 64)
}

// parseFloat spells infinity and NaN only as "Infinity" and "NaN"; "inf" is malformed.
func parseFloat(s string, bitSize int) (float64, error) {
	num := trimFloat(s)
	if special(num) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(num, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	// Overflow is ±Inf, underflow rounds to zero
	return f, nil
}

// special reports the strconv spellings of infinity and NaN other than "Infinity" and "NaN".
func special(num string) bool {
	unsigned := strings.TrimLeft(num, "+-")
	if len(num)-len(unsigned) > 1 {
		return false
	}
	switch strings.ToLower(unsigned) {
	case "inf", "infinity":
		return unsigned != "Infinity"
	case "nan":
		return unsigned != "NaN"
	}
	return false
}

// trimFloat strips white space and a numeric type suffix ("1.5f", "2d").
// "Inf" keeps its trailing f since the preceding character is not numeric.
func trimFloat(s string) string {
	s = strings.TrimSpace(s)
	if n := len(s); n > 1 {
		switch s[n-1] {
		case 'f', 'F', 'd', 'D':
			if prev := s[n-2]; (prev >= '0' && prev <= '9') || prev == '.' {
				return s[:n-1]
			}
		}
	}
	return s
}
