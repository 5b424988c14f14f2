// FILE: lixenwraith/params/parse.go
package params

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseQuery parses a URL form encoded query string into an Ordered store,
// keeping first-appearance name order and per-name value order.
// A leading '?' is optional, empty pairs are skipped and a name without '='
// gets an empty value. Malformed percent escapes return ErrParse.
func ParseQuery(query string) (*Ordered, error) {
	o := NewOrdered()
	query = strings.TrimPrefix(query, "?")

	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		if pair == "" {
			continue
		}

		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid name %q: %w", ErrParse, rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value %q for '%s': %w", ErrParse, rawValue, name, err)
		}
		o.Add(name, value)
	}

	return o, nil
}

// MustParseQuery is like ParseQuery but panics on error
func MustParseQuery(query string) *Ordered {
	o, err := ParseQuery(query)
	if err != nil {
		panic(fmt.Sprintf("params parse failed: %v", err))
	}
	return o
}
