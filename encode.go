// FILE: lixenwraith/params/encode.go
package params

import (
	"net/url"
	"slices"
	"strings"
	"unicode"
)

// Pair is one name of ToOrderedList. Value is a string for a single value and
// a []string when the parameter has several.
type Pair struct {
	Name  string
	Value any
}

// ToOrderedList converts the params to unique names with scalar or list values, in name order.
func (p *Params) ToOrderedList() []Pair {
	var list []Pair
	for name := range p.Names() {
		values, _ := p.Values(name)
		if len(values) == 1 {
			list = append(list, Pair{Name: name, Value: values[0]})
		} else {
			list = append(list, Pair{Name: name, Value: slices.Clone(values)})
		}
	}
	return list
}

// QueryString returns the params URL form encoded and starting with "?", or "" when empty.
// Repeated values produce repeated name=value pairs.
func (p *Params) QueryString() string {
	var sb strings.Builder
	first := true
	for name := range p.Names() {
		nameEnc := formEncode(name)
		values, _ := p.Values(name)
		for _, v := range values {
			if first {
				sb.WriteByte('?')
			} else {
				sb.WriteByte('&')
			}
			first = false
			sb.WriteString(nameEnc)
			sb.WriteByte('=')
			sb.WriteString(formEncode(v))
		}
	}
	return sb.String()
}

// formReplacer turns url.QueryEscape output into form encoding, where '*' is
// left alone and '~' is escaped.
var formReplacer = strings.NewReplacer("%2A", "*", "~", "%7E")

// formEncode applies application/x-www-form-urlencoded escaping: ASCII letters,
// digits and ".-*_" are kept, space becomes '+', everything else is %XX of its UTF-8 bytes.
func formEncode(s string) string {
	return formReplacer.Replace(url.QueryEscape(s))
}

// LocalParamsString returns the params in the form "{! name=value name2=value2}".
// Names are written as-is and must be identifiers; values go through EncodeLocalParamValue.
func (p *Params) LocalParamsString() string {
	var sb strings.Builder
	sb.WriteString("{!")
	for name := range p.Names() {
		values, _ := p.Values(name)
		for _, v := range values {
			sb.WriteByte(' ')
			sb.WriteString(name)
			sb.WriteByte('=')
			sb.WriteString(EncodeLocalParamValue(v))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// String is like QueryString but encodes only what keeps the output unambiguous
// (see PartialURLEncode) and has no leading "?". Meant for logging.
func (p *Params) String() string {
	var sb strings.Builder
	first := true
	for name := range p.Names() {
		values, _ := p.Values(name)
		for _, v := range values {
			if !first {
				sb.WriteByte('&')
			}
			first = false
			PartialURLEncode(&sb, name)
			sb.WriteByte('=')
			PartialURLEncode(&sb, v)
		}
	}
	return sb.String()
}

// EncodeLocalParamValue quotes a local-params value when it is non-empty and starts
// with '$' or contains white space or '}'. Quoting wraps the value in single
// quotes and escapes embedded single quotes with a backslash.
func EncodeLocalParamValue(val string) string {
	if val == "" {
		return val
	}
	if val[0] != '$' && !strings.ContainsFunc(val, func(r rune) bool {
		return r == '}' || isWhitespace(r)
	}) {
		return val
	}

	var sb strings.Builder
	sb.Grow(len(val) + 4)
	sb.WriteByte('\'')
	for i := 0; i < len(val); i++ {
		if val[i] == '\'' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(val[i])
	}
	sb.WriteByte('\'')
	return sb.String()
}

// isWhitespace matches space separators other than the no-break spaces
// U+00A0, U+2007 and U+202F, plus the ASCII controls \t \n \v \f \r and U+001C..U+001F.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', 0x1c, 0x1d, 0x1e, 0x1f:
		return true
	case 0xa0, 0x2007, 0x202f:
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

const lowerHex = "0123456789abcdef"

// PartialURLEncode appends val to sb, percent-encoding control characters below 32
// and '&', '=', '%', '+'. Space becomes '+'. Everything else, including non-ASCII,
// is written unchanged.
func PartialURLEncode(sb *strings.Builder, val string) {
	for i := 0; i < len(val); i++ {
		c := val[i]
		if c < 32 {
			sb.WriteByte('%')
			sb.WriteByte(lowerHex[c>>4])
			sb.WriteByte(lowerHex[c&0x0f])
			continue
		}
		switch c {
		case ' ':
			sb.WriteByte('+')
		case '&':
			sb.WriteString("%26")
		case '%':
			sb.WriteString("%25")
		case '=':
			sb.WriteString("%3D")
		case '+':
			sb.WriteString("%2B")
		default:
			sb.WriteByte(c)
		}
	}
}
