// FILE: lixenwraith/params/params.go
package params

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Source is the read-only multimap contract every parameter container satisfies.
// Names must yield each present name once, in an order that is stable for an
// unmodified instance. A present name always has at least one value.
type Source interface {
	// Get returns the first value of name; ok is false when name has no mapping.
	Get(name string) (value string, ok bool)
	// Values returns all values of name in stored order; ok is false when absent.
	Values(name string) (values []string, ok bool)
	// Names iterates the declared parameter names.
	Names() iter.Seq[string]
}

// Params adds field-scoped, typed and serialization accessors on top of a Source.
// A nil *Params is a valid empty container.
type Params struct {
	src Source
}

// Of returns src as *Params, reusing it when src already is one.
func Of(src Source) *Params {
	if absent(src) {
		return nil
	}
	if p, ok := src.(*Params); ok {
		return p
	}
	return &Params{src: src}
}

// absent reports a nil source, including a typed nil *Params or *Ordered.
func absent(src Source) bool {
	switch s := src.(type) {
	case nil:
		return true
	case *Params:
		return s == nil
	case *Ordered:
		return s == nil
	}
	return false
}

// Get returns the first value of a parameter.
func (p *Params) Get(name string) (string, bool) {
	if p == nil || p.src == nil {
		return "", false
	}
	return p.src.Get(name)
}

// GetDefault returns the first value of a parameter, or def if it is not set.
func (p *Params) GetDefault(name, def string) string {
	if v, ok := p.Get(name); ok {
		return v
	}
	return def
}

// Values returns all values of a parameter.
func (p *Params) Values(name string) ([]string, bool) {
	if p == nil || p.src == nil {
		return nil, false
	}
	return p.src.Values(name)
}

// Names iterates the parameter names.
func (p *Params) Names() iter.Seq[string] {
	if p == nil || p.src == nil {
		return func(func(string) bool) {}
	}
	return p.src.Names()
}

// Has reports whether a parameter is set.
func (p *Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len counts the parameter names. The size is not stored, so this iterates.
func (p *Params) Len() int {
	n := 0
	for range p.Names() {
		n++
	}
	return n
}

// FieldName returns the per-field override name "f.<field>.<param>".
func FieldName(field, param string) string {
	return "f." + field + "." + param
}

// FieldParam returns the value of "f.<field>.<param>", or of param if the override is not set.
func (p *Params) FieldParam(field, param string) (string, bool) {
	_, v, ok := p.fieldLookup(field, param)
	return v, ok
}

// FieldParamDefault is FieldParam falling back to def.
func (p *Params) FieldParamDefault(field, param, def string) string {
	if v, ok := p.FieldParam(field, param); ok {
		return v
	}
	return def
}

// FieldValues returns all values of "f.<field>.<param>", or of param if the override is not set.
func (p *Params) FieldValues(field, param string) ([]string, bool) {
	if v, ok := p.Values(FieldName(field, param)); ok {
		return v, true
	}
	return p.Values(param)
}

// fieldLookup resolves a field parameter and reports the name the value came from.
func (p *Params) fieldLookup(field, param string) (name, value string, ok bool) {
	name = FieldName(field, param)
	if v, ok := p.Get(name); ok {
		return name, v, true
	}
	v, ok := p.Get(param)
	return param, v, ok
}

// Entries iterates read-only entries; values are fetched only when asked for.
func (p *Params) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for name := range p.Names() {
			if !yield(Entry{name: name, p: p}) {
				return
			}
		}
	}
}

// All iterates name and value pairs. Value slices are copies.
func (p *Params) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for name := range p.Names() {
			values, _ := p.Values(name)
			if !yield(name, slices.Clone(values)) {
				return
			}
		}
	}
}

// Entry is a single read-only name to values mapping produced by Entries.
type Entry struct {
	name string
	p    *Params
}

// Name returns the parameter name
func (e Entry) Name() string {
	return e.name
}

// Values returns a copy of the parameter's current values
func (e Entry) Values() []string {
	values, _ := e.p.Values(e.name)
	return slices.Clone(values)
}

// SetValues always fails: entries are a view over read-only params.
func (e Entry) SetValues(values ...string) error {
	return fmt.Errorf("%w: cannot set values of '%s'", ErrReadOnly, e.name)
}

func (e Entry) String() string {
	return e.name + "=[" + strings.Join(e.Values(), ", ") + "]"
}
