// FILE: lixenwraith/params/store.go
package params

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// MapParams holds one value per name. Names iterate in sorted order.
type MapParams map[string]string

func (m MapParams) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapParams) Values(name string) ([]string, bool) {
	v, ok := m[name]
	if !ok {
		return nil, false
	}
	return []string{v}, true
}

func (m MapParams) Names() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(m)))
}

// MultiMapParams holds several values per name and converts directly from url.Values.
// Names with empty value lists are treated as absent. Names iterate in sorted order.
type MultiMapParams map[string][]string

func (m MultiMapParams) Get(name string) (string, bool) {
	if v := m[name]; len(v) > 0 {
		return v[0], true
	}
	return "", false
}

func (m MultiMapParams) Values(name string) ([]string, bool) {
	if v := m[name]; len(v) > 0 {
		return slices.Clone(v), true
	}
	return nil, false
}

func (m MultiMapParams) Names() iter.Seq[string] {
	names := make([]string, 0, len(m))
	for name, v := range m {
		if len(v) > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return slices.Values(names)
}

// Ordered is a modifiable store that keeps names in insertion order.
// The zero value is ready to use. It is safe for concurrent use.
type Ordered struct {
	mu     sync.RWMutex
	names  []string
	values map[string][]string
}

// NewOrdered creates an empty Ordered store
func NewOrdered() *Ordered {
	return &Ordered{values: make(map[string][]string)}
}

// Add appends values to name, registering name at the end if it is new.
// Adding no values is a no-op.
func (o *Ordered) Add(name string, values ...string) *Ordered {
	if len(values) == 0 {
		return o
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.values == nil {
		o.values = make(map[string][]string)
	}
	existing, exists := o.values[name]
	if !exists {
		o.names = append(o.names, name)
	}
	o.values[name] = append(slices.Clip(existing), values...)
	return o
}

// Set replaces the values of name, keeping its position. Setting no values removes name.
func (o *Ordered) Set(name string, values ...string) *Ordered {
	if len(values) == 0 {
		o.Remove(name)
		return o
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.values == nil {
		o.values = make(map[string][]string)
	}
	if _, exists := o.values[name]; !exists {
		o.names = append(o.names, name)
	}
	o.values[name] = slices.Clone(values)
	return o
}

// Remove deletes name and returns its former values.
func (o *Ordered) Remove(name string) []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	values, exists := o.values[name]
	if !exists {
		return nil
	}
	delete(o.values, name)
	o.names = slices.DeleteFunc(o.names, func(n string) bool { return n == name })
	return values
}

func (o *Ordered) Get(name string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if v := o.values[name]; len(v) > 0 {
		return v[0], true
	}
	return "", false
}

func (o *Ordered) Values(name string) ([]string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if v := o.values[name]; len(v) > 0 {
		return slices.Clone(v), true
	}
	return nil, false
}

// Names iterates a snapshot of the names taken when iteration starts.
func (o *Ordered) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		o.mu.RLock()
		names := slices.Clone(o.names)
		o.mu.RUnlock()

		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the store
func (o *Ordered) Clone() *Ordered {
	o.mu.RLock()
	defer o.mu.RUnlock()

	clone := &Ordered{
		names:  slices.Clone(o.names),
		values: make(map[string][]string, len(o.values)),
	}
	for name, v := range o.values {
		clone.values[name] = slices.Clone(v)
	}
	return clone
}

// Params returns the store wrapped with the derived accessors
func (o *Ordered) Params() *Params {
	return Of(o)
}

// Merge copies every source into a new Ordered store, concatenating the
// values of names that appear in several sources. Nil sources are skipped.
func Merge(sources ...Source) *Ordered {
	merged := NewOrdered()
	for _, src := range sources {
		if absent(src) {
			continue
		}
		for name := range src.Names() {
			if values, ok := src.Values(name); ok {
				merged.Add(name, values...)
			}
		}
	}
	return merged
}
