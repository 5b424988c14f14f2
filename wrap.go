// FILE: lixenwraith/params/wrap.go
package params

import "iter"

// WrapDefaults layers defaults under params: a name set in params shadows it in defaults.
// If either side is nil the other is returned without a wrapper.
// Both sources are referenced, never copied, so lookups always reflect their current state.
func WrapDefaults(params, defaults Source) *Params {
	if absent(params) {
		return Of(defaults)
	}
	if absent(defaults) {
		return Of(params)
	}
	return &Params{src: &defaultsSource{params: params, defaults: defaults}}
}

// WrapAppended layers appended after params: multi-valued lookups concatenate
// both sides, params' values first. If either side is nil the other is returned.
func WrapAppended(params, appended Source) *Params {
	if absent(params) {
		return Of(appended)
	}
	if absent(appended) {
		return Of(params)
	}
	return &Params{src: &appendedSource{params: params, appended: appended}}
}

type defaultsSource struct {
	params   Source
	defaults Source
}

func (d *defaultsSource) Get(name string) (string, bool) {
	if v, ok := d.params.Get(name); ok {
		return v, true
	}
	return d.defaults.Get(name)
}

func (d *defaultsSource) Values(name string) ([]string, bool) {
	if v, ok := d.params.Values(name); ok {
		return v, true
	}
	return d.defaults.Values(name)
}

func (d *defaultsSource) Names() iter.Seq[string] {
	return unionNames(d.params, d.defaults)
}

type appendedSource struct {
	params   Source
	appended Source
}

func (a *appendedSource) Get(name string) (string, bool) {
	if v, ok := a.params.Get(name); ok {
		return v, true
	}
	return a.appended.Get(name)
}

func (a *appendedSource) Values(name string) ([]string, bool) {
	pv, pok := a.params.Values(name)
	av, aok := a.appended.Values(name)
	switch {
	case !pok:
		return av, aok
	case !aok:
		return pv, true
	}
	values := make([]string, 0, len(pv)+len(av))
	values = append(values, pv...)
	return append(values, av...), true
}

func (a *appendedSource) Names() iter.Seq[string] {
	return unionNames(a.params, a.appended)
}

// unionNames yields first's names then second's, each name once at its first position.
func unionNames(first, second Source) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, src := range [2]Source{first, second} {
			for name := range src.Names() {
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				if !yield(name) {
					return
				}
			}
		}
	}
}
