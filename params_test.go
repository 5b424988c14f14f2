// FILE: lixenwraith/params/params_test.go
package params

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetMatchesValues checks that Get is the first of Values and both agree on absence
func TestGetMatchesValues(t *testing.T) {
	sources := map[string]Source{
		"Ordered":   NewOrdered().Add("q", "a", "b").Add("rows", "10"),
		"MapParams": MapParams{"q": "a", "rows": "10"},
		"MultiMap":  MultiMapParams{"q": {"a", "b"}, "rows": {"10"}, "empty": {}},
		"Defaults":  WrapDefaults(MapParams{"q": "a"}, NewOrdered().Add("q", "z").Add("rows", "10")),
		"Appended":  WrapAppended(NewOrdered().Add("q", "a"), NewOrdered().Add("q", "b").Add("rows", "10")),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			p := Of(src)
			for _, n := range []string{"q", "rows", "missing", "empty"} {
				first, ok := p.Get(n)
				values, vok := p.Values(n)
				assert.Equal(t, ok, vok, "presence of %s", n)
				if ok {
					require.NotEmpty(t, values)
					assert.Equal(t, values[0], first)
				}
			}
		})
	}
}

func TestNilParams(t *testing.T) {
	var p *Params

	_, ok := p.Get("q")
	assert.False(t, ok)
	_, ok = p.Values("q")
	assert.False(t, ok)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "def", p.GetDefault("q", "def"))
	assert.Equal(t, "", p.QueryString())
	assert.Equal(t, "{!}", p.LocalParamsString())
	assert.Equal(t, "", p.String())

	assert.Nil(t, Of(nil))
	assert.Nil(t, Of(p))
}

func TestOfReusesParams(t *testing.T) {
	p := Of(MapParams{"a": "1"})
	assert.Same(t, p, Of(p))
}

func TestAccessors(t *testing.T) {
	p := NewOrdered().Add("q", "hello").Add("fq", "a", "b").Params()

	assert.Equal(t, "hello", p.GetDefault("q", "x"))
	assert.Equal(t, "x", p.GetDefault("nope", "x"))
	assert.True(t, p.Has("fq"))
	assert.False(t, p.Has("nope"))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"q", "fq"}, slices.Collect(p.Names()))

	// An empty string is present, not absent
	p = NewOrdered().Add("q", "").Params()
	v, ok := p.Get("q")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestFieldParams(t *testing.T) {
	p := NewOrdered().
		Add("hl", "false").
		Add("f.title.hl", "true").
		Add("fl", "id", "name").
		Add("f.body.fl", "text").
		Params()

	tests := []struct {
		name   string
		field  string
		param  string
		want   string
		wantOK bool
	}{
		{"OverrideWins", "title", "hl", "true", true},
		{"FallsBackToGlobal", "body", "hl", "false", true},
		{"BothAbsent", "title", "snippets", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.FieldParam(tt.field, tt.param)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)

			override, overrideOK := p.Get(FieldName(tt.field, tt.param))
			global, globalOK := p.Get(tt.param)
			if overrideOK {
				assert.Equal(t, override, got)
			} else {
				assert.Equal(t, global, got)
				assert.Equal(t, globalOK, ok)
			}
		})
	}

	assert.Equal(t, "f.title.hl", FieldName("title", "hl"))
	assert.Equal(t, "def", p.FieldParamDefault("title", "snippets", "def"))
	assert.Equal(t, "true", p.FieldParamDefault("title", "hl", "def"))

	values, ok := p.FieldValues("body", "fl")
	assert.True(t, ok)
	assert.Equal(t, []string{"text"}, values)

	values, ok = p.FieldValues("title", "fl")
	assert.True(t, ok)
	assert.Equal(t, []string{"id", "name"}, values)

	_, ok = p.FieldValues("title", "nope")
	assert.False(t, ok)
}

func TestEntries(t *testing.T) {
	o := NewOrdered().Add("q", "hello").Add("fq", "a", "b")
	p := o.Params()

	var names []string
	for e := range p.Entries() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"q", "fq"}, names)

	t.Run("ReadOnly", func(t *testing.T) {
		for e := range p.Entries() {
			err := e.SetValues("changed")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrReadOnly))
		}
		v, _ := p.Get("q")
		assert.Equal(t, "hello", v)
	})

	t.Run("ValuesAreLazy", func(t *testing.T) {
		for e := range p.Entries() {
			if e.Name() == "q" {
				o.Set("q", "updated")
				assert.Equal(t, []string{"updated"}, e.Values())
			}
		}
		o.Set("q", "hello")
	})

	t.Run("ValuesAreCopies", func(t *testing.T) {
		for e := range p.Entries() {
			vals := e.Values()
			vals[0] = "mutated"
		}
		v, _ := p.Get("fq")
		assert.Equal(t, "a", v)
	})

	t.Run("String", func(t *testing.T) {
		var got []string
		for e := range p.Entries() {
			got = append(got, e.String())
		}
		assert.Equal(t, []string{"q=[hello]", "fq=[a, b]"}, got)
	})

	t.Run("EarlyStop", func(t *testing.T) {
		n := 0
		for range p.Entries() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestAll(t *testing.T) {
	p := NewOrdered().Add("q", "hello").Add("fq", "a", "b").Params()

	got := make(map[string][]string)
	var order []string
	for name, values := range p.All() {
		order = append(order, name)
		got[name] = values
		values[0] = "mutated"
	}

	assert.Equal(t, []string{"q", "fq"}, order)
	assert.Equal(t, []string{"mutated", "b"}, got["fq"])
	v, _ := p.Get("fq")
	assert.Equal(t, "a", v)
}
