// FILE: lixenwraith/params/required_test.go
package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	p := NewOrdered().
		Add("q", "hello").
		Add("rows", "10").
		Add("fq", "a", "b").
		Add("debug", "on").
		Add("bad", "ten").
		Add("f.title.hl.fragsize", "50").
		Params()
	r := p.Required()

	t.Run("Present", func(t *testing.T) {
		q, err := r.Get("q")
		require.NoError(t, err)
		assert.Equal(t, "hello", q)

		fq, err := r.Values("fq")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, fq)

		rows, err := r.Int("rows")
		require.NoError(t, err)
		assert.Equal(t, 10, rows)

		debug, err := r.Bool("debug")
		require.NoError(t, err)
		assert.True(t, debug)

		frag, err := r.FieldInt64("title", "hl.fragsize")
		require.NoError(t, err)
		assert.Equal(t, int64(50), frag)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := r.Get("wt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingParam))

		var missing *MissingError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "wt", missing.Name)
		assert.Equal(t, 400, missing.StatusCode())
		assert.Equal(t, "missing required parameter: wt", err.Error())

		_, err = r.Float64("boost")
		assert.True(t, errors.Is(err, ErrMissingParam))
		_, err = r.Values("facet.field")
		assert.True(t, errors.Is(err, ErrMissingParam))
	})

	t.Run("MissingFieldReportsOverrideName", func(t *testing.T) {
		_, err := r.FieldParam("body", "hl.snippets")
		var missing *MissingError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "f.body.hl.snippets", missing.Name)

		_, err = r.FieldBool("body", "hl")
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "f.body.hl", missing.Name)
	})

	t.Run("FieldFallsBackToPlainName", func(t *testing.T) {
		rows, err := r.FieldInt("title", "rows")
		require.NoError(t, err)
		assert.Equal(t, 10, rows)
	})

	t.Run("MalformedIsNotMissing", func(t *testing.T) {
		_, err := r.Int("bad")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrBadParam))
		assert.False(t, errors.Is(err, ErrMissingParam))

		var pe *ParamError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "bad", pe.Name)
		assert.Equal(t, "ten", pe.Value)
	})

	t.Run("Check", func(t *testing.T) {
		require.NoError(t, r.Check("q", "rows"))
		require.NoError(t, r.Check())

		err := r.Check("q", "wt", "sort")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingParam))
		assert.Contains(t, err.Error(), "wt")
		assert.Contains(t, err.Error(), "sort")
		assert.NotContains(t, err.Error(), "parameter: q")
	})

	t.Run("NilParams", func(t *testing.T) {
		var nilParams *Params
		_, err := nilParams.Required().Get("q")
		assert.True(t, errors.Is(err, ErrMissingParam))
	})
}
