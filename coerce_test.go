// FILE: lixenwraith/params/coerce_test.go
package params

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		input       string
		expected    bool
		expectError bool
	}{
		{"true", true, false},
		{"on", true, false},
		{"yes", true, false},
		{"trueish", true, false},
		{"false", false, false},
		{"off", false, false},
		{"no", false, false},
		{"falsey", false, false},
		{"nope", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			got, err := ParseBool(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidBool))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt("10")
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = ParseInt("-2147483648")
	require.NoError(t, err)
	assert.Equal(t, math.MinInt32, v)

	v, err = ParseInt("+7")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	for _, bad := range []string{"abc", "", "1.5", " 1", "2147483648", "0x10"} {
		_, err := ParseInt(bad)
		assert.Error(t, err, "input %q", bad)
	}

	_, err = ParseInt("2147483648")
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestParseInt64(t *testing.T) {
	v, err := ParseInt64("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)

	_, err = ParseInt64("9223372036854775808")
	assert.True(t, errors.Is(err, strconv.ErrRange))

	_, err = ParseInt64("ten")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1.5", 1.5},
		{" 2.25 ", 2.25},
		{"3f", 3},
		{"4.5d", 4.5},
		{"1e3", 1000},
		{"-0.5", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f64, err := ParseFloat64(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f64)

			f32, err := ParseFloat32(tt.input)
			require.NoError(t, err)
			assert.Equal(t, float32(tt.expected), f32)
		})
	}

	_, err := ParseFloat64("abc")
	assert.Error(t, err)
	_, err = ParseFloat32("f")
	assert.Error(t, err)
}

func TestParseFloatRange(t *testing.T) {
	f32, err := ParseFloat32("1e39")
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(f32), 1))

	f32, err = ParseFloat32("-1e40")
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(f32), -1))

	f64, err := ParseFloat64("1e400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f64, 1))

	f64, err = ParseFloat64("1e-400")
	require.NoError(t, err)
	assert.Equal(t, 0.0, f64)
}

func TestParseFloatSpecialValues(t *testing.T) {
	f64, err := ParseFloat64("Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f64, 1))

	f64, err = ParseFloat64("-Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f64, -1))

	f32, err := ParseFloat32("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(f32)))

	for _, bad := range []string{"inf", "+inf", "-Inf", "infinity", "INFINITY", "nan", "NAN"} {
		_, err := ParseFloat64(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, errors.Is(err, strconv.ErrSyntax), "input %q", bad)

		_, err = ParseFloat32(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
