package numfmt_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/leonardinius/mathexpr/internal/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   float64
		out  string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integer", 14, "14"},
		{"negative integer", -4, "-4"},
		{"large integer", 123456789012345, "123456789012345"},
		{"integer at limit", 1e15, "1e+15"},
		{"fraction", 4.5, "4.5"},
		{"one third", 1.0 / 3.0, "0.333333333333"},
		{"pi", math.Pi, "3.14159265359"},
		{"rounding noise", 0.1 + 0.2, "0.3"},
		{"almost one", math.Sin(math.Pi / 2), "1"},
		{"small", 1.5e-7, "1.5e-07"},
		{"nan", math.NaN(), "NaN"},
		{"inf", math.Inf(1), "Infinity"},
		{"neg inf", math.Inf(-1), "-Infinity"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, numfmt.Format(tc.in))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 1, -1, 2.5, 1.0 / 3.0, math.E, 512, 1e-3, 987654.321, 99999999999999} {
		parsed, err := strconv.ParseFloat(numfmt.Format(v), 64)
		require.NoError(t, err)
		assert.InDelta(t, v, parsed, 1e-10*math.Max(1, math.Abs(v)))
	}
}
