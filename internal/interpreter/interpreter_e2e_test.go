package interpreter_test

import (
	"testing"

	"github.com/leonardinius/mathexpr/internal/interpreter"
	"github.com/stretchr/testify/assert"
)

func TestInterpretTrace(t *testing.T) {
	testcases := []struct {
		name  string
		in    string   // Input
		trace []string // Expected trace
		err   string   // Expected error
	}{
		{name: `literal`, in: `5`, trace: []string{}},
		{name: `grouped literal`, in: `((5))`, trace: []string{}},
		{name: `sum`, in: `2 + 3 * 4`, trace: []string{`3 * 4 = 12`, `2 + 12 = 14`}},
		{name: `left to right`, in: `(1+2)*(3+4)`, trace: []string{`1 + 2 = 3`, `3 + 4 = 7`, `3 * 7 = 21`}},
		{name: `right assoc`, in: `2^3^2`, trace: []string{`3 ^ 2 = 9`, `2 ^ 9 = 512`}},
		{name: `negation`, in: `-2^2`, trace: []string{`2 ^ 2 = 4`, `-(4) = -4`}},
		{name: `unary plus records nothing`, in: `+2`, trace: []string{}},
		{name: `function`, in: `sqrt(144) + 3^2`, trace: []string{`sqrt(144) = 12`, `3 ^ 2 = 9`, `12 + 9 = 21`}},
		{name: `constant`, in: `sin(pi/2)`, trace: []string{`pi = 3.14159265359`, `3.14159265359 / 2 = 1.57079632679`, `sin(1.57079632679) = 1`}},
		{name: `constant glyph`, in: `π`, trace: []string{`pi = 3.14159265359`}},
		{name: `function name lower cased`, in: `ABS(-3)`, trace: []string{`-(3) = -3`, `abs(-3) = 3`}},
		{name: `fractions`, in: `1/3`, trace: []string{`1 / 3 = 0.333333333333`}},
		{name: `error drops trace`, in: `1 + 1 / 0`, err: `division by zero`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, trace, err := evaluate(t, tc.in, interpreter.WithTrace(true))
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				assert.Nil(t, trace)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.trace, trace)
			}
		})
	}
}

func TestInterpretTraceDisabled(t *testing.T) {
	value, trace, err := evaluate(t, `(1+2)*(3+4)`)
	assert.NoError(t, err)
	assert.Equal(t, 21.0, value)
	assert.Nil(t, trace)
}

func TestInterpretIdempotent(t *testing.T) {
	ip := interpreter.NewInterpreter(interpreter.WithTrace(true))

	v1, t1, err1 := evaluateWith(t, ip, `ln(e^5) * sqrt(2)`)
	v2, t2, err2 := evaluateWith(t, ip, `ln(e^5) * sqrt(2)`)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, t1, t2)
}
