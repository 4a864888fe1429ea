package interpreter

import (
	"fmt"

	"github.com/leonardinius/mathexpr/internal/numfmt"
)

// tracer records one line per completed reduction, in completion order.
// A disabled tracer records nothing and returns nil lines.
type tracer struct {
	enabled bool
	lines   []string
}

func newTracer(enabled bool) *tracer {
	return &tracer{enabled: enabled}
}

func (t *tracer) Binary(left float64, operator string, right, result float64) {
	t.record("%s %s %s = %s", numfmt.Format(left), operator, numfmt.Format(right), numfmt.Format(result))
}

func (t *tracer) Call(fn string, arg, result float64) {
	t.record("%s(%s) = %s", fn, numfmt.Format(arg), numfmt.Format(result))
}

func (t *tracer) Constant(name string, value float64) {
	t.record("%s = %s", name, numfmt.Format(value))
}

func (t *tracer) Negate(operand, result float64) {
	t.record("-(%s) = %s", numfmt.Format(operand), numfmt.Format(result))
}

func (t *tracer) Lines() []string {
	if !t.enabled {
		return nil
	}
	if t.lines == nil {
		return []string{}
	}
	return t.lines
}

func (t *tracer) record(format string, args ...any) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}
