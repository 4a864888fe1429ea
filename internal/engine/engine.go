// Package engine is the single entry point of the expression evaluator.
//
// Every call scans, parses and evaluates source from scratch; nothing is
// shared between calls, so Evaluate is safe for concurrent use.
package engine

import (
	"github.com/leonardinius/mathexpr/internal/interpreter"
	"github.com/leonardinius/mathexpr/internal/numfmt"
	"github.com/leonardinius/mathexpr/internal/parser"
	"github.com/leonardinius/mathexpr/internal/scanner"
)

// Result is the outcome of a successful evaluation. Value is always finite.
type Result struct {
	Value float64
	// Trace holds one line per completed reduction, in completion order.
	// It is empty when tracing is disabled.
	Trace []string
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return numfmt.Format(r.Value)
}

// Evaluate computes the value of source.
//
// Errors are *calcerrors.LexError, *calcerrors.ParseError or
// *calcerrors.EvalError; all of them implement calcerrors.InputError.
func Evaluate(source string, options ...Option) (Result, error) {
	opts := newEngineOpts(options...)

	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		return Result{}, err
	}

	expr, err := parser.NewParser(tokens, parser.WithMaxDepth(opts.maxDepth)).Parse()
	if err != nil {
		return Result{}, err
	}

	value, trace, err := interpreter.NewInterpreter(interpreter.WithTrace(opts.trace)).Evaluate(expr)
	if err != nil {
		return Result{}, err
	}

	if trace == nil {
		trace = []string{}
	}

	return Result{Value: value, Trace: trace}, nil
}
