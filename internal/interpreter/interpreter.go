package interpreter

import (
	"math"

	"github.com/leonardinius/mathexpr/internal/calcerrors"
	"github.com/leonardinius/mathexpr/internal/numfmt"
	"github.com/leonardinius/mathexpr/internal/parser"
	"github.com/leonardinius/mathexpr/internal/token"
)

type Interpreter interface {
	// Interpret evaluates the given expression.
	// Returns the formatted result of the expression and an error if any.
	//
	// Not thread safe.
	// Resets internal state on Interpret.
	Interpret(expr parser.Expr) (string, error)

	// Evaluate evaluates the given expression.
	// Returns the result, the trace lines recorded during evaluation (nil if
	// tracing is off) and an error if any. The trace slice is never reused.
	//
	// Not thread safe.
	// Resets internal state on Evaluate.
	Evaluate(expr parser.Expr) (float64, []string, error)
}

type interpreter struct {
	opts  *interpreterOpts
	trace *tracer
	err   error
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...)}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(expr parser.Expr) (string, error) {
	if value, _, err := i.Evaluate(expr); err != nil {
		return "", err
	} else {
		return numfmt.Format(value), nil
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (float64, []string, error) {
	i.reset()

	value, err := i.evaluate(expr)
	if err != nil {
		return 0, nil, err
	}

	return value, i.trace.Lines(), nil
}

// VisitBinary implements parser.Visitor.
func (i *interpreter) VisitBinary(expr *parser.ExprBinary) any {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil
	}

	var result float64
	switch expr.Operator.Text {
	case "+":
		result = left + right
	case "-":
		result = left - right
	case "*":
		result = left * right
	case "/":
		if right == 0 {
			return i.reportError(expr.Operator, calcerrors.ErrEvalDivisionByZero)
		}
		result = left / right
	case "^":
		result = math.Pow(left, right)
	default:
		return i.reportError(expr.Operator, calcerrors.ErrEvalUnknownOperator)
	}

	if !isFinite(result) {
		return i.reportError(expr.Operator, calcerrors.ErrEvalResultNotFinite)
	}

	i.trace.Binary(left, expr.Operator.Text, right, result)
	return result
}

// VisitCall implements parser.Visitor.
func (i *interpreter) VisitCall(expr *parser.ExprCall) any {
	arg, err := i.evaluate(expr.Argument)
	if err != nil {
		return nil
	}

	fn, ok := builtins[expr.Callee.Name]
	if !ok {
		return i.reportError(expr.Callee, calcerrors.ErrEvalUnknownFunction)
	}

	result, err := fn(arg)
	if err != nil {
		return i.reportError(expr.Callee, err)
	}

	i.trace.Call(expr.Callee.Name, arg, result)
	return result
}

// VisitConstant implements parser.Visitor.
func (i *interpreter) VisitConstant(expr *parser.ExprConstant) any {
	value := expr.Name.Value
	i.trace.Constant(expr.Name.Name, value)
	return value
}

// VisitGrouping implements parser.Visitor.
func (i *interpreter) VisitGrouping(expr *parser.ExprGrouping) any {
	if v, err := i.evaluate(expr.Expression); err == nil {
		return v
	}
	return nil
}

// VisitNumber implements parser.Visitor.
func (i *interpreter) VisitNumber(expr *parser.ExprNumber) any {
	return expr.Literal.Value
}

// VisitUnary implements parser.Visitor.
func (i *interpreter) VisitUnary(expr *parser.ExprUnary) any {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil
	}

	switch expr.Operator.Text {
	case "-":
		result := -right
		i.trace.Negate(right, result)
		return result
	case "+":
		return right
	}

	return i.reportError(expr.Operator, calcerrors.ErrEvalUnknownOperator)
}

func (i *interpreter) evaluate(expr parser.Expr) (float64, error) {
	if i.hasErr() {
		return 0, i.err
	}

	value := expr.Accept(i)
	if i.hasErr() {
		return 0, i.err
	}

	v, ok := value.(float64)
	if !ok {
		return i.unreachable(), nil
	}
	return v, nil
}

func (i *interpreter) unreachable() float64 {
	panic("unreachable")
}

func (i *interpreter) hasErr() bool {
	return i.err != nil
}

func (i *interpreter) reportError(tok *token.Token, cause error) any {
	i.err = calcerrors.NewEvalError(tok, cause)
	return nil
}

func (i *interpreter) reset() {
	i.err = nil
	i.trace = newTracer(i.opts.trace)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

var _ parser.Visitor = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
