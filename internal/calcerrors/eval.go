package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/mathexpr/internal/token"
)

var (
	ErrEvalDivisionByZero  = errors.New("division by zero")
	ErrEvalNegativeSqrt    = errors.New("cannot take sqrt of negative number")
	ErrEvalOutOfDomain     = errors.New("argument out of domain")
	ErrEvalResultNotFinite = errors.New("result is not finite")
	ErrEvalUnknownFunction = errors.New("unknown function")
	ErrEvalUnknownOperator = errors.New("unknown operator")
)

func NewEvalError(tok *token.Token, cause error) *EvalError {
	return &EvalError{tok, cause}
}

type EvalError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (e *EvalError) Error() string {
	return fmt.Sprintf("[col %d] eval error at '%s': %v", e.tok.Pos, e.tok.Text, e.cause)
}

func (e *EvalError) Message() string {
	return e.cause.Error()
}

func (e *EvalError) Pos() int {
	return e.tok.Pos
}

func (e *EvalError) Kind() Kind {
	return KindEval
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

var _ error = (*EvalError)(nil)
var _ unwrapInterface = (*EvalError)(nil)
