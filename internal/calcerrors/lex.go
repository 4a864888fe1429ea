package calcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrLexUnexpectedCharacter = errors.New("unexpected character")
	ErrLexUnknownIdentifier   = errors.New("unknown identifier")
	ErrLexInvalidNumber       = errors.New("invalid number")
)

type LexError struct {
	col     int
	cause   error
	details string
}

func NewLexError(col int, cause error, details string) *LexError {
	return &LexError{col, cause, details}
}

// Error implements error.
func (l *LexError) Error() string {
	return fmt.Sprintf("[col %d] lex error: %s", l.col, l.Message())
}

// Message returns the bare message, without position.
func (l *LexError) Message() string {
	if l.details == "" {
		return l.cause.Error()
	}
	return fmt.Sprintf("%v: %s", l.cause, l.details)
}

func (l *LexError) Pos() int {
	return l.col
}

func (l *LexError) Kind() Kind {
	return KindLex
}

func (l *LexError) Unwrap() error {
	return l.cause
}

var _ error = (*LexError)(nil)
var _ unwrapInterface = (*LexError)(nil)
