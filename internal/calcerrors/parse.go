package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/mathexpr/internal/token"
)

var (
	ErrParseEmptyExpression         = errors.New("empty expression")
	ErrParseUnexpectedToken         = errors.New("unexpected token")
	ErrParseUnexpectedEnd           = errors.New("unexpected end of expression")
	ErrParseTrailingTokens          = errors.New("unexpected tokens after expression")
	ErrParseExpectedRightParenToken = errors.New("expected ')' after expression")
	ErrParseTooDeeplyNested         = errors.New("expression too deeply nested")
)

func ErrParseExpectedLeftParenError(fn string) error {
	return fmt.Errorf("expected '(' after %s", fn)
}

// NewParseError creates an error positioned at tok. A nil tok means the error
// was raised at end of input, col is then used as the position.
func NewParseError(tok *token.Token, col int, cause error) *ParseError {
	if tok != nil {
		col = tok.Pos
	}
	return &ParseError{tok: tok, col: col, cause: cause}
}

type ParseError struct {
	tok   *token.Token
	col   int
	cause error
}

// Error implements error.
func (p *ParseError) Error() string {
	where := "at end"
	if p.tok != nil {
		where = fmt.Sprintf("at '%s'", p.tok.Text)
	}
	return fmt.Sprintf("[col %d] parse error %s: %v", p.col, where, p.cause)
}

func (p *ParseError) Message() string {
	return p.cause.Error()
}

func (p *ParseError) Pos() int {
	return p.col
}

func (p *ParseError) Kind() Kind {
	return KindParse
}

func (p *ParseError) Unwrap() error {
	return p.cause
}

var _ error = (*ParseError)(nil)
var _ unwrapInterface = (*ParseError)(nil)
