package calcerrors_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leonardinius/mathexpr/internal/calcerrors"
	"github.com/leonardinius/mathexpr/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	plus := token.NewTokenHeap(token.Operator, "+", 3)
	slash := token.NewTokenHeap(token.Operator, "/", 7)

	testcases := []struct {
		name    string
		err     calcerrors.InputError
		msg     string
		kind    calcerrors.Kind
		pos     int
		cause   error
		message string
	}{
		{
			name:    "lex with details",
			err:     calcerrors.NewLexError(4, calcerrors.ErrLexUnknownIdentifier, "foo"),
			msg:     "[col 4] lex error: unknown identifier: foo",
			kind:    calcerrors.KindLex,
			pos:     4,
			cause:   calcerrors.ErrLexUnknownIdentifier,
			message: "unknown identifier: foo",
		},
		{
			name:    "lex without details",
			err:     calcerrors.NewLexError(1, calcerrors.ErrLexInvalidNumber, ""),
			msg:     "[col 1] lex error: invalid number",
			kind:    calcerrors.KindLex,
			pos:     1,
			cause:   calcerrors.ErrLexInvalidNumber,
			message: "invalid number",
		},
		{
			name:    "parse at token",
			err:     calcerrors.NewParseError(plus, 99, calcerrors.ErrParseTrailingTokens),
			msg:     "[col 3] parse error at '+': unexpected tokens after expression",
			kind:    calcerrors.KindParse,
			pos:     3,
			cause:   calcerrors.ErrParseTrailingTokens,
			message: "unexpected tokens after expression",
		},
		{
			name:    "parse at end",
			err:     calcerrors.NewParseError(nil, 5, calcerrors.ErrParseUnexpectedEnd),
			msg:     "[col 5] parse error at end: unexpected end of expression",
			kind:    calcerrors.KindParse,
			pos:     5,
			cause:   calcerrors.ErrParseUnexpectedEnd,
			message: "unexpected end of expression",
		},
		{
			name:    "parse expected left paren",
			err:     calcerrors.NewParseError(nil, 4, calcerrors.ErrParseExpectedLeftParenError("sin")),
			msg:     "[col 4] parse error at end: expected '(' after sin",
			kind:    calcerrors.KindParse,
			pos:     4,
			message: "expected '(' after sin",
		},
		{
			name:    "eval",
			err:     calcerrors.NewEvalError(slash, calcerrors.ErrEvalDivisionByZero),
			msg:     "[col 7] eval error at '/': division by zero",
			kind:    calcerrors.KindEval,
			pos:     7,
			cause:   calcerrors.ErrEvalDivisionByZero,
			message: "division by zero",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.msg)
			assert.Equal(t, tc.kind, tc.err.Kind())
			assert.Equal(t, tc.pos, tc.err.Pos())
			if tc.cause != nil {
				assert.True(t, errors.Is(tc.err, tc.cause))
			}
			messager, ok := tc.err.(interface{ Message() string })
			if assert.True(t, ok) {
				assert.Equal(t, tc.message, messager.Message())
			}
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "LexError", calcerrors.KindLex.String())
	assert.Equal(t, "ParseError", calcerrors.KindParse.String())
	assert.Equal(t, "EvalError", calcerrors.KindEval.String())
	assert.Equal(t, "UnknownError", calcerrors.Kind(0).String())
}

func TestReporter(t *testing.T) {
	out := new(strings.Builder)
	r := calcerrors.NewErrReporter(out)

	r.ReportError(calcerrors.ErrEvalNegativeSqrt)
	r.ReportPanic(errors.New("boom"))

	assert.Equal(t, "ERROR cannot take sqrt of negative number\nFATAL boom\n", out.String())
}
