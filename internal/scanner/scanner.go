package scanner

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/mathexpr/internal/calcerrors"
	"github.com/leonardinius/mathexpr/internal/token"
)

// Scanner converts source text into tokens.
type Scanner interface {
	Scan() ([]token.Token, error)
}

var reservedFunctions = map[string]struct{}{
	"sin":  {},
	"cos":  {},
	"tan":  {},
	"asin": {},
	"acos": {},
	"atan": {},
	"sqrt": {},
	"abs":  {},
	"log":  {},
	"ln":   {},
}

var reservedConstants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

const piGlyph = 'π'

// FunctionNames returns the recognised function names in sorted order.
func FunctionNames() []string {
	names := maps.Keys(reservedFunctions)
	slices.Sort(names)
	return names
}

// ConstantNames returns the recognised constant names in sorted order.
func ConstantNames() []string {
	names := maps.Keys(reservedConstants)
	slices.Sort(names)
	return names
}

type scanner struct {
	source         []rune
	tokens         []token.Token
	start, current int
	err            error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0}
}

// Scan implements Scanner.
//
// The returned slice holds no end-of-input marker; an empty or all-whitespace
// input yields an empty slice.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	if s.hasErr() {
		return nil, s.err
	}

	return s.tokens, nil
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '+', '-', '*', '/', '^':
		s.addToken(token.Operator)
	case ' ', '\r', '\t', '\n', '\v', '\f':
		// Ignore whitespace.
	case piGlyph:
		s.tokens = append(s.tokens, token.NewConstantToken(s.lexeme(), "pi", reservedConstants["pi"], s.column()))
	default:
		if s.isNumeric(c) {
			s.number()
		} else if s.isAlpha(c) {
			s.identifier()
		} else {
			s.reportUnexpectedCharacter(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

// column is the 1-based rune column of the current lexeme.
func (s *scanner) column() int {
	return s.start + 1
}

func (s *scanner) addToken(kind token.Kind) {
	s.tokens = append(s.tokens, token.NewToken(kind, s.lexeme(), s.column()))
}

// number consumes a run of digits and dots. The run is validated as a whole by
// strconv, so "1.2.3" and "." are rejected here rather than split.
func (s *scanner) number() {
	for s.isNumeric(s.peek()) {
		s.advance()
	}

	text := s.lexeme()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.reportError(calcerrors.ErrLexInvalidNumber, text)
		return
	}
	s.tokens = append(s.tokens, token.NewNumberToken(text, value, s.column()))
}

func (s *scanner) identifier() {
	for s.isAlpha(s.peek()) {
		s.advance()
	}

	text := s.lexeme()
	name := strings.ToLower(text)
	if _, ok := reservedFunctions[name]; ok {
		s.tokens = append(s.tokens, token.NewFunctionToken(text, name, s.column()))
		return
	}
	if value, ok := reservedConstants[name]; ok {
		s.tokens = append(s.tokens, token.NewConstantToken(text, name, value, s.column()))
		return
	}

	s.reportError(calcerrors.ErrLexUnknownIdentifier, text)
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isNumeric(c rune) bool {
	return s.isDigit(c) || c == '.'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.reportError(calcerrors.ErrLexUnexpectedCharacter, string(c))
}

func (s *scanner) reportError(err error, details string) {
	s.err = calcerrors.NewLexError(s.column(), err, details)
}

var _ Scanner = (*scanner)(nil)
