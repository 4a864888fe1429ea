package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/leonardinius/mathexpr/internal/calcerrors"
	"github.com/leonardinius/mathexpr/internal/token"
)

var nilExpr Expr = nil

type Parser interface {
	Parse() (Expr, error)
}

// parser is a recursive-descent parser. Grammar, lowest binding first:
//
//	expression = addsub
//	addsub     = muldiv { ("+" | "-") muldiv }
//	muldiv     = unary { ("*" | "/") unary }
//	unary      = ("+" | "-") unary | power
//	power      = primary [ "^" power ]
//	primary    = number | constant | function "(" expression ")" | "(" expression ")"
//
// Prefix operators sit below "^", so -2^2 is -(2^2).
type parser struct {
	tokens   []token.Token
	current  int
	depth    int
	maxDepth int
	endPos   int
	err      error
}

func NewParser(tokens []token.Token, options ...Option) Parser {
	opts := newParserOpts(options...)

	endPos := 1
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		endPos = last.Pos + utf8.RuneCountInString(last.Text)
	}

	return &parser{
		tokens:   tokens,
		current:  0,
		maxDepth: opts.maxDepth,
		endPos:   endPos,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (Expr, error) {
	if len(p.tokens) == 0 {
		return nilExpr, calcerrors.NewParseError(nil, p.endPos, calcerrors.ErrParseEmptyExpression)
	}

	expr := p.expression()
	if p.err == nil && !p.isAtEnd() {
		p.reportExprError(calcerrors.ErrParseTrailingTokens)
	}

	if p.err != nil {
		// if we are at error state, we do not return invalid ast tree
		return nilExpr, p.err
	}

	return expr, nil
}

func (p *parser) expression() Expr {
	return p.nested(p.addsub)
}

func (p *parser) addsub() Expr {
	expr := p.muldiv()

	for p.matchOperator("+", "-") {
		operator := p.previous()
		right := p.muldiv()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) muldiv() Expr {
	expr := p.unary()

	for p.matchOperator("*", "/") {
		operator := p.previous()
		right := p.unary()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.matchOperator("+", "-") {
		operator := p.previous()
		right := p.nested(p.unary)
		return &ExprUnary{
			Operator: operator,
			Right:    right,
		}
	}

	return p.power()
}

func (p *parser) power() Expr {
	expr := p.primary()

	// Right operand recurses into power itself, which makes ^ right-associative.
	if p.matchOperator("^") {
		operator := p.previous()
		right := p.nested(p.power)
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) primary() Expr {
	if p.isDone() {
		return p.reportExprError(calcerrors.ErrParseUnexpectedEnd)
	}

	if p.match(token.Number) {
		return &ExprNumber{Literal: p.previous()}
	}

	if p.match(token.Constant) {
		return &ExprConstant{Name: p.previous()}
	}

	if p.match(token.Function) {
		return p.call()
	}

	return p.grouping()
}

func (p *parser) call() Expr {
	callee := p.previous()
	if !p.match(token.LeftParen) {
		return p.reportExprError(calcerrors.ErrParseExpectedLeftParenError(callee.Name))
	}

	argument := p.expression()
	if !p.match(token.RightParen) {
		return p.reportExprError(calcerrors.ErrParseExpectedRightParenToken)
	}

	return &ExprCall{Callee: callee, Argument: argument}
}

func (p *parser) grouping() Expr {
	if p.match(token.LeftParen) {
		expr := p.expression()
		if !p.match(token.RightParen) {
			return p.reportExprError(calcerrors.ErrParseExpectedRightParenToken)
		}
		return &ExprGrouping{Expression: expr}
	}

	return p.reportExprError(calcerrors.ErrParseUnexpectedToken)
}

// nested runs production one level deeper, failing once maxDepth is reached.
func (p *parser) nested(production func() Expr) Expr {
	if p.depth >= p.maxDepth {
		return p.reportExprError(calcerrors.ErrParseTooDeeplyNested)
	}

	p.depth++
	defer func() { p.depth-- }()

	return production()
}

func (p *parser) matchOperator(operators ...string) bool {
	if !p.check(token.Operator) {
		return false
	}

	for _, op := range operators {
		if p.peek().Text == op {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(kind token.Kind) bool {
	return !p.isDone() && p.peek().Kind == kind
}

// peek returns nil at end of input.
func (p *parser) peek() *token.Token {
	if p.isAtEnd() {
		return nil
	}
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// Be carefull with isAtEnd, it does not check for parse errors.
// Use isDone instead.
func (p *parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportExprError(err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	p.err = calcerrors.NewParseError(p.peek(), p.endPos, err)
	return nilExpr
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
