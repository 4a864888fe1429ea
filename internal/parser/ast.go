package parser

import "github.com/leonardinius/mathexpr/internal/token"

// Visitor is the interface that wraps the Visit methods.
//
// Visit is called for every node in the tree.
type Visitor interface {
	VisitBinary(expr *ExprBinary) any
	VisitCall(expr *ExprCall) any
	VisitConstant(expr *ExprConstant) any
	VisitGrouping(expr *ExprGrouping) any
	VisitNumber(expr *ExprNumber) any
	VisitUnary(expr *ExprUnary) any
}

// Expr is a node of the short-lived expression tree. Trees are built per
// evaluation and never shared.
type Expr interface {
	Accept(v Visitor) any
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

var _ Expr = (*ExprBinary)(nil)

func (e *ExprBinary) Accept(v Visitor) any {
	return v.VisitBinary(e)
}

type ExprCall struct {
	Callee   *token.Token
	Argument Expr
}

var _ Expr = (*ExprCall)(nil)

func (e *ExprCall) Accept(v Visitor) any {
	return v.VisitCall(e)
}

type ExprConstant struct {
	Name *token.Token
}

var _ Expr = (*ExprConstant)(nil)

func (e *ExprConstant) Accept(v Visitor) any {
	return v.VisitConstant(e)
}

type ExprGrouping struct {
	Expression Expr
}

var _ Expr = (*ExprGrouping)(nil)

func (e *ExprGrouping) Accept(v Visitor) any {
	return v.VisitGrouping(e)
}

type ExprNumber struct {
	Literal *token.Token
}

var _ Expr = (*ExprNumber)(nil)

func (e *ExprNumber) Accept(v Visitor) any {
	return v.VisitNumber(e)
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

var _ Expr = (*ExprUnary)(nil)

func (e *ExprUnary) Accept(v Visitor) any {
	return v.VisitUnary(e)
}
