package parser

import (
	"strings"

	"github.com/leonardinius/mathexpr/internal/numfmt"
)

// AstPrinter renders a tree in parenthesized prefix form, e.g. "(* (group (+ 1 2)) 3)".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinary implements Visitor.
func (p *AstPrinter) VisitBinary(expr *ExprBinary) any {
	return p.parenthesize(expr.Operator.Text, expr.Left, expr.Right)
}

// VisitCall implements Visitor.
func (p *AstPrinter) VisitCall(expr *ExprCall) any {
	return p.parenthesize(expr.Callee.Name, expr.Argument)
}

// VisitConstant implements Visitor.
func (p *AstPrinter) VisitConstant(expr *ExprConstant) any {
	return expr.Name.Name
}

// VisitGrouping implements Visitor.
func (p *AstPrinter) VisitGrouping(expr *ExprGrouping) any {
	return p.parenthesize("group", expr.Expression)
}

// VisitNumber implements Visitor.
func (p *AstPrinter) VisitNumber(expr *ExprNumber) any {
	return numfmt.Format(expr.Literal.Value)
}

// VisitUnary implements Visitor.
func (p *AstPrinter) VisitUnary(expr *ExprUnary) any {
	return p.parenthesize(expr.Operator.Text, expr.Right)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.asStr(expr.Accept(p)))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.asStr(expr.Accept(p))
}

func (p *AstPrinter) asStr(v any) string {
	if v == nil {
		return "<nil>"
	}

	return v.(string)
}

var _ Visitor = (*AstPrinter)(nil)
