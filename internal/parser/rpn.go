package parser

import (
	"fmt"
	"strings"

	"github.com/leonardinius/mathexpr/internal/numfmt"
)

// RPNPrinter renders a tree in reverse Polish notation. Unary minus is
// written as "~" to keep it apart from subtraction.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *ExprBinary) any {
	return p.reverse(expr.Operator.Text, expr.Left, expr.Right)
}

// VisitCall implements Visitor.
func (p *RPNPrinter) VisitCall(expr *ExprCall) any {
	return p.reverse(expr.Callee.Name, expr.Argument)
}

// VisitConstant implements Visitor.
func (p *RPNPrinter) VisitConstant(expr *ExprConstant) any {
	return expr.Name.Name
}

// VisitGrouping implements Visitor.
func (p *RPNPrinter) VisitGrouping(expr *ExprGrouping) any {
	return p.reverse("", expr.Expression)
}

// VisitNumber implements Visitor.
func (p *RPNPrinter) VisitNumber(expr *ExprNumber) any {
	return numfmt.Format(expr.Literal.Value)
}

// VisitUnary implements Visitor.
func (p *RPNPrinter) VisitUnary(expr *ExprUnary) any {
	operator := expr.Operator.Text
	if operator == "-" {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(fmt.Sprintf("%v", expr.Accept(p)))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	return fmt.Sprintf("%v", expr.Accept(p))
}

var _ Visitor = (*RPNPrinter)(nil)
