package kaleido

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders syntax trees as s-expressions.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) PrintPrototype(proto *Prototype) string {
	return fmt.Sprintf("(extern %s (%s))", proto.Name, strings.Join(proto.Params, " "))
}

func (printer *AstPrinter) PrintFunction(fn *Function) string {
	return fmt.Sprintf(
		"(def %s (%s) %s)",
		fn.Proto.Name,
		strings.Join(fn.Proto.Params, " "),
		printer.Print(fn.Body),
	)
}

func (printer *AstPrinter) VisitNumberExpr(expr *NumberExpr) (interface{}, error) {
	return strconv.FormatFloat(expr.Val, 'f', -1, 64), nil
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name, nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, _ := expr.Lhs.Accept(printer)
	rhs, _ := expr.Rhs.Accept(printer)
	return fmt.Sprintf("(%c %s %s)", expr.Op, lhs, rhs), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	var sb strings.Builder
	sb.WriteString("(call ")
	sb.WriteString(expr.Callee)
	for _, arg := range expr.Args {
		s, _ := arg.Accept(printer)
		sb.WriteString(" ")
		sb.WriteString(s.(string))
	}
	sb.WriteString(")")
	return sb.String(), nil
}
