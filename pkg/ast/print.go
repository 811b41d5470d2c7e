package ast

import (
	"strconv"
	"strings"

	"mexc/pkg/token"
)

// ExprString renders a node back to source text. Binary operations are
// fully parenthesized so that re-scanning and re-parsing the output yields
// a structurally identical tree.
func ExprString(n *Node) string {
	if n == nil {
		return ""
	}
	switch d := n.Data.(type) {
	case LiteralNode:
		return formatLiteral(d)
	case IdentNode:
		return d.Name
	case UnaryOpNode:
		return opString(d.Op) + ExprString(d.Expr)
	case BinaryOpNode:
		return "(" + ExprString(d.Left) + " " + opString(d.Op) + " " + ExprString(d.Right) + ")"
	case AssignNode:
		return d.Name + " = " + ExprString(d.Value)
	}
	return ""
}

// ProgramString renders a statement sequence, one statement per line.
func ProgramString(stmts []*Node) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = ExprString(s)
	}
	return strings.Join(parts, "\n")
}

func formatLiteral(d LiteralNode) string {
	if d.DataType == Integer {
		return strconv.FormatInt(int64(d.Value), 10)
	}
	s := strconv.FormatFloat(d.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func opString(op token.Type) string {
	switch op {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	case token.Caret:
		return "^"
	}
	return "?"
}
