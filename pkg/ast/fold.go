package ast

import (
	"math"

	"mexc/pkg/token"
)

// Fold performs compile-time constant evaluation on the AST. Operator
// applications whose operands are literals collapse into a single literal
// carrying the result type the analyzer would infer: '/' always yields
// Float, every other operator yields Float if either operand is Float.
// Division by zero is left unfolded so the tree still reflects the source.
func Fold(node *Node) *Node {
	if node == nil {
		return nil
	}

	switch d := node.Data.(type) {
	case AssignNode:
		d.Value = Fold(d.Value)
		node.Data = d
	case BinaryOpNode:
		d.Left = Fold(d.Left)
		d.Right = Fold(d.Right)
		node.Data = d
	case UnaryOpNode:
		d.Expr = Fold(d.Expr)
		node.Data = d
	}

	switch node.Type {
	case BinaryOp:
		d := node.Data.(BinaryOpNode)
		if d.Left.Type == Literal && d.Right.Type == Literal {
			l := d.Left.Data.(LiteralNode)
			r := d.Right.Data.(LiteralNode)
			var res float64
			folded := true
			switch d.Op {
			case token.Plus:
				res = l.Value + r.Value
			case token.Minus:
				res = l.Value - r.Value
			case token.Star:
				res = l.Value * r.Value
			case token.Caret:
				res = math.Pow(l.Value, r.Value)
			case token.Slash:
				if r.Value == 0 {
					folded = false
				} else {
					res = l.Value / r.Value
				}
			default:
				folded = false
			}
			if folded {
				return NewLiteral(node.Tok, res, foldedType(d.Op, l.DataType, r.DataType))
			}
		}
	case UnaryOp:
		d := node.Data.(UnaryOpNode)
		if d.Expr.Type == Literal {
			operand := d.Expr.Data.(LiteralNode)
			switch d.Op {
			case token.Minus:
				return NewLiteral(node.Tok, -operand.Value, operand.DataType)
			case token.Plus:
				return NewLiteral(node.Tok, operand.Value, operand.DataType)
			}
		}
	}

	return node
}

func foldedType(op token.Type, left, right Type) Type {
	if op == token.Slash || left == Float || right == Float {
		return Float
	}
	return Integer
}
