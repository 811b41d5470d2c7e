// Package ast defines the types used to represent the Abstract Syntax Tree (AST)
package ast

import (
	"mexc/pkg/token"
)

// NodeType defines the kind of a node in the AST
type NodeType int

const (
	Literal NodeType = iota
	Ident
	UnaryOp
	BinaryOp
	Assign
)

// Type is the result type of an expression. Untyped marks a node the
// semantic analyzer has not resolved (or could not resolve).
type Type int

const (
	Untyped Type = iota
	Integer
	Float
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	default:
		return "Untyped"
	}
}

// Node represents a node in the Abstract Syntax Tree. Tok is the token the
// node was built from: the operator token for UnaryOp/BinaryOp, the literal
// or identifier token otherwise. Typ is set by the semantic analyzer; the
// parser leaves it Untyped.
type Node struct {
	Type NodeType
	Tok  token.Token
	Data interface{}
	Typ  Type
}

func (n *Node) Pos() token.Position { return n.Tok.Pos }

// --- Node Data Structs ---

type LiteralNode struct {
	Value    float64
	DataType Type // Integer or Float, decided lexically
}
type IdentNode struct{ Name string }
type UnaryOpNode struct {
	Op   token.Type
	Expr *Node
}
type BinaryOpNode struct {
	Op          token.Type
	Left, Right *Node
}
type AssignNode struct {
	Name  string
	Value *Node
}

// --- Node Constructors ---

func NewLiteral(tok token.Token, value float64, dataType Type) *Node {
	return &Node{Type: Literal, Tok: tok, Data: LiteralNode{Value: value, DataType: dataType}}
}

func NewIdent(tok token.Token, name string) *Node {
	return &Node{Type: Ident, Tok: tok, Data: IdentNode{Name: name}}
}

func NewUnaryOp(tok token.Token, op token.Type, expr *Node) *Node {
	return &Node{Type: UnaryOp, Tok: tok, Data: UnaryOpNode{Op: op, Expr: expr}}
}

func NewBinaryOp(tok token.Token, op token.Type, left, right *Node) *Node {
	return &Node{Type: BinaryOp, Tok: tok, Data: BinaryOpNode{Op: op, Left: left, Right: right}}
}

func NewAssign(tok token.Token, name string, value *Node) *Node {
	return &Node{Type: Assign, Tok: tok, Data: AssignNode{Name: name, Value: value}}
}
