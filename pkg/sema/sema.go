// Package sema resolves expression types and builds the symbol table.
package sema

import (
	"fmt"

	"mexc/pkg/ast"
	"mexc/pkg/diag"
	"mexc/pkg/token"
)

// SymbolEntry records a variable's most recent assignment.
type SymbolEntry struct {
	Name      string
	Type      ast.Type
	DefinedAt token.Position
}

// SymbolTable maps a variable name to its most recent entry. Reassignment
// overwrites the prior entry entirely; the tracked type may change.
type SymbolTable map[string]SymbolEntry

// Result is the output of Analyze. Annotated is a rebuilt tree: the input
// nodes are never touched, so analysis is safe to re-run and shared
// subtrees cannot alias.
type Result struct {
	Symbols   SymbolTable
	Annotated []*ast.Node
	Errors    []diag.Error
}

type analyzer struct {
	symbols SymbolTable
	errors  []diag.Error
}

// Analyze walks the statement sequence top to bottom, assigning a result
// type to every expression node and recording assignments in the symbol
// table. Statements are resolved in order: a variable assigned in
// statement N is visible to statement N+1 but never earlier. Undefined
// variables produce one error per occurrence and analysis continues.
func Analyze(stmts []*ast.Node) Result {
	a := &analyzer{symbols: make(SymbolTable)}
	annotated := make([]*ast.Node, 0, len(stmts))
	for _, stmt := range stmts {
		annotated = append(annotated, a.resolve(stmt))
	}
	return Result{Symbols: a.symbols, Annotated: annotated, Errors: a.errors}
}

func (a *analyzer) resolve(node *ast.Node) *ast.Node {
	if node == nil {
		return nil
	}
	switch d := node.Data.(type) {
	case ast.LiteralNode:
		return a.rebuild(node, d, d.DataType)
	case ast.IdentNode:
		entry, ok := a.symbols[d.Name]
		if !ok {
			a.errors = append(a.errors, diag.Error{
				Phase:        diag.Semantic,
				Message:      fmt.Sprintf("Undefined variable '%s'", d.Name),
				Pos:          node.Pos(),
				VariableName: d.Name,
			})
			return a.rebuild(node, d, ast.Untyped)
		}
		return a.rebuild(node, d, entry.Type)
	case ast.UnaryOpNode:
		operand := a.resolve(d.Expr)
		// Type-preserving; an unresolved operand propagates silently, the
		// error was already recorded at the leaf.
		return a.rebuild(node, ast.UnaryOpNode{Op: d.Op, Expr: operand}, operand.Typ)
	case ast.BinaryOpNode:
		left := a.resolve(d.Left)
		right := a.resolve(d.Right)
		typ := ast.Untyped
		if left.Typ != ast.Untyped && right.Typ != ast.Untyped {
			typ = resultType(d.Op, left.Typ, right.Typ)
		}
		return a.rebuild(node, ast.BinaryOpNode{Op: d.Op, Left: left, Right: right}, typ)
	case ast.AssignNode:
		value := a.resolve(d.Value)
		if value.Typ != ast.Untyped {
			a.symbols[d.Name] = SymbolEntry{Name: d.Name, Type: value.Typ, DefinedAt: node.Pos()}
		}
		// No entry is written when the value has no type: assigning from
		// an undefined variable leaves the target undefined too.
		return a.rebuild(node, ast.AssignNode{Name: d.Name, Value: value}, value.Typ)
	}
	return node
}

func (a *analyzer) rebuild(node *ast.Node, data interface{}, typ ast.Type) *ast.Node {
	return &ast.Node{Type: node.Type, Tok: node.Tok, Data: data, Typ: typ}
}

// resultType applies the promotion rules: division is unconditionally
// Float; every other operator promotes to Float if either side is Float.
func resultType(op token.Type, left, right ast.Type) ast.Type {
	if op == token.Slash {
		return ast.Float
	}
	if left == ast.Float || right == ast.Float {
		return ast.Float
	}
	return ast.Integer
}
