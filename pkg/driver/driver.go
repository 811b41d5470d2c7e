// Package driver chains the lexer, parser and semantic analyzer into one
// compilation pipeline and exposes the aggregate result.
package driver

import (
	"fmt"

	"mexc/pkg/ast"
	"mexc/pkg/diag"
	"mexc/pkg/lexer"
	"mexc/pkg/parser"
	"mexc/pkg/sema"
	"mexc/pkg/token"
)

// Options holds the pipeline knobs.
type Options struct {
	// Fold enables constant folding between parsing and analysis.
	Fold bool
}

// Result is the aggregate output of one compilation. Tokens is always
// populated. Symbols and Annotated are nil when semantic analysis never
// ran, which happens exactly when the parser produced zero statements.
// Errors holds all phases' errors in phase order: lexical, then syntax,
// then semantic.
type Result struct {
	Tokens    []token.Token
	AST       []*ast.Node
	Symbols   sema.SymbolTable
	Annotated []*ast.Node
	Errors    []diag.Error
}

// Compile runs the full pipeline over one source text. It is a pure
// function of its input: no I/O, no shared state across invocations.
func Compile(source string, opts Options) Result {
	tokens := lexer.Scan(source)

	// The lexer reports nothing itself; lexical errors are materialized
	// from the Error tokens left inline in the stream.
	var errors []diag.Error
	for _, tok := range tokens {
		if tok.Type == token.Error {
			errors = append(errors, diag.Error{
				Phase:   diag.Lexical,
				Message: fmt.Sprintf("Unexpected character: '%s'", tok.Lexeme),
				Pos:     tok.Pos,
			})
		}
	}

	stmts, syntaxErrors := parser.Parse(tokens)
	errors = append(errors, syntaxErrors...)

	if opts.Fold {
		for i, stmt := range stmts {
			stmts[i] = ast.Fold(stmt)
		}
	}

	result := Result{Tokens: tokens, AST: stmts, Errors: errors}
	if len(stmts) > 0 {
		analyzed := sema.Analyze(stmts)
		result.Symbols = analyzed.Symbols
		result.Annotated = analyzed.Annotated
		result.Errors = append(result.Errors, analyzed.Errors...)
	}
	return result
}
