package parser

import (
	"fmt"

	"mexc/pkg/ast"
	"mexc/pkg/diag"
	"mexc/pkg/token"
)

// Parser holds the state for the parsing process. The cursor only ever
// moves forward; statement disambiguation needs two tokens of lookahead
// (current plus peek) and nothing more.
type Parser struct {
	tokens   []token.Token
	pos      int
	current  token.Token
	previous token.Token
}

// New creates and initializes a new Parser from a token stream. The stream
// is expected to end with an EOF token, as produced by lexer.Scan.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	if len(tokens) > 0 {
		p.current = p.tokens[0]
	} else {
		p.current = token.Token{Type: token.EOF, Pos: token.Position{Line: 1, Column: 1}}
	}
	return p
}

// Parse consumes a token stream and produces the statement sequence plus
// any syntax errors. Parsing stops at the first syntax error, so the error
// slice never holds more than one entry; the statements parsed before the
// failure are still returned.
func Parse(tokens []token.Token) ([]*ast.Node, []diag.Error) {
	return New(tokens).Parse()
}

func (p *Parser) Parse() ([]*ast.Node, []diag.Error) {
	var stmts []*ast.Node
	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return stmts, []diag.Error{err.(diag.Error)}
		}
		stmts = append(stmts, stmt)

		// Newlines are whitespace to the lexer, so statement boundaries
		// are recovered here: whatever follows a statement must either be
		// the end of input or start a new assignment.
		if !p.check(token.EOF) && !p.startsAssignment() {
			return stmts, []diag.Error{p.syntaxError("statement",
				"Unexpected %s after expression.", p.current.Type)}
		}
	}
	return stmts, nil
}

// Parser helpers

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.previous = p.current
		p.pos++
		if p.pos < len(p.tokens) {
			p.current = p.tokens[p.pos]
		}
	}
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) check(tokType token.Type) bool {
	return p.current.Type == tokType
}

func (p *Parser) match(tokType token.Type) bool {
	if !p.check(tokType) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) expect(tokType token.Type, expected, message string) error {
	if p.check(tokType) {
		p.advance()
		return nil
	}
	return p.syntaxError(expected, "%s", message)
}

// startsAssignment reports whether the current position begins an
// assignment statement. The check is non-consuming.
func (p *Parser) startsAssignment() bool {
	return p.check(token.Ident) && p.peek().Type == token.Eq
}

func (p *Parser) syntaxError(expected, format string, args ...interface{}) diag.Error {
	return diag.Error{
		Phase:    diag.Syntax,
		Message:  fmt.Sprintf(format, args...),
		Pos:      p.current.Pos,
		Expected: expected,
		Actual:   p.current.Type.String(),
	}
}

// Statement Parsing

func (p *Parser) parseStatement() (*ast.Node, error) {
	if p.startsAssignment() {
		identTok := p.current
		p.advance() // identifier
		p.advance() // '='
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewAssign(identTok, identTok.Lexeme, value), nil
	}
	return p.parseExpr()
}

// Expression Parsing. One function per precedence level, each calling the
// next tighter-binding level for its operands.

func (p *Parser) parseExpr() (*ast.Node, error) {
	return p.parseAdditiveExpr()
}

func (p *Parser) parseAdditiveExpr() (*ast.Node, error) {
	left, err := p.parseMultiplicativeExpr()
	if err != nil {
		return nil, err
	}
	for p.check(token.Plus) || p.check(token.Minus) {
		opTok := p.current
		p.advance()
		right, err := p.parseMultiplicativeExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(opTok, opTok.Type, left, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicativeExpr() (*ast.Node, error) {
	left, err := p.parsePowerExpr()
	if err != nil {
		return nil, err
	}
	for p.check(token.Star) || p.check(token.Slash) {
		opTok := p.current
		p.advance()
		right, err := p.parsePowerExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(opTok, opTok.Type, left, right)
	}
	return left, nil
}

// parsePowerExpr handles '^', which is right-associative: the right
// operand recurses into this level, not the next one down.
func (p *Parser) parsePowerExpr() (*ast.Node, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	if p.check(token.Caret) {
		opTok := p.current
		p.advance()
		right, err := p.parsePowerExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(opTok, opTok.Type, left, right), nil
	}
	return left, nil
}

func (p *Parser) parseUnaryExpr() (*ast.Node, error) {
	if p.check(token.Minus) || p.check(token.Plus) {
		opTok := p.current
		p.advance()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(opTok, opTok.Type, operand), nil
	}
	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() (*ast.Node, error) {
	tok := p.current
	switch {
	case p.match(token.Integer):
		return ast.NewLiteral(tok, tok.Literal, ast.Integer), nil
	case p.match(token.Float):
		return ast.NewLiteral(tok, tok.Literal, ast.Float), nil
	case p.match(token.Ident):
		return ast.NewIdent(tok, tok.Lexeme), nil
	case p.match(token.LParen):
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RParen, "')'", "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.syntaxError("expression", "Expected an expression, found %s.", tok.Type)
}
