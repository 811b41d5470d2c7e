package lexer

import (
	"strconv"
	"unicode"

	"mexc/pkg/token"
)

// Lexer converts source text into tokens. It never fails: characters that
// match no rule come out as token.Error tokens and scanning continues with
// the next character.
type Lexer struct {
	source []rune
	pos    int
	line   int
	column int
}

func New(source string) *Lexer {
	return &Lexer{source: []rune(source), line: 1, column: 1}
}

// Scan tokenizes the whole input. The returned slice always ends with
// exactly one EOF token, even for the empty string.
func Scan(source string) []token.Token {
	l := New(source)
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// Next returns the next token. Once the input is exhausted it returns EOF
// tokens forever.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()
	startPos, startLine, startCol := l.pos, l.line, l.column

	if l.isAtEnd() {
		return l.makeToken(token.EOF, startPos, startLine, startCol)
	}

	ch := l.peek()
	if unicode.IsDigit(ch) {
		return l.numberLiteral(startPos, startLine, startCol)
	}
	if unicode.IsLetter(ch) || ch == '_' {
		l.advance()
		return l.identifier(startPos, startLine, startCol)
	}

	l.advance()
	switch ch {
	case '+':
		return l.makeToken(token.Plus, startPos, startLine, startCol)
	case '-':
		return l.makeToken(token.Minus, startPos, startLine, startCol)
	case '*':
		return l.makeToken(token.Star, startPos, startLine, startCol)
	case '/':
		return l.makeToken(token.Slash, startPos, startLine, startCol)
	case '^':
		return l.makeToken(token.Caret, startPos, startLine, startCol)
	case '(':
		return l.makeToken(token.LParen, startPos, startLine, startCol)
	case ')':
		return l.makeToken(token.RParen, startPos, startLine, startCol)
	case '=':
		return l.makeToken(token.Eq, startPos, startLine, startCol)
	}

	return l.makeToken(token.Error, startPos, startLine, startCol)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
	return ch
}

func (l *Lexer) isAtEnd() bool { return l.pos >= len(l.source) }

func (l *Lexer) makeToken(tokType token.Type, startPos, startLine, startCol int) token.Token {
	return token.Token{
		Type:   tokType,
		Lexeme: string(l.source[startPos:l.pos]),
		Pos:    token.Position{Line: startLine, Column: startCol},
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// numberLiteral consumes a run of digits, then a fractional part only when
// a '.' is directly followed by another digit. A trailing bare '.' is left
// for the next scan step, where it becomes an Error token.
func (l *Lexer) numberLiteral(startPos, startLine, startCol int) token.Token {
	for unicode.IsDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && unicode.IsDigit(l.peekNext()) {
		isFloat = true
		l.advance()
		for unicode.IsDigit(l.peek()) {
			l.advance()
		}
	}

	tokType := token.Integer
	if isFloat {
		tokType = token.Float
	}
	tok := l.makeToken(tokType, startPos, startLine, startCol)
	tok.Literal, _ = strconv.ParseFloat(tok.Lexeme, 64)
	return tok
}

func (l *Lexer) identifier(startPos, startLine, startCol int) token.Token {
	for unicode.IsLetter(l.peek()) || unicode.IsDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	return l.makeToken(token.Ident, startPos, startLine, startCol)
}
