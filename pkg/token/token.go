package token

import "fmt"

type Type int

const (
	EOF Type = iota
	Error
	Integer
	Float
	Ident
	Plus
	Minus
	Star
	Slash
	Caret
	LParen
	RParen
	Eq
)

var typeStrings = map[Type]string{
	EOF:     "end of input",
	Error:   "invalid character",
	Integer: "integer",
	Float:   "float",
	Ident:   "identifier",
	Plus:    "'+'",
	Minus:   "'-'",
	Star:    "'*'",
	Slash:   "'/'",
	Caret:   "'^'",
	LParen:  "'('",
	RParen:  "')'",
	Eq:      "'='",
}

func (t Type) String() string {
	if s, ok := typeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Position is a location in source text. Lines and columns are 1-based.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Token is one lexeme of source text. Literal holds the parsed numeric
// value and is meaningful only for Integer and Float tokens.
type Token struct {
	Type    Type
	Lexeme  string
	Pos     Position
	Literal float64
}

func (t Token) String() string {
	switch t.Type {
	case Integer, Float:
		return fmt.Sprintf("%s %q (%v)", t.Type, t.Lexeme, t.Literal)
	case EOF:
		return "end of input"
	default:
		return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
	}
}
