package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"mexc/pkg/token"
)

func tokenTypes(tokens []token.Token) []token.Type {
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanEmptyInput(t *testing.T) {
	tokens := Scan("")
	want := []token.Token{{Type: token.EOF, Lexeme: "", Pos: token.Position{Line: 1, Column: 1}}}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("Scan(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestScanAllTokenKinds(t *testing.T) {
	tokens := Scan("1 2.5 x + - * / ^ ( ) = @")
	want := []token.Type{
		token.Integer, token.Float, token.Ident,
		token.Plus, token.Minus, token.Star, token.Slash, token.Caret,
		token.LParen, token.RParen, token.Eq, token.Error, token.EOF,
	}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestScanAlwaysEndsWithSingleEOF(t *testing.T) {
	inputs := []string{"", "   ", "\n\n", "1 + 2", "@#$", "x = 5\ny = x"}
	for _, input := range inputs {
		tokens := Scan(input)
		if len(tokens) == 0 {
			t.Fatalf("Scan(%q) returned no tokens", input)
		}
		eofs := 0
		for _, tok := range tokens {
			if tok.Type == token.EOF {
				eofs++
			}
		}
		if eofs != 1 || tokens[len(tokens)-1].Type != token.EOF {
			t.Errorf("Scan(%q): want exactly one trailing EOF, got %d EOF tokens", input, eofs)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input   string
		typ     token.Type
		lexeme  string
		literal float64
	}{
		{"0", token.Integer, "0", 0},
		{"42", token.Integer, "42", 42},
		{"3.14", token.Float, "3.14", 3.14},
		{"10.0", token.Float, "10.0", 10},
		{"0.5", token.Float, "0.5", 0.5},
	}
	for _, tt := range tests {
		tokens := Scan(tt.input)
		got := tokens[0]
		if got.Type != tt.typ || got.Lexeme != tt.lexeme || got.Literal != tt.literal {
			t.Errorf("Scan(%q)[0] = %v, want %s %q (%v)", tt.input, got, tt.typ, tt.lexeme, tt.literal)
		}
	}
}

// A '.' not followed by a digit is never absorbed into a number; it is
// left behind and becomes an Error token of its own.
func TestTrailingDotIsNotPartOfNumber(t *testing.T) {
	tokens := Scan("42.")
	want := []token.Type{token.Integer, token.Error, token.EOF}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Fatalf("Scan(\"42.\") types mismatch (-want +got):\n%s", diff)
	}
	if tokens[0].Lexeme != "42" || tokens[1].Lexeme != "." {
		t.Errorf("lexemes = %q, %q, want \"42\", \".\"", tokens[0].Lexeme, tokens[1].Lexeme)
	}
}

// Only one fractional part is consumed; a second '.' starts over.
func TestSecondDotStartsNewToken(t *testing.T) {
	tokens := Scan("1.2.3")
	want := []token.Type{token.Float, token.Error, token.Integer, token.EOF}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Errorf("Scan(\"1.2.3\") types mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{"x", "x"},
		{"_tmp", "_tmp"},
		{"var_1", "var_1"},
		{"CamelCase99", "CamelCase99"},
	}
	for _, tt := range tests {
		tokens := Scan(tt.input)
		if tokens[0].Type != token.Ident || tokens[0].Lexeme != tt.lexeme {
			t.Errorf("Scan(%q)[0] = %v, want identifier %q", tt.input, tokens[0], tt.lexeme)
		}
	}
}

// A digit cannot start an identifier: "9x" is a number then an identifier.
func TestDigitDoesNotStartIdentifier(t *testing.T) {
	tokens := Scan("9x")
	want := []token.Type{token.Integer, token.Ident, token.EOF}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Errorf("Scan(\"9x\") types mismatch (-want +got):\n%s", diff)
	}
}

func TestWhitespaceTransparency(t *testing.T) {
	compact := Scan("1+2*xy")
	spaced := Scan("  1 \t+\r\n  2   *\n\nxy\t")
	type visible struct {
		Type    token.Type
		Lexeme  string
		Literal float64
	}
	strip := func(tokens []token.Token) []visible {
		out := make([]visible, len(tokens))
		for i, tok := range tokens {
			out[i] = visible{tok.Type, tok.Lexeme, tok.Literal}
		}
		return out
	}
	if diff := cmp.Diff(strip(compact), strip(spaced)); diff != "" {
		t.Errorf("whitespace changed more than positions (-compact +spaced):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	tokens := Scan("x = 1\n  y = 2.5")
	want := []token.Position{
		{Line: 1, Column: 1}, // x
		{Line: 1, Column: 3}, // =
		{Line: 1, Column: 5}, // 1
		{Line: 2, Column: 3}, // y
		{Line: 2, Column: 5}, // =
		{Line: 2, Column: 7}, // 2.5
		{Line: 2, Column: 10},
	}
	got := make([]token.Position, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Pos
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestPositionValidity(t *testing.T) {
	tokens := Scan("@ 1\n# 2\n\n  $")
	prevLine := 1
	for _, tok := range tokens {
		if tok.Pos.Line < 1 || tok.Pos.Column < 1 {
			t.Errorf("token %v has invalid position %v", tok, tok.Pos)
		}
		if tok.Pos.Line < prevLine {
			t.Errorf("token %v: line went backwards (%d after %d)", tok, tok.Pos.Line, prevLine)
		}
		prevLine = tok.Pos.Line
	}
}

// Unrecognized characters become Error tokens and scanning keeps going,
// so one pass reports every bad character.
func TestUnrecognizedCharacters(t *testing.T) {
	tokens := Scan("@1#")
	want := []token.Type{token.Error, token.Integer, token.Error, token.EOF}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Fatalf("Scan(\"@1#\") types mismatch (-want +got):\n%s", diff)
	}
	if tokens[0].Lexeme != "@" || tokens[2].Lexeme != "#" {
		t.Errorf("error lexemes = %q, %q, want \"@\", \"#\"", tokens[0].Lexeme, tokens[2].Lexeme)
	}
}

func TestScanStatementLine(t *testing.T) {
	tokens := Scan("x = 10")
	want := []token.Token{
		{Type: token.Ident, Lexeme: "x", Pos: token.Position{Line: 1, Column: 1}},
		{Type: token.Eq, Lexeme: "=", Pos: token.Position{Line: 1, Column: 3}},
		{Type: token.Integer, Lexeme: "10", Pos: token.Position{Line: 1, Column: 5}, Literal: 10},
		{Type: token.EOF, Lexeme: "", Pos: token.Position{Line: 1, Column: 7}},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("Scan(\"x = 10\") mismatch (-want +got):\n%s", diff)
	}
}
