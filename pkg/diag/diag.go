// Package diag defines the error records produced by the compiler phases
// and the terminal rendering for them.
package diag

import (
	"fmt"

	"mexc/pkg/token"
)

// Phase identifies which compiler phase produced an error.
type Phase int

const (
	Lexical Phase = iota
	Syntax
	Semantic
)

func (p Phase) String() string {
	switch p {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Semantic:
		return "semantic"
	}
	return "unknown"
}

// Error is one diagnostic. Records are append-only: phases accumulate them
// in source order and nothing downstream mutates or deduplicates them.
// Expected/Actual are set for syntax errors where a specific token was
// required; VariableName is set for undefined-variable errors.
type Error struct {
	Phase        Phase
	Message      string
	Pos          token.Position
	Expected     string
	Actual       string
	VariableName string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Pos, e.Phase, e.Message)
}
