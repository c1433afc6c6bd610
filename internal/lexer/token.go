package lexer

import (
	"fmt"

	"github.com/orizon-lang/declcheck/internal/position"
	"github.com/orizon-lang/declcheck/internal/types"
)

// TokenType represents the type of a token
type TokenType int

// Token types of the declaration language.
const (
	TokenUnknown TokenType = iota
	TokenTypeKeyword
	TokenIdentifier
	TokenLiteral
	TokenAssign
	TokenComma
	TokenTerminator
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenUnknown:     "UNKNOWN",
	TokenTypeKeyword: "TYPE_KEYWORD",
	TokenIdentifier:  "IDENTIFIER",
	TokenLiteral:     "LITERAL",
	TokenAssign:      "ASSIGN",
	TokenComma:       "COMMA",
	TokenTerminator:  "TERMINATOR",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is one classified lexical unit. Literal is the exact source text the
// token covers, including quotes for string and char literals.
type Token struct {
	Type        TokenType
	Literal     string
	LiteralKind types.LiteralKind // set for TokenLiteral only
	Span        position.Span
}

// Is reports whether the token has type tt.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

// Pos returns the start position of the token.
func (t Token) Pos() position.Position {
	return t.Span.Start
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenLiteral {
		return fmt.Sprintf("{Type: %s(%s), Literal: %q, Line: %d, Column: %d}",
			t.Type, t.LiteralKind, t.Literal, t.Span.Start.Line, t.Span.Start.Column)
	}
	return fmt.Sprintf("{Type: %s, Literal: %q, Line: %d, Column: %d}",
		t.Type, t.Literal, t.Span.Start.Line, t.Span.Start.Column)
}
