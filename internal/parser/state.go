package parser

import (
	"fmt"

	"github.com/orizon-lang/declcheck/internal/lexer"
)

// State is a position in the declaration-statement grammar:
//
//	program    := statement*
//	statement  := TYPE_KEYWORD declarator (COMMA declarator)* TERMINATOR
//	declarator := IDENTIFIER (ASSIGN LITERAL)?
type State int

const (
	StateExpectTypeOrEnd State = iota
	StateExpectIdentifier
	StateExpectAssignCommaOrTerminator
	StateExpectLiteral
	StateExpectCommaOrTerminator
)

func (s State) String() string {
	switch s {
	case StateExpectTypeOrEnd:
		return "EXPECT_TYPE_OR_END"
	case StateExpectIdentifier:
		return "EXPECT_IDENTIFIER"
	case StateExpectAssignCommaOrTerminator:
		return "EXPECT_ASSIGN_COMMA_OR_TERMINATOR"
	case StateExpectLiteral:
		return "EXPECT_LITERAL"
	case StateExpectCommaOrTerminator:
		return "EXPECT_COMMA_OR_TERMINATOR"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type transition struct {
	on lexer.TokenType
	to State
}

// transitions lists the accepted token types per state in the order they are
// reported as expected. A token type absent from a state's row is a trap.
var transitions = map[State][]transition{
	StateExpectTypeOrEnd: {
		{lexer.TokenTypeKeyword, StateExpectIdentifier},
	},
	StateExpectIdentifier: {
		{lexer.TokenIdentifier, StateExpectAssignCommaOrTerminator},
	},
	StateExpectAssignCommaOrTerminator: {
		{lexer.TokenAssign, StateExpectLiteral},
		{lexer.TokenComma, StateExpectIdentifier},
		{lexer.TokenTerminator, StateExpectTypeOrEnd},
	},
	StateExpectLiteral: {
		{lexer.TokenLiteral, StateExpectCommaOrTerminator},
	},
	StateExpectCommaOrTerminator: {
		{lexer.TokenComma, StateExpectIdentifier},
		{lexer.TokenTerminator, StateExpectTypeOrEnd},
	},
}

// Next returns the state reached from s on a token of type tt. The boolean
// is false if tt is not accepted in s.
func Next(s State, tt lexer.TokenType) (State, bool) {
	for _, tr := range transitions[s] {
		if tr.on == tt {
			return tr.to, true
		}
	}
	return s, false
}

// Expected returns the token types accepted in s.
func Expected(s State) []lexer.TokenType {
	row := transitions[s]
	out := make([]lexer.TokenType, len(row))
	for i, tr := range row {
		out[i] = tr.on
	}
	return out
}

// Accepting reports whether input may end in s.
func (s State) Accepting() bool {
	return s == StateExpectTypeOrEnd
}

func expectedNames(s State) []string {
	names := make([]string, 0, 4)
	for _, tt := range Expected(s) {
		names = append(names, tt.String())
	}
	if s.Accepting() {
		names = append(names, "end of input")
	}
	return names
}
