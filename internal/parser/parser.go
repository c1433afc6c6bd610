// Package parser validates token sequences against the declaration-statement
// grammar. It looks at token types only, never at literal values.
package parser

import (
	"github.com/orizon-lang/declcheck/internal/errors"
	"github.com/orizon-lang/declcheck/internal/lexer"
	"github.com/orizon-lang/declcheck/internal/position"
)

// Analyze reports whether tokens form zero or more complete statements.
// tokens must not contain TokenUnknown.
func Analyze(tokens []lexer.Token) bool {
	return Validate(tokens) == nil
}

// Validate scans tokens once, left to right. It returns nil on success, a
// SYNTAX_VIOLATION error for the first token not accepted in the current
// state, or an UNEXPECTED_END error if input stops mid-statement.
func Validate(tokens []lexer.Token) error {
	state := StateExpectTypeOrEnd

	for _, tok := range tokens {
		next, ok := Next(state, tok.Type)
		if !ok {
			return errors.SyntaxViolation(tok.Literal, tok.Span, expectedNames(state))
		}
		state = next
	}

	if !state.Accepting() {
		return errors.UnexpectedEnd(endOfInput(tokens), expectedNames(state))
	}
	return nil
}

// endOfInput is the empty span right after the last token.
func endOfInput(tokens []lexer.Token) position.Span {
	if len(tokens) == 0 {
		return position.Span{}
	}
	end := tokens[len(tokens)-1].Span.End
	return position.Span{Start: end, End: end}
}
