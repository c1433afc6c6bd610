package typechecker

import (
	"github.com/orizon-lang/declcheck/internal/lexer"
	"github.com/orizon-lang/declcheck/internal/parser"
	"github.com/orizon-lang/declcheck/internal/types"
)

// Declaration is one declarator together with the type of its statement.
type Declaration struct {
	Type      types.Primitive
	TypeToken lexer.Token
	Name      lexer.Token
	Init      *lexer.Token // nil without initializer
}

// HasInit reports whether the declarator carries an initializer literal.
func (d Declaration) HasInit() bool {
	return d.Init != nil
}

// Declarations rebuilds the declarations in tokens in encounter order,
// driving the same state machine as the parser. tokens must be
// grammar-valid; the walk stops at the first token the grammar rejects.
func Declarations(tokens []lexer.Token) []Declaration {
	var (
		decls   []Declaration
		stmtTok lexer.Token
		stmtTy  types.Primitive
		current *Declaration
	)

	flush := func() {
		if current != nil {
			decls = append(decls, *current)
			current = nil
		}
	}

	state := parser.StateExpectTypeOrEnd
	for i := range tokens {
		tok := tokens[i]
		next, ok := parser.Next(state, tok.Type)
		if !ok {
			break
		}

		switch tok.Type {
		case lexer.TokenTypeKeyword:
			stmtTok = tok
			stmtTy, _ = types.LookupPrimitive(tok.Literal)
		case lexer.TokenIdentifier:
			current = &Declaration{Type: stmtTy, TypeToken: stmtTok, Name: tok}
		case lexer.TokenLiteral:
			if current != nil {
				current.Init = &tokens[i]
			}
		case lexer.TokenComma, lexer.TokenTerminator:
			flush()
		}

		state = next
	}

	return decls
}
