package typechecker

import (
	"github.com/orizon-lang/declcheck/internal/errors"
	"github.com/orizon-lang/declcheck/internal/lexer"
	"github.com/orizon-lang/declcheck/internal/types"
)

// Symbol is a declared variable.
type Symbol struct {
	Name lexer.Token
	Type types.Primitive
}

// SymbolTable maps identifiers to their declaration in a single flat scope.
type SymbolTable struct {
	symbols map[string]Symbol
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol)}
}

// Define inserts the declaration. A name that is already present is
// reported as DUPLICATE_IDENTIFIER and the existing entry is kept.
func (st *SymbolTable) Define(decl Declaration) error {
	name := decl.Name.Literal
	if prev, exists := st.symbols[name]; exists {
		return errors.DuplicateIdentifier(name, decl.Name.Span, prev.Name.Pos())
	}
	st.symbols[name] = Symbol{Name: decl.Name, Type: decl.Type}
	return nil
}

// Lookup returns the symbol declared under name.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Len returns the number of declared symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}
