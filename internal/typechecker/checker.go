// Package typechecker performs semantic analysis of grammar-valid
// declaration statements: identifier uniqueness and initializer/type
// compatibility.
package typechecker

import (
	"github.com/orizon-lang/declcheck/internal/errors"
	"github.com/orizon-lang/declcheck/internal/lexer"
	"github.com/orizon-lang/declcheck/internal/types"
)

// Checker holds the compatibility policy. It keeps no state between runs.
type Checker struct {
	policy types.Policy
}

// NewChecker creates a checker using policy.
func NewChecker(policy types.Policy) *Checker {
	return &Checker{policy: policy}
}

// Policy returns the checker's compatibility policy.
func (c *Checker) Policy() types.Policy {
	return c.policy
}

// Analyze reports whether tokens are semantically valid under the default policy.
func Analyze(tokens []lexer.Token) bool {
	return NewChecker(types.DefaultPolicy()).Analyze(tokens)
}

// Analyze reports whether Check finds no error.
func (c *Checker) Analyze(tokens []lexer.Token) bool {
	return c.Check(tokens) == nil
}

// Check returns the first semantic error in encounter order, or nil.
func (c *Checker) Check(tokens []lexer.Token) error {
	var first error
	c.walk(tokens, func(err error) bool {
		first = err
		return false
	})
	return first
}

// CheckAll returns every semantic error in encounter order. A duplicate
// declarator is still type-checked against its own initializer.
func (c *Checker) CheckAll(tokens []lexer.Token) []error {
	var errs []error
	c.walk(tokens, func(err error) bool {
		errs = append(errs, err)
		return true
	})
	return errs
}

// walk checks each declaration with a fresh symbol table and reports
// errors to report until it returns false.
func (c *Checker) walk(tokens []lexer.Token, report func(error) bool) {
	symbols := NewSymbolTable()

	for _, decl := range Declarations(tokens) {
		if err := symbols.Define(decl); err != nil {
			if !report(err) {
				return
			}
		}
		if err := c.checkInit(decl); err != nil {
			if !report(err) {
				return
			}
		}
	}
}

func (c *Checker) checkInit(decl Declaration) error {
	if !decl.HasInit() {
		return nil
	}
	lit := decl.Init
	if !types.Compatible(decl.Type, lit.LiteralKind, c.policy) {
		return errors.TypeMismatch(decl.Type.String(), lit.LiteralKind.String(), lit.Literal, lit.Span)
	}
	return nil
}
