// Package errors provides the categorised analysis errors reported by the
// lexer, parser and checker.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/orizon-lang/declcheck/internal/position"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategoryLexical  ErrorCategory = "LEXICAL"
	CategorySyntax   ErrorCategory = "SYNTAX"
	CategorySemantic ErrorCategory = "SEMANTIC"
	CategoryIO       ErrorCategory = "IO"
)

// Error codes.
const (
	CodeUnknownToken        = "UNKNOWN_TOKEN"
	CodeSyntaxViolation     = "SYNTAX_VIOLATION"
	CodeUnexpectedEnd       = "UNEXPECTED_END"
	CodeDuplicateIdentifier = "DUPLICATE_IDENTIFIER"
	CodeTypeMismatch        = "TYPE_MISMATCH"
	CodeReadFailed          = "READ_FAILED"
)

// StandardError provides a consistent error format
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Lexeme   string
	Span     position.Span
	Context  map[string]interface{}
	Err      error
}

// Error implements the error interface
func (e *StandardError) Error() string {
	if e.Span.Start.IsValid() {
		return fmt.Sprintf("%s: [%s:%s] %s", e.Span.Start, e.Category, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *StandardError) Unwrap() error {
	return e.Err
}

// NewStandardError creates a new standardized error
func NewStandardError(category ErrorCategory, code, message string, span position.Span, lexeme string, context map[string]interface{}) *StandardError {
	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Lexeme:   lexeme,
		Span:     span,
		Context:  context,
	}
}

// As returns the *StandardError in err's chain.
func As(err error) (*StandardError, bool) {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	se, ok := As(err)
	return ok && se.Code == code
}

// Common error constructors

func UnknownToken(lexeme string, span position.Span) *StandardError {
	return NewStandardError(CategoryLexical, CodeUnknownToken,
		fmt.Sprintf("unrecognized token %q", lexeme),
		span, lexeme, nil)
}

func SyntaxViolation(lexeme string, span position.Span, expected []string) *StandardError {
	return NewStandardError(CategorySyntax, CodeSyntaxViolation,
		fmt.Sprintf("unexpected %q, expected %s", lexeme, strings.Join(expected, " or ")),
		span, lexeme, map[string]interface{}{"expected": expected})
}

func UnexpectedEnd(span position.Span, expected []string) *StandardError {
	return NewStandardError(CategorySyntax, CodeUnexpectedEnd,
		fmt.Sprintf("unexpected end of input, expected %s", strings.Join(expected, " or ")),
		span, "", map[string]interface{}{"expected": expected})
}

func DuplicateIdentifier(name string, span position.Span, first position.Position) *StandardError {
	return NewStandardError(CategorySemantic, CodeDuplicateIdentifier,
		fmt.Sprintf("variable %q already declared at %s", name, first),
		span, name, map[string]interface{}{"first": first.String()})
}

func TypeMismatch(declared, literalKind, lexeme string, span position.Span) *StandardError {
	return NewStandardError(CategorySemantic, CodeTypeMismatch,
		fmt.Sprintf("cannot initialize %s with %s literal %s", declared, literalKind, lexeme),
		span, lexeme, map[string]interface{}{"declared": declared, "literal": literalKind})
}

func ReadFailed(path string, err error) *StandardError {
	se := NewStandardError(CategoryIO, CodeReadFailed,
		fmt.Sprintf("cannot read %s: %v", path, err),
		position.Span{}, "", map[string]interface{}{"path": path})
	se.Err = err
	return se
}
