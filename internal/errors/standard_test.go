package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/orizon-lang/declcheck/internal/position"
)

func span(line, col, off, length int) position.Span {
	return position.Span{
		Start: position.Position{Line: line, Column: col, Offset: off},
		End:   position.Position{Line: line, Column: col + length, Offset: off + length},
	}
}

func TestConstructorsCategoryAndCode(t *testing.T) {
	tests := []struct {
		err      *StandardError
		category ErrorCategory
		code     string
	}{
		{UnknownToken("#", span(1, 7, 6, 1)), CategoryLexical, CodeUnknownToken},
		{SyntaxViolation("5", span(1, 5, 4, 1), []string{"IDENTIFIER"}), CategorySyntax, CodeSyntaxViolation},
		{UnexpectedEnd(span(1, 10, 9, 0), []string{"COMMA", "TERMINATOR"}), CategorySyntax, CodeUnexpectedEnd},
		{DuplicateIdentifier("x", span(1, 16, 15, 1), position.Position{Line: 1, Column: 5, Offset: 4}), CategorySemantic, CodeDuplicateIdentifier},
		{TypeMismatch("int", "string", `"hello"`, span(1, 9, 8, 7)), CategorySemantic, CodeTypeMismatch},
		{ReadFailed("missing.txt", fs.ErrNotExist), CategoryIO, CodeReadFailed},
	}

	for i, tt := range tests {
		if tt.err.Category != tt.category || tt.err.Code != tt.code {
			t.Fatalf("tests[%d] - got %s/%s, expected %s/%s",
				i, tt.err.Category, tt.err.Code, tt.category, tt.code)
		}
		if !strings.Contains(tt.err.Error(), tt.code) {
			t.Fatalf("tests[%d] - message %q lacks code", i, tt.err.Error())
		}
	}
}

func TestErrorIncludesPosition(t *testing.T) {
	err := UnknownToken("#", span(2, 3, 10, 1))
	if !strings.HasPrefix(err.Error(), "2:3: ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAsAndIsThroughWrapping(t *testing.T) {
	base := TypeMismatch("boolean", "integer", "1", span(1, 13, 12, 1))
	wrapped := fmt.Errorf("semantic analysis: %w", base)

	se, ok := As(wrapped)
	if !ok || se != base {
		t.Fatal("As must find the wrapped StandardError")
	}
	if !Is(wrapped, CodeTypeMismatch) || Is(wrapped, CodeDuplicateIdentifier) {
		t.Fatal("Is must match on code")
	}
	if _, ok := As(stderrors.New("plain")); ok {
		t.Fatal("plain errors are not StandardErrors")
	}
}

func TestReadFailedUnwraps(t *testing.T) {
	err := ReadFailed("x.txt", fs.ErrNotExist)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Fatal("ReadFailed must unwrap to its cause")
	}
}
