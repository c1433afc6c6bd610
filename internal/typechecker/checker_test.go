package typechecker

import (
	"testing"

	"github.com/orizon-lang/declcheck/internal/errors"
	"github.com/orizon-lang/declcheck/internal/lexer"
	"github.com/orizon-lang/declcheck/internal/types"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty program", "", true},
		{"int with integer", "int x = 5;", true},
		{"no initializers", "int x; double y; String z;", true},
		{"duplicate across statements", "int x = 5; int x = 10;", false},
		{"duplicate with different type", "int x; double x;", false},
		{"duplicate in one statement", "int a, b, a;", false},
		{"string into int", `int x = "hello";`, false},
		{"float into int", "int x = 1.5;", false},
		{"integer into long short byte", "long l = 1; short s = 2; byte b = 3;", true},
		{"float into double", "double d = 2.75; float f = 0.5;", true},
		{"integer widened into double", "double d = 3;", true},
		{"boolean literal", "boolean ok = true, done = false;", true},
		{"integer into boolean", "boolean ok = 1;", false},
		{"boolean into int", "int x = true;", false},
		{"char literal", "char c = 'q';", true},
		{"string into char", `char c = "q";`, false},
		{"string literal", `String s = "hi";`, true},
		{"char into String", "String s = 'h';", false},
		{"mismatch in later declarator", "int a = 1, b = 2.0;", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(lexer.Tokenize(tt.input)); got != tt.expected {
				t.Errorf("Analyze(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWideningPolicy(t *testing.T) {
	tokens := lexer.Tokenize("double d = 3; float f = 7;")

	if !NewChecker(types.DefaultPolicy()).Analyze(tokens) {
		t.Fatal("default policy should allow integer widening")
	}

	err := NewChecker(types.Policy{AllowIntegerWidening: false}).Check(tokens)
	if !errors.Is(err, errors.CodeTypeMismatch) {
		t.Fatalf("strict policy should report TYPE_MISMATCH, got %v", err)
	}
}

func TestCheckReportsDuplicate(t *testing.T) {
	err := NewChecker(types.DefaultPolicy()).Check(lexer.Tokenize("int x = 5; int x = 10;"))
	se, ok := errors.As(err)
	if !ok || se.Code != errors.CodeDuplicateIdentifier {
		t.Fatalf("expected DUPLICATE_IDENTIFIER, got %v", err)
	}
	if se.Lexeme != "x" || se.Span.Start.Offset != 15 {
		t.Fatalf("expected second x at offset 15, got %q at %d", se.Lexeme, se.Span.Start.Offset)
	}
	if se.Context["first"] != "1:5" {
		t.Fatalf("expected first declaration at 1:5, got %v", se.Context["first"])
	}
}

func TestCheckReportsTypeMismatch(t *testing.T) {
	err := NewChecker(types.DefaultPolicy()).Check(lexer.Tokenize(`int x = "hello";`))
	se, ok := errors.As(err)
	if !ok || se.Code != errors.CodeTypeMismatch {
		t.Fatalf("expected TYPE_MISMATCH, got %v", err)
	}
	if se.Lexeme != `"hello"` || se.Context["declared"] != "int" || se.Context["literal"] != "string" {
		t.Fatalf("unexpected error details %+v", se)
	}
}

func TestCheckStopsAtFirstError(t *testing.T) {
	tokens := lexer.Tokenize(`int x = "a"; int x = 1;`)
	err := NewChecker(types.DefaultPolicy()).Check(tokens)
	if !errors.Is(err, errors.CodeTypeMismatch) {
		t.Fatalf("first error in encounter order is the mismatch, got %v", err)
	}
}

func TestCheckAllItemizes(t *testing.T) {
	tokens := lexer.Tokenize(`int x = "a"; int x = 1; boolean b = 'c'; char b;`)
	errs := NewChecker(types.DefaultPolicy()).CheckAll(tokens)

	expected := []string{
		errors.CodeTypeMismatch,
		errors.CodeDuplicateIdentifier,
		errors.CodeTypeMismatch,
		errors.CodeDuplicateIdentifier,
	}
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %d: %v", len(expected), len(errs), errs)
	}
	for i, code := range expected {
		if !errors.Is(errs[i], code) {
			t.Fatalf("tests[%d] - expected %s, got %v", i, code, errs[i])
		}
	}
}

func TestDeclarations(t *testing.T) {
	decls := Declarations(lexer.Tokenize("int a = 1, b; String s = \"x\";"))

	tests := []struct {
		typ  types.Primitive
		name string
		init string
	}{
		{types.PrimitiveInt, "a", "1"},
		{types.PrimitiveInt, "b", ""},
		{types.PrimitiveString, "s", `"x"`},
	}

	if len(decls) != len(tests) {
		t.Fatalf("expected %d declarations, got %d", len(tests), len(decls))
	}
	for i, tt := range tests {
		d := decls[i]
		if d.Type != tt.typ || d.Name.Literal != tt.name {
			t.Fatalf("tests[%d] - got %s %s, expected %s %s", i, d.Type, d.Name.Literal, tt.typ, tt.name)
		}
		init := ""
		if d.HasInit() {
			init = d.Init.Literal
		}
		if init != tt.init {
			t.Fatalf("tests[%d] - init %q, expected %q", i, init, tt.init)
		}
	}
}

func TestSymbolTableKeepsFirstDefinition(t *testing.T) {
	decls := Declarations(lexer.Tokenize("int x; double x;"))
	st := NewSymbolTable()

	if err := st.Define(decls[0]); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := st.Define(decls[1]); !errors.Is(err, errors.CodeDuplicateIdentifier) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	sym, ok := st.Lookup("x")
	if !ok || sym.Type != types.PrimitiveInt {
		t.Fatalf("first definition must be kept, got %+v", sym)
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 symbol, got %d", st.Len())
	}
}
