package types

import "testing"

func TestLookupPrimitive(t *testing.T) {
	tests := []struct {
		name     string
		expected Primitive
		ok       bool
	}{
		{"int", PrimitiveInt, true},
		{"long", PrimitiveLong, true},
		{"short", PrimitiveShort, true},
		{"byte", PrimitiveByte, true},
		{"float", PrimitiveFloat, true},
		{"double", PrimitiveDouble, true},
		{"char", PrimitiveChar, true},
		{"boolean", PrimitiveBoolean, true},
		{"String", PrimitiveString, true},
		{"string", PrimitiveInvalid, false},
		{"Int", PrimitiveInvalid, false},
		{"x", PrimitiveInvalid, false},
	}

	for i, tt := range tests {
		p, ok := LookupPrimitive(tt.name)
		if ok != tt.ok || p != tt.expected {
			t.Fatalf("tests[%d] - LookupPrimitive(%q) = (%v, %v), expected (%v, %v)",
				i, tt.name, p, ok, tt.expected, tt.ok)
		}
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	kws := Keywords()
	if len(kws) != 9 {
		t.Fatalf("expected 9 keywords, got %d", len(kws))
	}
	for _, kw := range kws {
		p, ok := LookupPrimitive(kw)
		if !ok {
			t.Fatalf("keyword %q not resolvable", kw)
		}
		if p.String() != kw {
			t.Fatalf("String() = %q, expected %q", p.String(), kw)
		}
	}
}

func TestCompatible(t *testing.T) {
	widen := DefaultPolicy()
	strict := Policy{}

	tests := []struct {
		prim     Primitive
		kind     LiteralKind
		policy   Policy
		expected bool
	}{
		{PrimitiveInt, LiteralInteger, widen, true},
		{PrimitiveLong, LiteralInteger, strict, true},
		{PrimitiveByte, LiteralInteger, strict, true},
		{PrimitiveInt, LiteralFloat, widen, false},
		{PrimitiveInt, LiteralString, widen, false},
		{PrimitiveDouble, LiteralFloat, strict, true},
		{PrimitiveFloat, LiteralInteger, widen, true},
		{PrimitiveFloat, LiteralInteger, strict, false},
		{PrimitiveDouble, LiteralBoolean, widen, false},
		{PrimitiveBoolean, LiteralBoolean, strict, true},
		{PrimitiveBoolean, LiteralInteger, widen, false},
		{PrimitiveChar, LiteralChar, strict, true},
		{PrimitiveChar, LiteralString, widen, false},
		{PrimitiveString, LiteralString, strict, true},
		{PrimitiveString, LiteralChar, widen, false},
		{PrimitiveInvalid, LiteralInteger, widen, false},
	}

	for i, tt := range tests {
		if got := Compatible(tt.prim, tt.kind, tt.policy); got != tt.expected {
			t.Fatalf("tests[%d] - Compatible(%s, %s, %+v) = %v, expected %v",
				i, tt.prim, tt.kind, tt.policy, got, tt.expected)
		}
	}
}

func TestIsBooleanWord(t *testing.T) {
	if !IsBooleanWord("true") || !IsBooleanWord("false") {
		t.Fatal("true/false must be boolean words")
	}
	if IsBooleanWord("True") || IsBooleanWord("") {
		t.Fatal("boolean words are case-sensitive")
	}
}
