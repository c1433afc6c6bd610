// Package types defines the primitive type keywords, literal kinds and the
// initializer compatibility table shared by the lexer, parser and checker.
package types

import "fmt"

// Primitive is a declarable primitive type.
type Primitive int

const (
	PrimitiveInvalid Primitive = iota
	PrimitiveInt
	PrimitiveLong
	PrimitiveShort
	PrimitiveByte
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveChar
	PrimitiveBoolean
	PrimitiveString
)

// primitiveNames holds the source keyword of each primitive.
var primitiveNames = map[Primitive]string{
	PrimitiveInt:     "int",
	PrimitiveLong:    "long",
	PrimitiveShort:   "short",
	PrimitiveByte:    "byte",
	PrimitiveFloat:   "float",
	PrimitiveDouble:  "double",
	PrimitiveChar:    "char",
	PrimitiveBoolean: "boolean",
	PrimitiveString:  "String",
}

// keywords maps type keywords to their primitive.
var keywords = func() map[string]Primitive {
	m := make(map[string]Primitive, len(primitiveNames))
	for p, name := range primitiveNames {
		m[name] = p
	}
	return m
}()

// String returns the source keyword of the primitive.
func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// LookupPrimitive resolves a type keyword. Keywords are case-sensitive.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := keywords[name]
	return p, ok
}

// Keywords returns every type keyword in declaration order of the Primitive constants.
func Keywords() []string {
	out := make([]string, 0, len(primitiveNames))
	for p := PrimitiveInt; p <= PrimitiveString; p++ {
		out = append(out, primitiveNames[p])
	}
	return out
}

// Class groups primitives that accept the same literal kinds.
type Class int

const (
	ClassInvalid Class = iota
	ClassIntegral
	ClassFloating
	ClassBoolean
	ClassChar
	ClassString
)

func (c Class) String() string {
	switch c {
	case ClassIntegral:
		return "integral"
	case ClassFloating:
		return "floating"
	case ClassBoolean:
		return "boolean"
	case ClassChar:
		return "char"
	case ClassString:
		return "string"
	default:
		return "invalid"
	}
}

// Class returns the compatibility class of the primitive.
func (p Primitive) Class() Class {
	switch p {
	case PrimitiveInt, PrimitiveLong, PrimitiveShort, PrimitiveByte:
		return ClassIntegral
	case PrimitiveFloat, PrimitiveDouble:
		return ClassFloating
	case PrimitiveBoolean:
		return ClassBoolean
	case PrimitiveChar:
		return ClassChar
	case PrimitiveString:
		return ClassString
	default:
		return ClassInvalid
	}
}

// LiteralKind is the intrinsic type of a literal, recovered from its shape.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralInteger
	LiteralFloat
	LiteralBoolean
	LiteralChar
	LiteralString
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInteger:
		return "integer"
	case LiteralFloat:
		return "float"
	case LiteralBoolean:
		return "boolean"
	case LiteralChar:
		return "char"
	case LiteralString:
		return "string"
	default:
		return "none"
	}
}

// IsBooleanWord reports whether word is one of the reserved boolean literals.
func IsBooleanWord(word string) bool {
	return word == "true" || word == "false"
}
