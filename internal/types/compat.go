package types

// Policy holds the configurable parts of initializer compatibility.
type Policy struct {
	// AllowIntegerWidening lets an integer literal initialize a floating declaration.
	AllowIntegerWidening bool
}

// DefaultPolicy allows integer-to-floating widening.
func DefaultPolicy() Policy {
	return Policy{AllowIntegerWidening: true}
}

// rule is one cell of the compatibility table.
type rule int

const (
	reject rule = iota
	accept
	acceptIfWidening
)

// compatibility is indexed by declared class and literal kind. A new
// primitive only needs a Class mapping; a new class needs one row here.
var compatibility = map[Class]map[LiteralKind]rule{
	ClassIntegral: {
		LiteralInteger: accept,
	},
	ClassFloating: {
		LiteralFloat:   accept,
		LiteralInteger: acceptIfWidening,
	},
	ClassBoolean: {
		LiteralBoolean: accept,
	},
	ClassChar: {
		LiteralChar: accept,
	},
	ClassString: {
		LiteralString: accept,
	},
}

// Compatible reports whether a literal of kind k may initialize a variable
// declared with primitive p under the given policy.
func Compatible(p Primitive, k LiteralKind, pol Policy) bool {
	row, ok := compatibility[p.Class()]
	if !ok {
		return false
	}
	switch row[k] {
	case accept:
		return true
	case acceptIfWidening:
		return pol.AllowIntegerWidening
	default:
		return false
	}
}
