// Package value defines the type tags and tagged-union values the term
// layer evaluates to.
package value

import (
	"fmt"
	"math/big"
)

// Typ is the finite set of declared types a variable or predicate
// parameter can carry.
type Typ int

const (
	// Int is the arbitrary-precision integer type.
	Int Typ = iota
	// Bool is the boolean type.
	Bool
)

func (t Typ) String() string {
	switch t {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	default:
		return fmt.Sprintf("Typ(%d)", int(t))
	}
}

// Default returns the type's canonical default value.
func (t Typ) Default() Value {
	switch t {
	case Int:
		return I(big.NewInt(0))
	case Bool:
		return B(true)
	default:
		panic(fmt.Sprintf("value: default of unknown type %v", t))
	}
}

// Parse turns a type token into a Typ. ok is false for anything else.
func Parse(tok string) (Typ, bool) {
	switch tok {
	case "Int":
		return Int, true
	case "Bool":
		return Bool, true
	default:
		return 0, false
	}
}

// kind discriminates the Value union.
type kind int

const (
	kindBool kind = iota
	kindInt
	kindUnknown
)

// Value is the tagged union {Bool, Int, Unknown} terms evaluate to.
// Unknown ("N") represents a partial model and propagates through
// strict operators.
type Value struct {
	kind kind
	b    bool
	i    *big.Int
}

// B builds a boolean value.
func B(b bool) Value { return Value{kind: kindBool, b: b} }

// I builds an integer value.
func I(i *big.Int) Value { return Value{kind: kindInt, i: i} }

// N is the unknown value.
func N() Value { return Value{kind: kindUnknown} }

// IsUnknown reports whether the value is N.
func (v Value) IsUnknown() bool { return v.kind == kindUnknown }

// ToBool extracts a boolean. It fails if v is an integer; it returns
// (false, false, nil) if v is N — callers must check the second return
// value.
func (v Value) ToBool() (b bool, ok bool, err error) {
	switch v.kind {
	case kindBool:
		return v.b, true, nil
	case kindUnknown:
		return false, false, nil
	default:
		return false, false, fmt.Errorf("value: expected boolean value, found integer")
	}
}

// ToInt extracts an integer. It fails if v is a boolean; it returns
// (nil, false, nil) if v is N.
func (v Value) ToInt() (i *big.Int, ok bool, err error) {
	switch v.kind {
	case kindInt:
		return v.i, true, nil
	case kindUnknown:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("value: expected integer value, found boolean")
	}
}

// Equal is Value-equality: same tag, and same payload for Bool/Int.
// Two unknown values are equal to each other (they carry no payload to
// distinguish), matching the `=` operator's plain structural-equality
// semantics — N is not special-cased there the way it is in and/or/not.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case kindBool:
		return v.b == other.b
	case kindInt:
		return v.i.Cmp(other.i) == 0
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case kindBool:
		return fmt.Sprintf("%t", v.b)
	case kindInt:
		return v.i.String()
	default:
		return "?"
	}
}
