// Package term implements the hash-consed term algebra: a factory that
// interns structurally unique terms behind stable identities, and the
// recursive term representation (RTerm) built on top of it.
//
// Two term handles are equal iff they denote the same hash-consed
// node; equality and hashing of terms reduce to identity comparison,
// never structural comparison, once a term has been built.
package term

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"chc/internal/idx"
	"chc/internal/op"
	"chc/internal/value"
)

// Kind discriminates the term variants.
type Kind int8

const (
	KindVar Kind = iota
	KindInt
	KindBool
	KindApp
)

// node is the hash-consed payload. Only the Factory constructs nodes;
// Term is the opaque handle callers hold.
type node struct {
	id   uint64
	kind Kind

	v idx.Var
	i *big.Int
	b bool

	op   op.Op
	args []Term
}

// Term is a cheap-to-copy handle into a Factory. Equality is identity:
// two handles compare equal with == iff they were produced by the same
// construction recipe on the same factory.
type Term struct {
	n *node
}

// IsZero reports whether t is the zero Term value (no node). A zero
// Term is never returned by a Factory constructor.
func (t Term) IsZero() bool { return t.n == nil }

// ID returns the term's stable, dense identity within its factory.
// Used only to build composite keys for App interning — never exposed
// as an ordering guarantee (§3: "ordering on handles is unspecified").
func (t Term) ID() uint64 { return t.n.id }

// Kind reports which RTerm variant this term is.
func (t Term) Kind() Kind { return t.n.kind }

// Var returns the variable index, if this is a Var term.
func (t Term) Var() (idx.Var, bool) {
	if t.n.kind != KindVar {
		return 0, false
	}
	return t.n.v, true
}

// IntVal returns the integer constant, if this is an Int term.
func (t Term) IntVal() (*big.Int, bool) {
	if t.n.kind != KindInt {
		return nil, false
	}
	return t.n.i, true
}

// BoolVal returns the boolean constant, if this is a Bool term.
func (t Term) BoolVal() (bool, bool) {
	if t.n.kind != KindBool {
		return false, false
	}
	return t.n.b, true
}

// App returns the operator and argument terms, if this is an App term.
func (t Term) App() (op.Op, []Term, bool) {
	if t.n.kind != KindApp {
		return 0, nil, false
	}
	return t.n.op, t.n.args, true
}

// IsTrue reports whether the term is literally the constant `true`.
// An App term is never true here: simplification at construction time
// already collapses `and []`/`or []` etc. into literal constants where
// that is semantically required.
func (t Term) IsTrue() bool {
	b, ok := t.BoolVal()
	return ok && b
}

// IsFalse reports whether the term is literally the constant `false`.
func (t Term) IsFalse() bool {
	b, ok := t.BoolVal()
	return ok && !b
}

// HighestVar returns the greatest variable index occurring anywhere in
// the term, if any. Used by the instance layer to validate a clause's
// variable context against the term it carries.
func (t Term) HighestVar() (idx.Var, bool) {
	stack := []Term{t}
	found := false
	var max idx.Var
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch cur.n.kind {
		case KindVar:
			if !found || cur.n.v > max {
				max = cur.n.v
				found = true
			}
		case KindApp:
			stack = append(stack, cur.n.args...)
		}
	}
	return max, found
}

// VarIdx returns the variable index if the term is a bare variable.
func (t Term) VarIdx() (idx.Var, bool) { return t.Var() }

func (t Term) String() string {
	var buf strings.Builder
	_ = t.Write(&buf, func(w io.Writer, v idx.Var) error {
		_, err := fmt.Fprintf(w, "%s", v)
		return err
	})
	return buf.String()
}

// Value is the evaluated-leaf payload used while walking a term; it is
// the value package's Value but re-exported here so callers of term
// don't need a separate import for the common case.
type Value = value.Value
