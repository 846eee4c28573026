// Package tterm implements the Horn-clause layer on top of the term
// algebra: top terms (predicate applications, negations, pure terms),
// variable/predicate metadata, and clauses.
package tterm

import (
	"fmt"
	"io"
	"strings"

	"chc/internal/idx"
	"chc/internal/term"
	"chc/internal/value"
)

// VarInfo carries a clause variable's declared name, index and type.
type VarInfo struct {
	Name string
	Idx  idx.Var
	Typ  value.Typ
}

// PrdInfo carries a predicate's declared name, index and signature.
type PrdInfo struct {
	Name string
	Idx  idx.Pred
	Sig  []value.Typ
}

// Kind discriminates the TTerm variants.
type Kind int8

const (
	// KindPred is a predicate application P{pred, args}.
	KindPred Kind = iota
	// KindNeg is the logical negation of a pure term.
	KindNeg
	// KindTerm is a pure term.
	KindTerm
)

// TTerm is one of: a predicate application, a negated term, or a bare
// term, as they appear in clause antecedents/consequents.
type TTerm struct {
	kind Kind
	pred idx.Pred
	args []term.Term
	t    term.Term
}

// Pred builds a predicate-application top term.
func Pred(pred idx.Pred, args []term.Term) TTerm {
	return TTerm{kind: KindPred, pred: pred, args: args}
}

// Neg builds the negation of a pure term.
func Neg(t term.Term) TTerm { return TTerm{kind: KindNeg, t: t} }

// Pure builds a bare-term top term.
func Pure(t term.Term) TTerm { return TTerm{kind: KindTerm, t: t} }

// Kind reports which variant this top term is.
func (t TTerm) Kind() Kind { return t.kind }

// PredApp returns the predicate and arguments, if this is a predicate
// application.
func (t TTerm) PredApp() (idx.Pred, []term.Term, bool) {
	if t.kind != KindPred {
		return 0, nil, false
	}
	return t.pred, t.args, true
}

// Term returns the underlying pure/negated term, if this is not a
// predicate application.
func (t TTerm) Term() (term.Term, bool) {
	if t.kind == KindPred {
		return term.Term{}, false
	}
	return t.t, true
}

// IsTrue reports whether the top term is equivalent to `true`:
// T(⊤) or N(⊥).
func (t TTerm) IsTrue() bool {
	switch t.kind {
	case KindNeg:
		return t.t.IsFalse()
	case KindTerm:
		return t.t.IsTrue()
	default:
		return false
	}
}

// IsFalse reports whether the top term is equivalent to `false`:
// T(⊥) or N(⊤).
func (t TTerm) IsFalse() bool {
	switch t.kind {
	case KindNeg:
		return t.t.IsTrue()
	case KindTerm:
		return t.t.IsFalse()
	default:
		return false
	}
}

// WritePred renders a predicate application given its arguments
// (already through WriteVar, if the caller wants variable names — the
// arguments are raw terms so callers decide how to render them).
type WritePred func(w io.Writer, pred idx.Pred, args []term.Term) error

// Write renders a top term using injected var/predicate printers, so
// the term layer stays agnostic of where names come from: clause
// printing uses the clause's own variable names, SMT printing
// materializes predicates from a candidate model.
func (t TTerm) Write(w io.Writer, writeVar term.WriteVar, writePred WritePred) error {
	switch t.kind {
	case KindPred:
		return writePred(w, t.pred, t.args)
	case KindNeg:
		if _, err := io.WriteString(w, "(not "); err != nil {
			return err
		}
		if err := t.t.Write(w, writeVar); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	default:
		return t.t.Write(w, writeVar)
	}
}

func (t TTerm) String() string {
	var b strings.Builder
	_ = t.Write(&b, func(w io.Writer, v idx.Var) error {
		_, err := fmt.Fprintf(w, "%s", v)
		return err
	}, func(w io.Writer, pred idx.Pred, args []term.Term) error {
		if _, err := fmt.Fprintf(w, "(%s", pred); err != nil {
			return err
		}
		for _, a := range args {
			if _, err := fmt.Fprintf(w, " %s", a); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	})
	return b.String()
}
