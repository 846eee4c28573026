// Package instance implements the Instance container: the predicate
// and clause arenas built on top of the term factory, with the
// construction-time invariants (coherent forcing, arity checking) that
// keep those arenas consistent.
package instance

import (
	"fmt"
	"strings"

	"chc/internal/idx"
	"chc/internal/op"
	"chc/internal/term"
	"chc/internal/tterm"
	"chc/internal/value"
)

// IncoherentForceError reports two conflicting force_pred calls on the
// same predicate (§7 IncoherentForce).
type IncoherentForceError struct {
	Pred idx.Pred
}

func (e *IncoherentForceError) Error() string {
	return fmt.Sprintf("instance: predicate %s already forced to a different term", e.Pred)
}

// PartialForcedTermError reports a forced predicate term evaluating to
// N under a supposedly complete model (§7 PartialForcedTerm).
type PartialForcedTermError struct {
	Pred idx.Pred
}

func (e *PartialForcedTermError) Error() string {
	return fmt.Sprintf("instance: forced term for predicate %s evaluated to an unknown value under a complete model", e.Pred)
}

// Instance owns the term factory and the dense predicate/clause
// arenas. It is the sole point of construction for clauses and
// predicates: both arenas only grow, except for forget_clause's
// explicitly documented swap-remove.
type Instance struct {
	Factory *term.Factory

	preds        []tterm.PrdInfo
	predsTerm    []*term.Term // nil entry == None (not yet forced)
	maxPredArity int

	clauses []tterm.Clause

	consts *term.Set
}

// New creates an empty instance, seeding the constants set with 0 and
// 1 the way hoice's Instance::mk does.
func New() *Instance {
	f := term.NewFactory()
	inst := &Instance{
		Factory: f,
		consts:  term.NewSet(),
	}
	inst.consts.Insert(f.Zero())
	inst.consts.Insert(f.One())
	return inst
}

// PushPred appends a predicate declaration, updating max_pred_arity
// and appending a None (unforced) slot to preds_term. Returns the new
// index.
func (in *Instance) PushPred(name string, sig []value.Typ) idx.Pred {
	p := idx.Pred(len(in.preds))
	in.preds = append(in.preds, tterm.PrdInfo{Name: name, Idx: p, Sig: sig})
	in.predsTerm = append(in.predsTerm, nil)
	if len(sig) > in.maxPredArity {
		in.maxPredArity = len(sig)
	}
	return p
}

// PredInfo returns the declared metadata for a predicate.
func (in *Instance) PredInfo(p idx.Pred) tterm.PrdInfo { return in.preds[p] }

// NumPreds returns the number of declared predicates.
func (in *Instance) NumPreds() int { return len(in.preds) }

// PredByName looks up a predicate by its declared name.
func (in *Instance) PredByName(name string) (idx.Pred, bool) {
	for _, info := range in.preds {
		if info.Name == name {
			return info.Idx, true
		}
	}
	return 0, false
}

// MaxPredArity returns the largest arity among declared predicates.
func (in *Instance) MaxPredArity() int { return in.maxPredArity }

// ForcePred sets preds_term[p]. Re-forcing with an identical term is
// idempotent; forcing with a different term than one already set fails
// with IncoherentForceError.
func (in *Instance) ForcePred(p idx.Pred, t term.Term) error {
	if existing := in.predsTerm[p]; existing != nil {
		if *existing == t {
			return nil
		}
		return &IncoherentForceError{Pred: p}
	}
	tc := t
	in.predsTerm[p] = &tc
	return nil
}

// TermOf returns the forced term for p, if any.
func (in *Instance) TermOf(p idx.Pred) (term.Term, bool) {
	if t := in.predsTerm[p]; t != nil {
		return *t, true
	}
	return term.Term{}, false
}

// EvalTermOf evaluates the forced term for p under model. It fails
// with PartialForcedTermError if the term evaluates to N: this method
// is only meaningful once model is known to be complete for the term.
func (in *Instance) EvalTermOf(p idx.Pred, model []value.Value) (bool, bool, error) {
	t, ok := in.TermOf(p)
	if !ok {
		return false, false, nil
	}
	b, defined, err := t.BoolEval(model)
	if err != nil {
		return false, false, err
	}
	if !defined {
		return false, false, &PartialForcedTermError{Pred: p}
	}
	return b, true, nil
}

// NewClause validates and builds a clause from its parts: every
// variable occurring in lhs/rhs terms must be in range for vars, and
// every predicate application's argument count must match the
// predicate's declared signature. This is the construction-time
// invariant checking spec.md §3 requires without naming a mechanism
// for; it uses term.Term.HighestVar to find the invariant violation
// without walking the term a second time by hand.
func (in *Instance) NewClause(vars []tterm.VarInfo, lhs []tterm.TTerm, rhs tterm.TTerm) (tterm.Clause, error) {
	checkTerm := func(t term.Term) error {
		if hi, ok := t.HighestVar(); ok && int(hi) >= len(vars) {
			return fmt.Errorf("instance: variable %s out of range for clause context of size %d", hi, len(vars))
		}
		return nil
	}
	checkTTerm := func(tt tterm.TTerm) error {
		if pred, args, ok := tt.PredApp(); ok {
			if int(pred) < 0 || int(pred) >= len(in.preds) {
				return fmt.Errorf("instance: predicate %s not declared", pred)
			}
			sig := in.preds[pred].Sig
			if len(args) != len(sig) {
				return fmt.Errorf("instance: predicate %s applied to %d argument(s), expected %d", pred, len(args), len(sig))
			}
			for _, a := range args {
				if err := checkTerm(a); err != nil {
					return err
				}
			}
			return nil
		}
		t, _ := tt.Term()
		return checkTerm(t)
	}

	for _, tt := range lhs {
		if err := checkTTerm(tt); err != nil {
			return tterm.Clause{}, err
		}
	}
	if err := checkTTerm(rhs); err != nil {
		return tterm.Clause{}, err
	}
	return tterm.NewClause(vars, lhs, rhs), nil
}

// PushClause appends an already-validated clause, returning its new
// index.
func (in *Instance) PushClause(c tterm.Clause) idx.Cls {
	i := idx.Cls(len(in.clauses))
	in.clauses = append(in.clauses, c)
	return i
}

// ForgetClause removes the clause at i by swap-remove: the last
// clause is moved into slot i, and the arena shrinks by one. This is
// explicitly NOT order-preserving — callers that key external state by
// ClsIdx must not cache an index across this call without
// re-validating it (§5).
func (in *Instance) ForgetClause(i idx.Cls) tterm.Clause {
	removed := in.clauses[i]
	last := len(in.clauses) - 1
	in.clauses[i] = in.clauses[last]
	in.clauses = in.clauses[:last]
	return removed
}

// Clause returns the clause at index i.
func (in *Instance) Clause(i idx.Cls) tterm.Clause { return in.clauses[i] }

// NumClauses returns the number of live clauses.
func (in *Instance) NumClauses() int { return len(in.clauses) }

// Clauses returns a read-only view over the live clauses, in their
// current (possibly swap-remove-shuffled) order.
func (in *Instance) Clauses() []tterm.Clause { return in.clauses }

// Consts exposes the set of integer constants known to the instance
// (seeded with 0 and 1, grown only through NoteConst).
func (in *Instance) Consts() *term.Set { return in.consts }

// NoteConst records t in the constants set if it is an integer
// literal. Neither Factory.Int nor the instance's operator sugar
// records constants; check.Build calls this for every integer literal
// it parses, and other callers call it explicitly to keep Consts()
// complete.
func (in *Instance) NoteConst(t term.Term) {
	if _, ok := t.IntVal(); ok {
		in.consts.Insert(t)
	}
}

// String renders a plain-text dump of every declared predicate and
// live clause, the non-SMT twin of Clause.WriteSMT (hoice's
// PebcakFmt instance printer). Used by cmd/chc-check's verbose mode.
func (in *Instance) String() string {
	var b strings.Builder
	for _, p := range in.preds {
		fmt.Fprintf(&b, "(declare-pred %s (", p.Name)
		for i, s := range p.Sig {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%s", s)
		}
		b.WriteString("))\n")
	}
	for _, c := range in.clauses {
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Le, Lt, Gt, Ge, Eq are sugar over the factory's operator builders,
// mirroring the binary relational convenience constructors hoice
// exposes directly on Instance.
func (in *Instance) Le(lhs, rhs term.Term) term.Term { return in.Factory.Le(lhs, rhs) }
func (in *Instance) Lt(lhs, rhs term.Term) term.Term { return in.Factory.Lt(lhs, rhs) }
func (in *Instance) Gt(lhs, rhs term.Term) term.Term { return in.Factory.Gt(lhs, rhs) }
func (in *Instance) Ge(lhs, rhs term.Term) term.Term { return in.Factory.Ge(lhs, rhs) }
func (in *Instance) Eq(lhs, rhs term.Term) term.Term { return in.Factory.Eq(lhs, rhs) }

// Op is sugar over the factory's general operator builder, exposed here
// so clause construction never needs to reach past the instance into
// the factory directly for anything but leaf constants.
func (in *Instance) Op(o op.Op, args []term.Term) term.Term { return in.Factory.Op(o, args) }

// Compact trims the backing clause/predicate slices to their current
// length. It mirrors hoice's Instance::shrink_to_fit and is a hook for
// preprocessing passes to call after a run of forget_clause calls; the
// core itself never calls this (preprocessing is an external
// collaborator).
func (in *Instance) Compact() {
	if len(in.clauses) < cap(in.clauses) {
		trimmed := make([]tterm.Clause, len(in.clauses))
		copy(trimmed, in.clauses)
		in.clauses = trimmed
	}
	if len(in.preds) < cap(in.preds) {
		trimmedPreds := make([]tterm.PrdInfo, len(in.preds))
		copy(trimmedPreds, in.preds)
		in.preds = trimmedPreds
	}
}

// ReductionInfo tallies the effect of a preprocessing pass: how many
// predicates were eliminated, how many clauses were removed, and how
// many were added. It mirrors hoice's RedInfo; nothing in this core
// mutates it, since preprocessing passes are an external collaborator
// — it exists so a pass built against this core has a ready-made
// accounting type to return.
type ReductionInfo struct {
	Preds        int
	ClausesRmed  int
	ClausesAdded int
}

// IsZero reports whether the reduction had no effect at all.
func (r ReductionInfo) IsZero() bool {
	return r.Preds == 0 && r.ClausesRmed == 0 && r.ClausesAdded == 0
}

// Add accumulates another reduction's counters into r.
func (r *ReductionInfo) Add(other ReductionInfo) {
	r.Preds += other.Preds
	r.ClausesRmed += other.ClausesRmed
	r.ClausesAdded += other.ClausesAdded
}
