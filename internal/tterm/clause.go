package tterm

import (
	"fmt"
	"io"
	"strings"

	"chc/internal/idx"
	"chc/internal/term"
)

// Clause is a Horn clause: a variable context, an ordered antecedent
// list, and a consequent. Every VarIdx occurring in Lhs/Rhs must be in
// range for Vars; every PrdIdx must be in range for the owning
// instance; each predicate application's argument count must equal
// the predicate's declared arity. The instance layer enforces these at
// construction — Clause itself is a plain carrier.
type Clause struct {
	vars []VarInfo
	lhs  []TTerm
	rhs  TTerm
}

// NewClause builds a clause from its parts.
func NewClause(vars []VarInfo, lhs []TTerm, rhs TTerm) Clause {
	return Clause{vars: vars, lhs: lhs, rhs: rhs}
}

// Vars returns the clause's variable context.
func (c Clause) Vars() []VarInfo { return c.vars }

// Lhs returns the antecedent top terms.
func (c Clause) Lhs() []TTerm { return c.lhs }

// Rhs returns the consequent top term.
func (c Clause) Rhs() TTerm { return c.rhs }

// VarName looks up a variable's declared name by index.
func (c Clause) VarName(v idx.Var) string {
	if int(v) < 0 || int(v) >= len(c.vars) {
		return fmt.Sprintf("v%d", int(v))
	}
	return c.vars[v].Name
}

func (c Clause) writeVar(w io.Writer, v idx.Var) error {
	_, err := io.WriteString(w, c.VarName(v))
	return err
}

// Write prints the clause as
//
//	(clause ((v Typ)*) (lhs-t-terms...) rhs-t-term)
//
// using the `clause` keyword of the .hc grammar, written here as a
// string literal (the check package's grammar spells it the same way
// in its struct tags).
func (c Clause) Write(w io.Writer, writePred WritePred) error {
	if _, err := io.WriteString(w, "(clause\n  ("); err != nil {
		return err
	}
	for _, v := range c.vars {
		if _, err := fmt.Fprintf(w, " (%s %s)", v.Name, v.Typ); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, " )\n  "); err != nil {
		return err
	}
	if len(c.lhs) == 0 {
		if _, err := io.WriteString(w, "()"); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, "( "); err != nil {
			return err
		}
		for i, tt := range c.lhs {
			if i > 0 {
				if _, err := io.WriteString(w, "\n    "); err != nil {
					return err
				}
			}
			if err := tt.Write(w, c.writeVar, writePred); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n  )"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n  "); err != nil {
		return err
	}
	if err := c.rhs.Write(w, c.writeVar, writePred); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n)")
	return err
}

func (c Clause) String() string {
	var b strings.Builder
	_ = c.Write(&b, func(w io.Writer, pred idx.Pred, args []term.Term) error {
		if _, err := fmt.Fprintf(w, "(p%d", int(pred)); err != nil {
			return err
		}
		for _, a := range args {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
			if err := a.Write(w, c.writeVar); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	})
	return b.String()
}

// Candidates maps a predicate to its forced/candidate definition, if
// any. Used by WriteSMT to expand predicate applications.
type Candidates interface {
	TermOf(idx.Pred) (term.Term, bool)
}

// WriteSMT emits the negation of the implication `lhs => rhs` with
// every predicate application expanded through cands. Variables are
// rendered as `v<idx>`. The caller must only request this for clauses
// whose every lhs/rhs predicate application has a candidate in cands —
// this embedding has no representation for an unforced predicate.
func (c Clause) WriteSMT(w io.Writer, cands Candidates) error {
	writeVar := func(w io.Writer, v idx.Var) error {
		_, err := fmt.Fprintf(w, "v%d", int(v))
		return err
	}
	writePred := func(w io.Writer, pred idx.Pred, args []term.Term) error {
		body, ok := cands.TermOf(pred)
		if !ok {
			return fmt.Errorf("tterm: no candidate for predicate %s in SMT embedding", pred)
		}
		return body.Write(w, func(w io.Writer, paramPos idx.Var) error {
			if int(paramPos) < 0 || int(paramPos) >= len(args) {
				return fmt.Errorf("tterm: candidate for %s references parameter %s out of range", pred, paramPos)
			}
			return args[paramPos].Write(w, writeVar)
		})
	}

	if _, err := io.WriteString(w, "(not "); err != nil {
		return err
	}
	if len(c.lhs) > 0 {
		if _, err := io.WriteString(w, "(=> (and"); err != nil {
			return err
		}
		for _, lhs := range c.lhs {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
			if err := lhs.Write(w, writeVar, writePred); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ") "); err != nil {
			return err
		}
	}
	if err := c.rhs.Write(w, writeVar, writePred); err != nil {
		return err
	}
	if len(c.lhs) > 0 {
		if _, err := io.WriteString(w, ")"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}
