package check

import (
	"fmt"
	"math/big"

	"chc/internal/idx"
	"chc/internal/instance"
	"chc/internal/op"
	"chc/internal/term"
	"chc/internal/tterm"
	"chc/internal/value"
)

// Build compiles a parsed .hc Input into an Instance: every predicate
// declaration becomes a PushPred call, and every clause is resolved
// (variable names to VarIdx, predicate names to PrdIdx, operator
// tokens to op.Op) and pushed through Instance.NewClause so the usual
// arity/range invariants are checked at construction time.
func Build(in *Input) (*instance.Instance, error) {
	inst := instance.New()
	predIdx := make(map[string]idx.Pred, len(in.Preds))

	for _, pd := range in.Preds {
		sig := make([]value.Typ, len(pd.Sig))
		for i, tok := range pd.Sig {
			typ, ok := value.Parse(tok)
			if !ok {
				return nil, fmt.Errorf("check: predicate %s: unknown type %q", pd.Name, tok)
			}
			sig[i] = typ
		}
		predIdx[pd.Name] = inst.PushPred(pd.Name, sig)
	}

	for _, c := range in.Clauses {
		if _, err := buildClause(inst, predIdx, c); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

func buildClause(inst *instance.Instance, predIdx map[string]idx.Pred, c *Clause) (idx.Cls, error) {
	vars := make([]tterm.VarInfo, len(c.Vars))
	varIdx := make(map[string]idx.Var, len(c.Vars))
	for i, vd := range c.Vars {
		typ, ok := value.Parse(vd.Typ)
		if !ok {
			return 0, fmt.Errorf("check: variable %s: unknown type %q", vd.Name, vd.Typ)
		}
		vars[i] = tterm.VarInfo{Name: vd.Name, Idx: idx.Var(i), Typ: typ}
		varIdx[vd.Name] = idx.Var(i)
	}

	lhs := make([]tterm.TTerm, len(c.Lhs))
	for i, e := range c.Lhs {
		tt, err := buildTTerm(inst, predIdx, varIdx, e)
		if err != nil {
			return 0, err
		}
		lhs[i] = tt
	}

	rhs, err := buildTTerm(inst, predIdx, varIdx, c.Rhs)
	if err != nil {
		return 0, err
	}

	clause, err := inst.NewClause(vars, lhs, rhs)
	if err != nil {
		return 0, err
	}
	return inst.PushClause(clause), nil
}

// buildTTerm classifies a clause-level s_expr: a list whose head is a
// declared predicate name becomes a predicate application; everything
// else is a pure term.
func buildTTerm(inst *instance.Instance, predIdx map[string]idx.Pred, varIdx map[string]idx.Var, e *SExpr) (tterm.TTerm, error) {
	if head, ok := e.head(); ok {
		if p, isPred := predIdx[head]; isPred {
			info := inst.PredInfo(p)
			args := e.List[1:]
			if len(args) != len(info.Sig) {
				return tterm.TTerm{}, fmt.Errorf("check: predicate %s applied to %d argument(s), expected %d", head, len(args), len(info.Sig))
			}
			terms := make([]term.Term, len(args))
			for i, a := range args {
				t, err := buildTerm(inst, predIdx, varIdx, a)
				if err != nil {
					return tterm.TTerm{}, err
				}
				terms[i] = t
			}
			return tterm.Pred(p, terms), nil
		}
	}
	t, err := buildTerm(inst, predIdx, varIdx, e)
	if err != nil {
		return tterm.TTerm{}, err
	}
	return tterm.Pure(t), nil
}

// buildTerm compiles an s_expr appearing in term position (never a
// predicate application: predicates only ever occur at the top of a
// clause's lhs/rhs, never nested inside a term).
func buildTerm(inst *instance.Instance, predIdx map[string]idx.Pred, varIdx map[string]idx.Var, e *SExpr) (term.Term, error) {
	switch {
	case e.Num != "":
		n, ok := new(big.Int).SetString(e.Num, 10)
		if !ok {
			return term.Term{}, fmt.Errorf("check: malformed integer literal %q", e.Num)
		}
		t := inst.Factory.Int(n)
		inst.NoteConst(t)
		return t, nil
	case e.Ident != "":
		switch e.Ident {
		case "true":
			return inst.Factory.Bool(true), nil
		case "false":
			return inst.Factory.Bool(false), nil
		}
		v, ok := varIdx[e.Ident]
		if !ok {
			return term.Term{}, fmt.Errorf("check: undefined variable %q", e.Ident)
		}
		return inst.Factory.Var(v), nil
	case e.Op != "":
		return term.Term{}, fmt.Errorf("check: operator %q used as a bare term", e.Op)
	default:
		head, ok := e.head()
		if !ok {
			return term.Term{}, fmt.Errorf("check: empty term list")
		}
		if _, isPred := predIdx[head]; isPred {
			return term.Term{}, fmt.Errorf("check: predicate %s applied inside a term", head)
		}
		o, ok := op.Parse(head)
		if !ok {
			return term.Term{}, fmt.Errorf("check: unknown operator %q", head)
		}
		args := e.List[1:]
		terms := make([]term.Term, len(args))
		for i, a := range args {
			t, err := buildTerm(inst, predIdx, varIdx, a)
			if err != nil {
				return term.Term{}, err
			}
			terms[i] = t
		}
		return inst.Op(o, terms), nil
	}
}
