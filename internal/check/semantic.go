package check

import (
	"bytes"
	"fmt"

	"chc/internal/idx"
	"chc/internal/instance"
)

// AttachCandidates forces every predicate a .sol solution defines into
// inst's predicate table, after renaming the definition's own
// parameter names onto the predicate's canonical 0..arity-1 variable
// indices. This is the substitution half of §4.7's semantic check: once
// every predicate a clause mentions has a forced term, the clause can
// be embedded for an external solver via SMTObligations.
func AttachCandidates(inst *instance.Instance, out *Output) error {
	for _, def := range out.Defs {
		p, ok := inst.PredByName(def.Name)
		if !ok {
			return fmt.Errorf("check: solution defines undeclared predicate %q", def.Name)
		}
		info := inst.PredInfo(p)
		if len(def.Args) != len(info.Sig) {
			return fmt.Errorf("check: predicate %s: solution defines %d parameter(s), declared %d", def.Name, len(def.Args), len(info.Sig))
		}

		varIdx := make(map[string]idx.Var, len(def.Args))
		for i, a := range def.Args {
			varIdx[a.Name] = idx.Var(i)
		}
		predIdx := predIdxTable(inst)
		body, err := buildTerm(inst, predIdx, varIdx, def.Body)
		if err != nil {
			return fmt.Errorf("check: predicate %s: %w", def.Name, err)
		}
		if err := inst.ForcePred(p, body); err != nil {
			return err
		}
	}
	return nil
}

func predIdxTable(inst *instance.Instance) map[string]idx.Pred {
	table := make(map[string]idx.Pred, inst.NumPreds())
	for i := 0; i < inst.NumPreds(); i++ {
		p := idx.Pred(i)
		table[inst.PredInfo(p).Name] = p
	}
	return table
}

// SMTObligations renders the negated-implication SMT embedding for
// every clause in inst (§4.4's WriteSMT, with inst itself as the
// candidate map). A clause whose lhs/rhs mentions a predicate with no
// forced term fails here — callers only ask for obligations after
// AttachCandidates has covered every predicate the solution claims to
// define.
func SMTObligations(inst *instance.Instance) ([]string, error) {
	obligations := make([]string, 0, inst.NumClauses())
	for _, c := range inst.Clauses() {
		var buf bytes.Buffer
		if err := c.WriteSMT(&buf, inst); err != nil {
			return nil, err
		}
		obligations = append(obligations, buf.String())
	}
	return obligations, nil
}
