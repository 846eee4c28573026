// Package learn implements the translation from counterexamples
// (one falsifying model per clause) into learning-data updates: the
// classification hoice's cexs_to_data performs before handing samples
// and implication constraints to the predicate learner.
package learn

import (
	"fmt"

	"chc/internal/idx"
	"chc/internal/instance"
	"chc/internal/term"
	"chc/internal/tterm"
	"chc/internal/value"
)

// Sample is a fully-evaluated predicate application: the predicate and
// the argument values a cex assigned to its parameters.
type Sample struct {
	Pred idx.Pred
	Args []value.Value
}

// Sink receives the learning-data updates a translation produces.
// stage_raw_pos/stage_raw_neg/add_cstr in the original map onto
// StageRawPos/StageRawNeg/AddCstr here.
type Sink interface {
	StageRawPos(sample Sample)
	StageRawNeg(sample Sample)
	AddCstr(antecedents []Sample, consequent *Sample)
}

// UnsafeGroundError reports a clause that reduced to an unsatisfied
// ground formula: zero antecedents and no consequent. The spec treats
// this as a genuine unsatisfiability witness rather than a sample (§9
// design note); callers that instead want a trivial-unsat result kind
// should inspect for this error type at the translation boundary.
type UnsafeGroundError struct {
	Clause idx.Cls
}

func (e *UnsafeGroundError) Error() string {
	return fmt.Sprintf("learn: clause %s reduced to an unsatisfied ground formula", e.Clause)
}

// Cexs maps a clause index to the falsifying model (one Value per
// clause variable) the teacher produced for it.
type Cexs map[idx.Cls][]value.Value

// Translate walks every (clause, cex) pair in cexs and stages the
// corresponding learning-data update on sink, per §4.6's
// classification rules. It returns as soon as any clause produces an
// UnsafeGroundError or any argument evaluation fails; partially staged
// updates from clauses processed before the failure are not undone —
// callers that need all-or-nothing semantics should snapshot sink
// first.
func Translate(inst *instance.Instance, cexs Cexs, sink Sink) error {
	for cls, model := range cexs {
		if err := translateOne(inst, cls, inst.Clause(cls), model, sink); err != nil {
			return err
		}
	}
	return nil
}

func translateOne(inst *instance.Instance, cls idx.Cls, clause tterm.Clause, model []value.Value, sink Sink) error {
	var antecedents []Sample
	for _, lhs := range clause.Lhs() {
		pred, args, ok := lhs.PredApp()
		if !ok {
			// T/N lhs atoms are already facts at this point; a false
			// one would have prevented this clause from producing a
			// cex in the first place, so there is nothing to stage.
			continue
		}
		if _, forced := inst.TermOf(pred); forced {
			continue
		}
		values, err := evalArgs(args, model)
		if err != nil {
			return fmt.Errorf("during argument evaluation to generate learning data: %w", err)
		}
		antecedents = append(antecedents, Sample{Pred: pred, Args: values})
	}

	var consequent *Sample
	if pred, args, ok := clause.Rhs().PredApp(); ok {
		values, err := evalArgs(args, model)
		if err != nil {
			return fmt.Errorf("during argument evaluation to generate learning data: %w", err)
		}
		consequent = &Sample{Pred: pred, Args: values}
	}

	switch {
	case len(antecedents) == 0 && consequent == nil:
		return &UnsafeGroundError{Clause: cls}
	case len(antecedents) == 1 && consequent == nil:
		sink.StageRawNeg(antecedents[0])
	case len(antecedents) == 0 && consequent != nil:
		sink.StageRawPos(*consequent)
	default:
		sink.AddCstr(antecedents, consequent)
	}
	return nil
}

func evalArgs(args []term.Term, model []value.Value) ([]value.Value, error) {
	values := make([]value.Value, len(args))
	for i, a := range args {
		v, err := a.Eval(model)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
