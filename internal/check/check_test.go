package check

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"chc/internal/value"
)

// TestParseScenarioD is testable-property scenario D: parsing
// `(declare-pred p (Int Int)) (clause ((x Int)(y Int)) ((> x y)) (p x y)) (infer)`
// yields one predicate of arity 2, one clause with lhs [T((> x y))]
// and rhs P{p, [x, y]}.
func TestParseScenarioD(t *testing.T) {
	src := `(declare-pred p (Int Int))
(clause ((x Int)(y Int)) ((> x y)) (p x y))
(infer)`

	in, err := ParseInput("scenario-d.hc", src)
	require.NoError(t, err)
	require.Len(t, in.Preds, 1)
	require.Equal(t, "p", in.Preds[0].Name)
	require.Equal(t, []string{"Int", "Int"}, in.Preds[0].Sig)
	require.Len(t, in.Clauses, 1)
	require.True(t, in.Infer)

	inst, err := Build(in)
	require.NoError(t, err)
	require.Equal(t, 2, inst.MaxPredArity())
	require.Equal(t, 1, inst.NumClauses())

	clause := inst.Clause(0)
	require.Len(t, clause.Lhs(), 1)
	_, _, isPred := clause.Lhs()[0].PredApp()
	require.False(t, isPred)
	require.Contains(t, clause.String(), "> x y")

	pred, args, ok := clause.Rhs().PredApp()
	require.True(t, ok)
	p, found := inst.PredByName("p")
	require.True(t, found)
	require.Equal(t, p, pred)
	require.Len(t, args, 2)
}

func TestParseRejectsUndeclaredPredicate(t *testing.T) {
	src := `(clause ((x Int)) () (q x))
(infer)`
	in, err := ParseInput("bad.hc", src)
	require.NoError(t, err)

	_, err = Build(in)
	require.Error(t, err)
}

func TestParseAcceptsPipeQuotedIdentifiers(t *testing.T) {
	src := `(declare-pred |my pred| (Int))
(clause ((|x 0| Int)) () (|my pred| |x 0|))
(infer)`
	in, err := ParseInput("quoted.hc", src)
	require.NoError(t, err)
	require.Equal(t, "|my pred|", in.Preds[0].Name)

	inst, err := Build(in)
	require.NoError(t, err)
	_, found := inst.PredByName("|my pred|")
	require.True(t, found)
}

func TestModFloorScenario(t *testing.T) {
	src := `(clause () () (= (mod 7 3) 1))
(infer)`
	in, err := ParseInput("mod.hc", src)
	require.NoError(t, err)

	inst, err := Build(in)
	require.NoError(t, err)

	clause := inst.Clause(0)
	rhsTerm, ok := clause.Rhs().Term()
	require.True(t, ok)

	v, err := rhsTerm.Eval(nil)
	require.NoError(t, err)
	b, defined, err := v.ToBool()
	require.NoError(t, err)
	require.True(t, defined)
	require.True(t, b)
}

func TestAttachCandidatesAndSMTObligations(t *testing.T) {
	src := `(declare-pred p (Int))
(clause () () (p 0))
(clause ((x Int)) ((p x)) (p (+ x 1)))
(infer)`
	in, err := ParseInput("rec.hc", src)
	require.NoError(t, err)
	inst, err := Build(in)
	require.NoError(t, err)

	sol := `(safe (define-pred p ((v Int)) (>= v 0)))`
	out, err := ParseOutput("rec.sol", sol)
	require.NoError(t, err)

	require.NoError(t, AttachCandidates(inst, out))

	p, ok := inst.PredByName("p")
	require.True(t, ok)
	body, ok := inst.TermOf(p)
	require.True(t, ok)
	v, err := body.Eval([]value.Value{value.I(big.NewInt(5))})
	require.NoError(t, err)
	b, defined, _ := v.ToBool()
	require.True(t, defined)
	require.True(t, b)

	obligations, err := SMTObligations(inst)
	require.NoError(t, err)
	require.Len(t, obligations, 2)
	for _, o := range obligations {
		require.Contains(t, o, "(not")
	}
}
