package learn

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"chc/internal/instance"
	"chc/internal/term"
	"chc/internal/tterm"
	"chc/internal/value"
)

type fakeSink struct {
	pos  []Sample
	neg  []Sample
	cstr []struct {
		ante []Sample
		cons *Sample
	}
}

func (s *fakeSink) StageRawPos(sample Sample) { s.pos = append(s.pos, sample) }
func (s *fakeSink) StageRawNeg(sample Sample) { s.neg = append(s.neg, sample) }
func (s *fakeSink) AddCstr(ante []Sample, cons *Sample) {
	s.cstr = append(s.cstr, struct {
		ante []Sample
		cons *Sample
	}{ante, cons})
}

// TestNegativeSampleScenario is testable-property scenario F: a clause
// with lhs [P{p,[x]}] and rhs T(false), cex [5], produces
// stage_raw_neg(p, [I(5)]).
func TestNegativeSampleScenario(t *testing.T) {
	in := instance.New()
	p := in.PushPred("p", []value.Typ{value.Int})
	vars := []tterm.VarInfo{{Name: "x", Idx: 0, Typ: value.Int}}
	v0 := in.Factory.Var(0)

	clause, err := in.NewClause(vars,
		[]tterm.TTerm{tterm.Pred(p, []term.Term{v0})},
		tterm.Pure(in.Factory.Bool(false)))
	require.NoError(t, err)
	cls := in.PushClause(clause)

	sink := &fakeSink{}
	err = Translate(in, Cexs{cls: {value.I(big.NewInt(5))}}, sink)
	require.NoError(t, err)

	require.Len(t, sink.neg, 1)
	require.Equal(t, p, sink.neg[0].Pred)
	require.Len(t, sink.neg[0].Args, 1)
	i, ok, _ := sink.neg[0].Args[0].ToInt()
	require.True(t, ok)
	require.Equal(t, "5", i.String())
	require.Empty(t, sink.pos)
	require.Empty(t, sink.cstr)
}

func TestPositiveSample(t *testing.T) {
	in := instance.New()
	p := in.PushPred("p", []value.Typ{value.Int})
	vars := []tterm.VarInfo{{Name: "x", Idx: 0, Typ: value.Int}}
	v0 := in.Factory.Var(0)

	clause, err := in.NewClause(vars, nil, tterm.Pred(p, []term.Term{v0}))
	require.NoError(t, err)
	cls := in.PushClause(clause)

	sink := &fakeSink{}
	require.NoError(t, Translate(in, Cexs{cls: {value.I(big.NewInt(3))}}, sink))

	require.Len(t, sink.pos, 1)
	require.Equal(t, p, sink.pos[0].Pred)
	require.Empty(t, sink.neg)
	require.Empty(t, sink.cstr)
}

func TestImplicationConstraint(t *testing.T) {
	in := instance.New()
	p := in.PushPred("p", []value.Typ{value.Int})
	q := in.PushPred("q", []value.Typ{value.Int})
	vars := []tterm.VarInfo{{Name: "x", Idx: 0, Typ: value.Int}}
	v0 := in.Factory.Var(0)

	clause, err := in.NewClause(vars,
		[]tterm.TTerm{tterm.Pred(p, []term.Term{v0})},
		tterm.Pred(q, []term.Term{v0}))
	require.NoError(t, err)
	cls := in.PushClause(clause)

	sink := &fakeSink{}
	require.NoError(t, Translate(in, Cexs{cls: {value.I(big.NewInt(1))}}, sink))

	require.Len(t, sink.cstr, 1)
	require.Len(t, sink.cstr[0].ante, 1)
	require.NotNil(t, sink.cstr[0].cons)
	require.Equal(t, q, sink.cstr[0].cons.Pred)
}

func TestUnsafeGround(t *testing.T) {
	in := instance.New()
	vars := []tterm.VarInfo{}

	clause, err := in.NewClause(vars, nil, tterm.Pure(in.Factory.Bool(false)))
	require.NoError(t, err)
	cls := in.PushClause(clause)

	sink := &fakeSink{}
	err = Translate(in, Cexs{cls: {}}, sink)
	require.Error(t, err)
	require.IsType(t, &UnsafeGroundError{}, err)
}
