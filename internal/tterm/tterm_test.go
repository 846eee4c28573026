package tterm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"chc/internal/idx"
	"chc/internal/term"
)

func TestTTermIsTrueIsFalse(t *testing.T) {
	f := term.NewFactory()

	require.True(t, Pure(f.Bool(true)).IsTrue())
	require.False(t, Pure(f.Bool(true)).IsFalse())
	require.True(t, Pure(f.Bool(false)).IsFalse())

	require.True(t, Neg(f.Bool(false)).IsTrue())
	require.True(t, Neg(f.Bool(true)).IsFalse())

	// A predicate application is never trivially true or false.
	p := Pred(idx.Pred(0), nil)
	require.False(t, p.IsTrue())
	require.False(t, p.IsFalse())
}

func TestTTermPredAppAndTerm(t *testing.T) {
	f := term.NewFactory()
	args := []term.Term{f.IntN(1), f.IntN(2)}
	pt := Pred(idx.Pred(3), args)

	pred, got, ok := pt.PredApp()
	require.True(t, ok)
	require.Equal(t, idx.Pred(3), pred)
	require.Equal(t, args, got)
	_, ok = pt.Term()
	require.False(t, ok)

	pure := Pure(f.IntN(5))
	_, _, ok = pure.PredApp()
	require.False(t, ok)
	tm, ok := pure.Term()
	require.True(t, ok)
	n, _ := tm.IntVal()
	require.Equal(t, int64(5), n.Int64())
}

func TestClauseStringRendersNamesAndRhs(t *testing.T) {
	f := term.NewFactory()
	vars := []VarInfo{{Name: "x", Idx: 0}, {Name: "y", Idx: 1}}
	gt := Pure(f.Gt(f.Var(0), f.Var(1)))
	rhs := Pred(idx.Pred(0), []term.Term{f.Var(0), f.Var(1)})
	c := NewClause(vars, []TTerm{gt}, rhs)

	s := c.String()
	require.Contains(t, s, "x")
	require.Contains(t, s, "y")
	require.Contains(t, s, "clause")
}

func TestClauseWriteSMTWrapsImplicationWithCandidates(t *testing.T) {
	f := term.NewFactory()
	vars := []VarInfo{{Name: "x", Idx: 0}}
	lhs := Pred(idx.Pred(0), []term.Term{f.Var(0)})
	rhs := Pure(f.Ge(f.Var(0), f.Zero()))
	c := NewClause(vars, []TTerm{lhs}, rhs)

	cands := fakeCandidates{idx.Pred(0): f.Ge(f.Var(0), f.Zero())}
	var buf strings.Builder
	err := c.WriteSMT(&buf, cands)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "(not (=> (and")
}

func TestClauseWriteSMTEmptyLhsHasNoAnd(t *testing.T) {
	f := term.NewFactory()
	rhs := Pure(f.Bool(true))
	c := NewClause(nil, nil, rhs)

	var buf strings.Builder
	err := c.WriteSMT(&buf, fakeCandidates{})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "=>")
}

func TestClauseWriteSMTMissingCandidateErrors(t *testing.T) {
	f := term.NewFactory()
	rhs := Pred(idx.Pred(9), []term.Term{f.Zero()})
	c := NewClause(nil, nil, rhs)

	var buf strings.Builder
	err := c.WriteSMT(&buf, fakeCandidates{})
	require.Error(t, err)
}

type fakeCandidates map[idx.Pred]term.Term

func (f fakeCandidates) TermOf(p idx.Pred) (term.Term, bool) {
	t, ok := f[p]
	return t, ok
}
