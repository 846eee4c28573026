package op

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"chc/internal/value"
)

func i(n int64) value.Value { return value.I(big.NewInt(n)) }

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		tok string
		op  Op
	}{
		{"+", Add}, {"-", Sub}, {"*", Mul}, {"/", Div}, {"mod", Mod},
		{">", Gt}, {">=", Ge}, {"<=", Le}, {"<", Lt},
		{"=>", Impl}, {"=", Eql}, {"not", Not}, {"and", And}, {"or", Or},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := Parse(tt.tok)
			require.True(t, ok)
			require.Equal(t, tt.op, got)
			require.Equal(t, tt.tok, got.String())
		})
	}
}

func TestParseUnknownToken(t *testing.T) {
	_, ok := Parse("xor")
	require.False(t, ok)
}

func TestEvalArithmetic(t *testing.T) {
	v, err := Add.Eval([]value.Value{i(2), i(3), i(4)})
	require.NoError(t, err)
	n, _, _ := v.ToInt()
	require.Equal(t, int64(9), n.Int64())

	v, err = Sub.Eval([]value.Value{i(5)})
	require.NoError(t, err)
	n, _, _ = v.ToInt()
	require.Equal(t, int64(-5), n.Int64())
}

func TestEvalModFloorSign(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		expected int64
	}{
		{"positive", 7, 3, 1},
		{"negative dividend floors toward divisor sign", -7, 3, 2},
		{"negative divisor floors toward divisor sign", 7, -3, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Mod.Eval([]value.Value{i(tt.a), i(tt.b)})
			require.NoError(t, err)
			n, ok, err := v.ToInt()
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, tt.expected, n.Int64())
		})
	}
}

func TestEvalRelationalChainShortCircuitsOnUnknown(t *testing.T) {
	v, err := Gt.Eval([]value.Value{i(5), value.N(), i(1)})
	require.NoError(t, err)
	require.True(t, v.IsUnknown())
}

func TestEvalArityError(t *testing.T) {
	_, err := Not.Eval([]value.Value{i(1), i(2)})
	require.Error(t, err)
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
}

func TestEvalImplTrueWhenAntecedentFalseEvenIfConsequentUnknown(t *testing.T) {
	v, err := Impl.Eval([]value.Value{value.B(false), value.N()})
	require.NoError(t, err)
	b, ok, err := v.ToBool()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, b)
}

func TestEvalAndShortCircuitsOnFalseEvenWithUnknownSibling(t *testing.T) {
	v, err := And.Eval([]value.Value{value.B(false), value.N()})
	require.NoError(t, err)
	b, ok, err := v.ToBool()
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, b)
}

func TestEvalTypeMismatch(t *testing.T) {
	_, err := Not.Eval([]value.Value{i(1)})
	require.Error(t, err)
}
