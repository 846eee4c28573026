package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypParse(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want Typ
		ok   bool
	}{
		{"int", "Int", Int, true},
		{"bool", "Bool", Bool, true},
		{"unknown", "Address", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.tok)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTypDefault(t *testing.T) {
	i := Int.Default()
	n, ok, err := i.ToInt()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, n.Sign())

	b := Bool.Default()
	v, ok, err := b.ToBool()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, v)
}

func TestValueToBoolWrongTag(t *testing.T) {
	_, _, err := I(big.NewInt(1)).ToBool()
	require.Error(t, err)
}

func TestValueToIntWrongTag(t *testing.T) {
	_, _, err := B(true).ToInt()
	require.Error(t, err)
}

func TestUnknownPropagatesThroughExtraction(t *testing.T) {
	_, ok, err := N().ToBool()
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = N().ToInt()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	require.True(t, I(big.NewInt(3)).Equal(I(big.NewInt(3))))
	require.False(t, I(big.NewInt(3)).Equal(I(big.NewInt(4))))
	require.False(t, I(big.NewInt(3)).Equal(B(true)))
	require.True(t, N().Equal(N()))
}

func TestValueString(t *testing.T) {
	require.Equal(t, "true", B(true).String())
	require.Equal(t, "7", I(big.NewInt(7)).String())
	require.Equal(t, "?", N().String())
}
