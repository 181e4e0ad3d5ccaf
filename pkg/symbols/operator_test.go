package symbols

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedOperatorCarriesResultType(t *testing.T) {
	require.NotNil(t, OpAdd.Type)
	require.True(t, OpAdd.Type.Equal(Int))
	require.Equal(t, Add, OpAdd.Kind)
}

func TestPolymorphicOperatorHasNilType(t *testing.T) {
	require.Nil(t, OpAddPoly.Type)
	require.Equal(t, Add, OpAddPoly.Kind)
}

func TestIsAdditive(t *testing.T) {
	require.True(t, IsAdditive(Add))
	require.False(t, IsAdditive(Subtract))
	require.False(t, IsAdditive(Multiply))
}
