package symbols

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariableSymbolIdentity(t *testing.T) {
	a := NewVariableSymbol("x", Int, false, LocalVariable)
	b := NewVariableSymbol("x", Int, false, LocalVariable)

	require.NotSame(t, a, b, "two symbols with the same name must remain distinct bindings")
	require.Equal(t, LocalVariable, a.Kind())
	require.False(t, a.IsReadOnly)
}

func TestFunctionSymbolKind(t *testing.T) {
	fn := NewFunctionSymbol("f", nil, Void)
	require.Equal(t, Function, fn.Kind())
}

func TestBoundLabelsWithSameNameAreDistinct(t *testing.T) {
	l1 := NewBoundLabel("loopEnd")
	l2 := NewBoundLabel("loopEnd")
	require.NotSame(t, l1, l2)
	require.Equal(t, Label, l1.Kind())
}
