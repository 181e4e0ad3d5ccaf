package symbols

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeEqual(t *testing.T) {
	require.True(t, Int.Equal(Int))
	require.False(t, Int.Equal(Bool))
	require.False(t, Int.Equal(String))
}

func TestCapabilityHas(t *testing.T) {
	require.True(t, Int.Is(Arithmetic))
	require.True(t, Int.Is(Comparable))
	require.False(t, Int.Is(Indexable))
	require.True(t, String.Is(Comparable))
	require.False(t, String.Is(Arithmetic))
	require.False(t, Object.Is(Arithmetic))
	require.False(t, Object.Is(Comparable))
}

func TestByKind(t *testing.T) {
	typ, ok := ByKind(KindInt)
	require.True(t, ok)
	require.True(t, typ.Equal(Int))

	_, ok = ByKind(Kind("NotAKind"))
	require.False(t, ok)
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name       string
		left       Type
		right      Type
		additive   bool
		wantResult Type
	}{
		{"identity", Int, Int, false, Int},
		{"bool and int arithmetic", Bool, Int, false, Int},
		{"string plus string stays string", String, String, true, String},
		{"int plus string is additive-promoted to string", Int, String, true, String},
		{"int plus string is an error when not additive", Int, String, false, Error},
		{"object has no promotion with int", Object, Int, true, Error},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Promotion(tt.left, tt.right, tt.additive)
			require.True(t, got.Equal(tt.wantResult), "got %s, want %s", got, tt.wantResult)
		})
	}
}
