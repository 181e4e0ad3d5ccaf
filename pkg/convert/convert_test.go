package convert

import (
	"testing"

	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/symbols"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		from   symbols.Type
		to     symbols.Type
		want   Classification
	}{
		{"identity", symbols.Int, symbols.Int, Classification{IsIdentity: true, Exists: true}},
		{"bool to int is implicit", symbols.Bool, symbols.Int, Classification{IsImplicit: true, Exists: true}},
		{"anything to object is implicit", symbols.Int, symbols.Object, Classification{IsImplicit: true, Exists: true}},
		{"int to bool is explicit", symbols.Int, symbols.Bool, Classification{IsExplicit: true, Exists: true}},
		{"anything to string is explicit", symbols.Int, symbols.String, Classification{IsExplicit: true, Exists: true}},
		{"string to int is explicit", symbols.String, symbols.Int, Classification{IsExplicit: true, Exists: true}},
		{"string to bool is explicit", symbols.String, symbols.Bool, Classification{IsExplicit: true, Exists: true}},
		{"bool to string is explicit", symbols.Bool, symbols.String, Classification{IsExplicit: true, Exists: true}},
		{"error never converts", symbols.Error, symbols.Int, Classification{}},
		{"never converts to error", symbols.Int, symbols.Error, Classification{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.from, tt.to)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConvertBoolAndIntRoundTrip(t *testing.T) {
	v, err := Convert(symbols.Int, true)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	v, err = Convert(symbols.Bool, int64(0))
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestConvertStringTrueFalseRule(t *testing.T) {
	v, err := Convert(symbols.Int, "true")
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	v, err = Convert(symbols.Int, "false")
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	v, err = Convert(symbols.Bool, "false")
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestConvertStringArbitraryToArithmeticFails(t *testing.T) {
	_, err := Convert(symbols.Int, "maybe")
	require.Error(t, err)
	var convErr *evalerror.Conversion
	require.ErrorAs(t, err, &convErr)
}

func TestConvertBoolAndIntToString(t *testing.T) {
	v, err := Convert(symbols.String, true)
	require.NoError(t, err)
	require.Equal(t, "true", v)

	v, err = Convert(symbols.String, int64(42))
	require.NoError(t, err)
	require.Equal(t, "42", v)
}

func TestConvertToObjectIsAlwaysIdentity(t *testing.T) {
	v, err := Convert(symbols.Object, int64(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}
