package bound

import (
	"testing"

	"github.com/lhaig/vivian/pkg/symbols"
	"github.com/stretchr/testify/require"
)

func TestLiteralExprType(t *testing.T) {
	lit := NewLiteral(int64(3), symbols.Int)
	require.True(t, lit.ExprType().Equal(symbols.Int))
	require.Equal(t, KindLiteralExpression, lit.BoundKind())
}

func TestBinaryExpressionCarriesItsOwnResolvedType(t *testing.T) {
	left := NewLiteral(int64(1), symbols.Int)
	right := NewLiteral("x", symbols.String)
	bin := NewBinary(left, symbols.OpAddPoly, right, symbols.String)

	require.True(t, bin.ExprType().Equal(symbols.String))
	require.Nil(t, bin.Op.Type, "polymorphic operator descriptor itself carries no fixed type")
}

func TestCallExprTypeIsFunctionReturnType(t *testing.T) {
	fn := symbols.NewFunctionSymbol("f", nil, symbols.Int)
	call := NewCall(fn, nil)
	require.True(t, call.ExprType().Equal(symbols.Int))
}

func TestConversionExprTypeIsTargetType(t *testing.T) {
	conv := NewConversion(symbols.String, NewLiteral(int64(1), symbols.Int))
	require.True(t, conv.ExprType().Equal(symbols.String))
}
