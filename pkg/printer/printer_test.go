package printer

import (
	"strings"
	"testing"

	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/symbols"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, node bound.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, WriteTo(&b, node))
	return b.String()
}

// TestPrecedenceParenthesizesOnlyWhereRequired is spec.md §8 S6: the
// same operators in a different shape must render with parentheses
// exactly where they are structurally required, and nowhere else.
func TestPrecedenceParenthesizesOnlyWhereRequired(t *testing.T) {
	a := symbols.NewVariableSymbol("a", symbols.Int, false, symbols.GlobalVariable)
	b := symbols.NewVariableSymbol("b", symbols.Int, false, symbols.GlobalVariable)
	c := symbols.NewVariableSymbol("c", symbols.Int, false, symbols.GlobalVariable)

	mul := bound.NewBinary(bound.NewVariableExpression(b), symbols.OpMultiply, bound.NewVariableExpression(c), symbols.Int)
	noParens := bound.NewBinary(bound.NewVariableExpression(a), symbols.OpAdd, mul, symbols.Int)
	require.Equal(t, "a + b * c", render(t, noParens))

	add := bound.NewBinary(bound.NewVariableExpression(a), symbols.OpAdd, bound.NewVariableExpression(b), symbols.Int)
	needsParens := bound.NewBinary(add, symbols.OpMultiply, bound.NewVariableExpression(c), symbols.Int)
	require.Equal(t, "(a + b) * c", render(t, needsParens))
}

func TestLiteralRendering(t *testing.T) {
	require.Equal(t, "true", render(t, bound.NewLiteral(true, symbols.Bool)))
	require.Equal(t, "42", render(t, bound.NewLiteral(int64(42), symbols.Int)))
	require.Equal(t, `"hi"`, render(t, bound.NewLiteral("hi", symbols.String)))
	require.Equal(t, `"say ""hi"""`, render(t, bound.NewLiteral(`say "hi"`, symbols.String)))
}

func TestConversionRendersAsLowercaseTypeCall(t *testing.T) {
	conv := bound.NewConversion(symbols.String, bound.NewLiteral(true, symbols.Bool))
	require.Equal(t, "string(true)", render(t, conv))
}

func TestBlockStatementIndentation(t *testing.T) {
	x := symbols.NewVariableSymbol("x", symbols.Int, false, symbols.LocalVariable)
	block := bound.NewBlockStatement([]bound.Statement{
		bound.NewVariableDeclaration(x, bound.NewLiteral(int64(1), symbols.Int)),
	})
	want := "{\n    imply x = 1\n}\n"
	require.Equal(t, want, render(t, block))
}

func TestWhileStatementPrettyPrinting(t *testing.T) {
	i := symbols.NewVariableSymbol("i", symbols.Int, false, symbols.LocalVariable)
	cond := bound.NewBinary(bound.NewVariableExpression(i), symbols.OpLess, bound.NewLiteral(int64(3), symbols.Int), symbols.Bool)
	body := bound.NewBlockStatement([]bound.Statement{
		bound.NewExpressionStatement(bound.NewAssignment(i, bound.NewBinary(bound.NewVariableExpression(i), symbols.OpAdd, bound.NewLiteral(int64(1), symbols.Int), symbols.Int))),
	})
	loop := bound.NewWhileStatement(cond, body)

	got := render(t, loop)
	require.True(t, strings.HasPrefix(got, "while i < 3 {\n"))
	require.Contains(t, got, "i = i + 1")
}

func TestForRangeHeaderRecognizesUpperBoundShape(t *testing.T) {
	i := symbols.NewVariableSymbol("i", symbols.Int, false, symbols.LocalVariable)
	init := bound.NewVariableDeclaration(i, bound.NewLiteral(int64(0), symbols.Int))
	cond := bound.NewBinary(bound.NewVariableExpression(i), symbols.OpLessOrEqual, bound.NewLiteral(int64(10), symbols.Int), symbols.Bool)
	body := bound.NewBlockStatement(nil)
	loop := bound.NewForStatement(init, cond, nil, body)

	got := render(t, loop)
	require.True(t, strings.HasPrefix(got, "for i = 0 to 10 {"))
}

func TestGotoAndLabelRendering(t *testing.T) {
	label := symbols.NewBoundLabel("done")
	block := bound.NewBlockStatement([]bound.Statement{
		bound.NewGotoStatement(label),
		bound.NewLabelStatement(label),
	})
	got := render(t, block)
	require.Contains(t, got, "goto done")
	require.Contains(t, got, "done:")
}

func TestConditionalGotoRendering(t *testing.T) {
	label := symbols.NewBoundLabel("target")
	cond := bound.NewLiteral(true, symbols.Bool)

	jumpIf := render(t, bound.NewConditionalGotoStatement(label, cond, true))
	require.Equal(t, "goto target if true\n", jumpIf)

	jumpUnless := render(t, bound.NewConditionalGotoStatement(label, cond, false))
	require.Equal(t, "goto target unless true\n", jumpUnless)
}
