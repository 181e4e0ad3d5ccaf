package bound

import (
	"testing"

	"github.com/lhaig/vivian/pkg/symbols"
	"github.com/stretchr/testify/require"
)

func TestEntryPointPrefersMainAcrossTheWholeChain(t *testing.T) {
	mainFn := symbols.NewFunctionSymbol("main", nil, symbols.Void)
	older := NewProgram(nil, mainFn, nil, nil)

	scriptFn := symbols.NewFunctionSymbol("script", nil, symbols.Void)
	newer := NewProgram(older, nil, scriptFn, nil)

	require.Same(t, mainFn, newer.EntryPoint(), "a main declared earlier in the chain must still win over a later script")
}

func TestEntryPointFallsBackToMostRecentScript(t *testing.T) {
	oldScript := symbols.NewFunctionSymbol("oldScript", nil, symbols.Void)
	older := NewProgram(nil, nil, oldScript, nil)

	newScript := symbols.NewFunctionSymbol("newScript", nil, symbols.Void)
	newer := NewProgram(older, nil, newScript, nil)

	require.Same(t, newScript, newer.EntryPoint())
}

func TestEntryPointNilWhenChainHasNeither(t *testing.T) {
	program := NewProgram(nil, nil, nil, nil)
	require.Nil(t, program.EntryPoint())
}

func TestFunctionTableLaterShadowsEarlierBySymbolIdentity(t *testing.T) {
	greet := symbols.NewFunctionSymbol("greet", nil, symbols.Void)
	oldBody := NewBlockStatement(nil)
	older := NewProgram(nil, nil, nil, map[*symbols.FunctionSymbol]*BoundFunction{
		greet: {Symbol: greet, Body: oldBody},
	})

	newBody := NewBlockStatement(nil)
	newer := NewProgram(older, nil, nil, map[*symbols.FunctionSymbol]*BoundFunction{
		greet: {Symbol: greet, Body: newBody},
	})

	table := newer.FunctionTable()
	require.Same(t, newBody, table[greet].Body)
}

func TestFunctionTableDistinctSymbolsWithSameNameDoNotShadow(t *testing.T) {
	greetA := symbols.NewFunctionSymbol("greet", nil, symbols.Void)
	greetB := symbols.NewFunctionSymbol("greet", nil, symbols.Void)
	bodyA := NewBlockStatement(nil)
	bodyB := NewBlockStatement(nil)

	older := NewProgram(nil, nil, nil, map[*symbols.FunctionSymbol]*BoundFunction{
		greetA: {Symbol: greetA, Body: bodyA},
	})
	newer := NewProgram(older, nil, nil, map[*symbols.FunctionSymbol]*BoundFunction{
		greetB: {Symbol: greetB, Body: bodyB},
	})

	table := newer.FunctionTable()
	require.Len(t, table, 2)
	require.Same(t, bodyA, table[greetA].Body)
	require.Same(t, bodyB, table[greetB].Body)
}
