// Package builtins declares the FunctionSymbol identities for Vivian's
// three built-in functions. Per spec.md §6, built-ins are resolved by
// FunctionSymbol identity, not by name — a CallExpression naming Print
// is routed to the built-in handler because Function == Print, the same
// *symbols.FunctionSymbol pointer the binder would have attached to any
// call site, never because Function.Name == "print".
package builtins

import "github.com/lhaig/vivian/pkg/symbols"

var (
	// Input reads one line from standard input and returns it, or the
	// empty string at end-of-stream.
	Input = symbols.NewFunctionSymbol("input", nil, symbols.String)

	// Print writes its argument's string conversion to standard output
	// followed by a line terminator.
	Print = symbols.NewFunctionSymbol("print", []*symbols.VariableSymbol{
		symbols.NewVariableSymbol("value", symbols.Object, true, symbols.Parameter),
	}, symbols.Void)

	// Rnd returns a uniformly random integer in [0, max).
	Rnd = symbols.NewFunctionSymbol("rnd", []*symbols.VariableSymbol{
		symbols.NewVariableSymbol("max", symbols.Int, true, symbols.Parameter),
	}, symbols.Int)
)

// All lists every built-in FunctionSymbol, for callers that need to build
// a call site against one (the demonstration driver, tests).
func All() []*symbols.FunctionSymbol {
	return []*symbols.FunctionSymbol{Input, Print, Rnd}
}

// Lookup reports whether fn is one of the built-in identities, returning
// it unchanged for chaining convenience.
func Lookup(fn *symbols.FunctionSymbol) (*symbols.FunctionSymbol, bool) {
	switch fn {
	case Input, Print, Rnd:
		return fn, true
	default:
		return nil, false
	}
}
