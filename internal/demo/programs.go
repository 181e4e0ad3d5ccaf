// Package demo builds the fixed set of named bound trees cmd/vivian
// dispatches against. It never parses source text — each program is
// assembled directly from pkg/bound and pkg/symbols constructors, the
// way a test or a REPL's previous binder output would hand them to the
// evaluator or printer. The scenario names mirror spec.md §8's S1-S6
// end-to-end walkthroughs, plus a few supplements exercising the
// previous-chain merge and call-depth ceiling described in
// SPEC_FULL.md §7.
package demo

import (
	"fmt"
	"sort"

	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/builtins"
	"github.com/lhaig/vivian/pkg/symbols"
)

// Program bundles a runnable bound.Program with the Globals table its
// GlobalVariable symbols live in, so a caller can Evaluate it without
// having to know which symbols the builder minted.
type Program struct {
	Tree    *bound.Program
	Globals map[*symbols.VariableSymbol]any
}

type builder func() Program

var registry = map[string]builder{
	"s1": buildS1,
	"s2": buildS2,
	"s3": buildS3,
	"s4": buildS4,
	"s5-string-true": buildS5StringTrue,
	"s5-int-false":   buildS5IntFalse,
	"s5-int-maybe":   buildS5IntMaybe,
	"chain":          buildChain,
	"deep-recursion": buildDeepRecursion,
}

var exprRegistry = map[string]func() bound.Expression{
	"s6a": buildS6A,
	"s6b": buildS6B,
}

// Names lists every runnable program name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExprNames lists every pretty-print-only expression name, sorted.
func ExprNames() []string {
	names := make([]string, 0, len(exprRegistry))
	for name := range exprRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up a runnable program by name.
func Build(name string) (Program, error) {
	b, ok := registry[name]
	if !ok {
		return Program{}, fmt.Errorf("demo: no such program %q (known: %v)", name, Names())
	}
	return b(), nil
}

// BuildExpr looks up a pretty-print-only expression by name.
func BuildExpr(name string) (bound.Expression, error) {
	b, ok := exprRegistry[name]
	if !ok {
		return nil, fmt.Errorf("demo: no such expression %q (known: %v)", name, ExprNames())
	}
	return b(), nil
}

// toObject wraps e in the Conversion every call site to `print` needs,
// since print's sole parameter is declared Object and CallExpression
// performs no implicit boxing of its own — the binder is responsible
// for inserting this node, so the demo builders stand in for it.
func toObject(e bound.Expression) bound.Expression {
	return bound.NewConversion(symbols.Object, e)
}

func printStmt(arg bound.Expression) bound.Statement {
	return bound.NewExpressionStatement(bound.NewCall(builtins.Print, []bound.Expression{toObject(arg)}))
}

func scriptProgram(name string, body *bound.BlockStatement) (*symbols.FunctionSymbol, *bound.Program) {
	script := symbols.NewFunctionSymbol(name, nil, symbols.Void)
	program := bound.NewProgram(nil, nil, script, map[*symbols.FunctionSymbol]*bound.BoundFunction{
		script: {Symbol: script, Body: body},
	})
	return script, program
}

// buildS1 is spec.md §8 S1: "imply x = 2 + 3 * 4; print(x)", evaluating
// to 14 by the standard precedence table.
func buildS1() Program {
	x := symbols.NewVariableSymbol("x", symbols.Int, false, symbols.GlobalVariable)

	mul := bound.NewBinary(bound.NewLiteral(int64(3), symbols.Int), symbols.OpMultiply, bound.NewLiteral(int64(4), symbols.Int), symbols.Int)
	add := bound.NewBinary(bound.NewLiteral(int64(2), symbols.Int), symbols.OpAdd, mul, symbols.Int)

	body := bound.NewBlockStatement([]bound.Statement{
		bound.NewVariableDeclaration(x, add),
		printStmt(bound.NewVariableExpression(x)),
	})
	_, program := scriptProgram("s1", body)
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildS2 is spec.md §8 S2: a while loop counting 0, 1, 2, lowered to
// the goto/label form a binder would actually emit — an unconditional
// jump to the loop's check, the body under its own label, and the
// check's ConditionalGoto jumping back to the body while the condition
// holds.
func buildS2() Program {
	i := symbols.NewVariableSymbol("i", symbols.Int, false, symbols.GlobalVariable)
	checkLabel := symbols.NewBoundLabel("whileCheck")
	bodyLabel := symbols.NewBoundLabel("whileBody")

	cond := bound.NewBinary(bound.NewVariableExpression(i), symbols.OpLess, bound.NewLiteral(int64(3), symbols.Int), symbols.Bool)
	increment := bound.NewAssignment(i, bound.NewBinary(bound.NewVariableExpression(i), symbols.OpAdd, bound.NewLiteral(int64(1), symbols.Int), symbols.Int))

	body := bound.NewBlockStatement([]bound.Statement{
		bound.NewVariableDeclaration(i, bound.NewLiteral(int64(0), symbols.Int)),
		bound.NewGotoStatement(checkLabel),
		bound.NewLabelStatement(bodyLabel),
		printStmt(bound.NewVariableExpression(i)),
		bound.NewExpressionStatement(increment),
		bound.NewLabelStatement(checkLabel),
		bound.NewConditionalGotoStatement(bodyLabel, cond, true),
	})
	_, program := scriptProgram("s2", body)
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildS3 is spec.md §8 S3: "if 1 < 2 { print("a") } else { print("b") }",
// lowered to a ConditionalGoto that skips the then-branch when the
// condition is false, followed by an unconditional goto past the else.
func buildS3() Program {
	elseLabel := symbols.NewBoundLabel("ifElse")
	endLabel := symbols.NewBoundLabel("ifEnd")
	cond := bound.NewBinary(bound.NewLiteral(int64(1), symbols.Int), symbols.OpLess, bound.NewLiteral(int64(2), symbols.Int), symbols.Bool)

	body := bound.NewBlockStatement([]bound.Statement{
		bound.NewConditionalGotoStatement(elseLabel, cond, false),
		printStmt(bound.NewLiteral("a", symbols.String)),
		bound.NewGotoStatement(endLabel),
		bound.NewLabelStatement(elseLabel),
		printStmt(bound.NewLiteral("b", symbols.String)),
		bound.NewLabelStatement(endLabel),
	})
	_, program := scriptProgram("s3", body)
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildS4 is spec.md §8 S4: a user-defined "add(a, b)" function called
// from the top-level script, exercising CallExpression dispatch to a
// non-built-in FunctionSymbol.
func buildS4() Program {
	paramA := symbols.NewVariableSymbol("a", symbols.Int, true, symbols.Parameter)
	paramB := symbols.NewVariableSymbol("b", symbols.Int, true, symbols.Parameter)
	add := symbols.NewFunctionSymbol("add", []*symbols.VariableSymbol{paramA, paramB}, symbols.Int)

	addBody := bound.NewBlockStatement([]bound.Statement{
		bound.NewReturnStatement(bound.NewBinary(bound.NewVariableExpression(paramA), symbols.OpAdd, bound.NewVariableExpression(paramB), symbols.Int)),
	})

	call := bound.NewCall(add, []bound.Expression{
		bound.NewLiteral(int64(40), symbols.Int),
		bound.NewLiteral(int64(2), symbols.Int),
	})
	scriptBody := bound.NewBlockStatement([]bound.Statement{printStmt(call)})

	script := symbols.NewFunctionSymbol("s4", nil, symbols.Void)
	program := bound.NewProgram(nil, nil, script, map[*symbols.FunctionSymbol]*bound.BoundFunction{
		script: {Symbol: script, Body: scriptBody},
		add:    {Symbol: add, Body: addBody},
	})
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildS5StringTrue is spec.md §8 S5's first leg: print(string(true))
// prints "true" — the Bool-to-String conversion rule.
func buildS5StringTrue() Program {
	conv := bound.NewConversion(symbols.String, bound.NewLiteral(true, symbols.Bool))
	body := bound.NewBlockStatement([]bound.Statement{printStmt(conv)})
	_, program := scriptProgram("s5-string-true", body)
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildS5IntFalse is spec.md §8 S5's second leg: print(int("false"))
// prints "0" — the special-cased String-to-Int rule for the literal
// "true"/"false" tokens.
func buildS5IntFalse() Program {
	conv := bound.NewConversion(symbols.Int, bound.NewLiteral("false", symbols.String))
	body := bound.NewBlockStatement([]bound.Statement{printStmt(conv)})
	_, program := scriptProgram("s5-int-false", body)
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildS5IntMaybe is spec.md §8 S5's third leg: print(int("maybe"))
// raises a ConversionError, since "maybe" is not one of the two boolean
// tokens, the only strings that convert to Int.
func buildS5IntMaybe() Program {
	conv := bound.NewConversion(symbols.Int, bound.NewLiteral("maybe", symbols.String))
	body := bound.NewBlockStatement([]bound.Statement{printStmt(conv)})
	_, program := scriptProgram("s5-int-maybe", body)
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildS6A and buildS6B are spec.md §8 S6's precedence pair: "a + b * c"
// and "(a + b) * c" must pretty-print with parentheses exactly where
// the child's precedence is not higher than the position it sits in,
// never elsewhere. They are never evaluated; a, b, and c have no bound
// values.
func rangeVars() (a, b, c *symbols.VariableSymbol) {
	return symbols.NewVariableSymbol("a", symbols.Int, false, symbols.GlobalVariable),
		symbols.NewVariableSymbol("b", symbols.Int, false, symbols.GlobalVariable),
		symbols.NewVariableSymbol("c", symbols.Int, false, symbols.GlobalVariable)
}

func buildS6A() bound.Expression {
	a, b, c := rangeVars()
	mul := bound.NewBinary(bound.NewVariableExpression(b), symbols.OpMultiply, bound.NewVariableExpression(c), symbols.Int)
	return bound.NewBinary(bound.NewVariableExpression(a), symbols.OpAdd, mul, symbols.Int)
}

func buildS6B() bound.Expression {
	a, b, c := rangeVars()
	add := bound.NewBinary(bound.NewVariableExpression(a), symbols.OpAdd, bound.NewVariableExpression(b), symbols.Int)
	return bound.NewBinary(add, symbols.OpMultiply, bound.NewVariableExpression(c), symbols.Int)
}

// buildChain demonstrates SPEC_FULL.md §7's previous-chain merge: an
// older program declares "greet", a newer program binds that same
// FunctionSymbol to a new body and chains Previous to the older one.
// buildFunctionTable keeps the newer definition and logs the older one
// as a skipped duplicate when a Logger is attached.
func buildChain() Program {
	oldGreet := symbols.NewFunctionSymbol("greet", nil, symbols.Void)
	oldBody := bound.NewBlockStatement([]bound.Statement{printStmt(bound.NewLiteral("hello from the old greet", symbols.String))})
	oldScript := symbols.NewFunctionSymbol("chainOld", nil, symbols.Void)
	oldScriptBody := bound.NewBlockStatement(nil)
	older := bound.NewProgram(nil, nil, oldScript, map[*symbols.FunctionSymbol]*bound.BoundFunction{
		oldGreet:  {Symbol: oldGreet, Body: oldBody},
		oldScript: {Symbol: oldScript, Body: oldScriptBody},
	})

	newGreet := oldGreet
	newBody := bound.NewBlockStatement([]bound.Statement{printStmt(bound.NewLiteral("hello from the new greet", symbols.String))})
	call := bound.NewCall(newGreet, nil)
	newScript := symbols.NewFunctionSymbol("chainNew", nil, symbols.Void)
	newScriptBody := bound.NewBlockStatement([]bound.Statement{bound.NewExpressionStatement(call)})
	newer := bound.NewProgram(older, nil, newScript, map[*symbols.FunctionSymbol]*bound.BoundFunction{
		newGreet:  {Symbol: newGreet, Body: newBody},
		newScript: {Symbol: newScript, Body: newScriptBody},
	})

	return Program{Tree: newer, Globals: map[*symbols.VariableSymbol]any{}}
}

// buildDeepRecursion demonstrates EvaluatorConfig.MaxCallDepth: a
// function that calls itself unconditionally, with no base case,
// exercising the call-depth ceiling check in pkg/eval/call.go rather
// than exhausting the host Go stack.
func buildDeepRecursion() Program {
	loop := symbols.NewFunctionSymbol("loop", nil, symbols.Void)
	body := bound.NewBlockStatement([]bound.Statement{
		bound.NewExpressionStatement(bound.NewCall(loop, nil)),
	})
	script := symbols.NewFunctionSymbol("deepRecursion", nil, symbols.Void)
	scriptBody := bound.NewBlockStatement([]bound.Statement{
		bound.NewExpressionStatement(bound.NewCall(loop, nil)),
	})
	program := bound.NewProgram(nil, nil, script, map[*symbols.FunctionSymbol]*bound.BoundFunction{
		loop:   {Symbol: loop, Body: body},
		script: {Symbol: script, Body: scriptBody},
	})
	return Program{Tree: program, Globals: map[*symbols.VariableSymbol]any{}}
}
