package eval

import (
	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/symbols"
)

// execBlock walks block's statements with a label-indexed program
// counter, per spec.md §4.4. It returns the value of a ReturnStatement
// if one is executed, or the value of the last-executed
// ExpressionStatement/VariableDeclaration if the loop falls off the end
// (script-mode last-expression-value semantics).
func (e *Evaluator) execBlock(block *bound.BlockStatement, globals *globalsView) (any, error) {
	labelIndex, err := buildLabelIndex(block.Statements)
	if err != nil {
		return nil, err
	}

	var lastValue any
	pc := 0
	n := len(block.Statements)
	for pc < n {
		stmt := block.Statements[pc]
		switch s := stmt.(type) {
		case *bound.VariableDeclaration:
			v, err := e.evalExpression(s.Initializer, globals)
			if err != nil {
				return nil, err
			}
			lastValue = v
			e.assign(s.Symbol, v, globals)
			pc++

		case *bound.ExpressionStatement:
			v, err := e.evalExpression(s.Expression, globals)
			if err != nil {
				return nil, err
			}
			lastValue = v
			pc++

		case *bound.LabelStatement:
			pc++

		case *bound.GotoStatement:
			target, ok := labelIndex[s.Label]
			if !ok {
				return nil, evalerror.NewStructural("goto targets undefined label %q", s.Label.Name)
			}
			pc = target

		case *bound.ConditionalGotoStatement:
			cond, err := e.evalExpression(s.Condition, globals)
			if err != nil {
				return nil, err
			}
			if truthy(cond) == s.JumpIfTrue {
				target, ok := labelIndex[s.Label]
				if !ok {
					return nil, evalerror.NewStructural("conditional goto targets undefined label %q", s.Label.Name)
				}
				pc = target
			} else {
				pc++
			}

		case *bound.ReturnStatement:
			if s.Expression == nil {
				return nil, nil
			}
			v, err := e.evalExpression(s.Expression, globals)
			if err != nil {
				return nil, err
			}
			return v, nil

		default:
			return nil, evalerror.NewStructural("unsupported statement kind %q in evaluator", stmt.BoundKind())
		}
	}
	return lastValue, nil
}

// buildLabelIndex scans a block once, mapping every BoundLabel defined by
// a LabelStatement to the position of the instruction immediately after
// it, per spec.md §4.4 point 2. A label defined more than once in the
// same block is a structural error — the invariant in spec.md §3
// guarantees it cannot happen for a binder-produced tree, but the
// evaluator still checks rather than silently taking the last one.
func buildLabelIndex(statements []bound.Statement) (map[*symbols.BoundLabel]int, error) {
	index := make(map[*symbols.BoundLabel]int)
	for i, stmt := range statements {
		label, ok := stmt.(*bound.LabelStatement)
		if !ok {
			continue
		}
		if _, dup := index[label.Label]; dup {
			return nil, evalerror.NewStructural("label %q defined more than once in the same block", label.Label.Name)
		}
		index[label.Label] = i + 1
	}
	return index, nil
}

// truthy applies the Bool-as-Int encoding's definition of "not zero":
// an int64 is truthy when nonzero, a bool is truthy when true. Any other
// runtime value is treated as false; the binder only ever types
// conditions as Bool or Int.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	default:
		return false
	}
}

// assign writes v to sym, choosing the global table or the top local
// scope by sym.Kind(), per spec.md §4.4's assignment semantics. The
// binder is responsible for rejecting writes to read-only symbols; the
// evaluator does not re-check IsReadOnly.
func (e *Evaluator) assign(sym *symbols.VariableSymbol, v any, globals *globalsView) {
	if sym.Kind() == symbols.GlobalVariable {
		globals.table[sym] = v
		return
	}
	e.top()[sym] = v
}

// lookup reads sym's current value, choosing the global table or the top
// local scope by sym.Kind(). A missing binding is a structural error.
func (e *Evaluator) lookup(sym *symbols.VariableSymbol, globals *globalsView) (any, error) {
	if sym.Kind() == symbols.GlobalVariable {
		v, ok := globals.table[sym]
		if !ok {
			return nil, evalerror.NewStructural("read of unbound global variable %q", sym.Name)
		}
		return v, nil
	}
	v, ok := e.top()[sym]
	if !ok {
		return nil, evalerror.NewStructural("read of unbound local variable %q", sym.Name)
	}
	return v, nil
}

func (e *Evaluator) top() scope {
	return e.locals[len(e.locals)-1]
}

func (e *Evaluator) pushScope(s scope) {
	e.locals = append(e.locals, s)
}

func (e *Evaluator) popScope() {
	e.locals = e.locals[:len(e.locals)-1]
}
