package eval

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/builtins"
	"github.com/lhaig/vivian/pkg/symbols"
)

// evalCall evaluates every argument left to right, then dispatches to
// either a built-in handler or a user-defined function body, per
// spec.md §4.4's Call rule.
func (e *Evaluator) evalCall(n *bound.CallExpression, globals *globalsView) (any, error) {
	args := make([]any, len(n.Arguments))
	for i, argExpr := range n.Arguments {
		v, err := e.evalExpression(argExpr, globals)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn, ok := builtins.Lookup(n.Function); ok {
		return e.callBuiltin(fn, args)
	}
	return e.callUserFunction(n.Function, args, globals)
}

// callBuiltin executes the I/O contract for one of the three built-ins
// resolved by identity (see pkg/builtins). A failure of the underlying
// standard stream surfaces as a HostIOError, per spec.md §7.
func (e *Evaluator) callBuiltin(fn *symbols.FunctionSymbol, args []any) (any, error) {
	switch fn {
	case builtins.Input:
		line, err := e.stdin.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if line == "" {
					return "", nil
				}
				return trimNewline(line), nil
			}
			return nil, evalerror.NewHostIO(err)
		}
		return trimNewline(line), nil

	case builtins.Print:
		if _, err := fmt.Fprintln(e.stdout, stringify(args[0])); err != nil {
			return nil, evalerror.NewHostIO(err)
		}
		return nil, nil

	case builtins.Rnd:
		max, ok := args[0].(int64)
		if !ok {
			return nil, evalerror.NewStructural("rnd requires an Int argument, got %T", args[0])
		}
		if max <= 0 {
			return nil, evalerror.NewStructural("rnd requires a positive bound, got %d", max)
		}
		return int64(e.rand().Int63n(max)), nil

	default:
		return nil, evalerror.NewStructural("unresolved built-in function %q", fn.Name)
	}
}

// callUserFunction pushes exactly one local scope containing the
// argument bindings, evaluates the body, and pops the scope on every
// return path — normal return, fallthrough, and propagated error alike —
// per spec.md §4.4 and §5's resource discipline.
func (e *Evaluator) callUserFunction(fn *symbols.FunctionSymbol, args []any, globals *globalsView) (any, error) {
	if len(args) != len(fn.Parameters) {
		return nil, evalerror.NewStructural("call to %q supplies %d arguments, expected %d", fn.Name, len(args), len(fn.Parameters))
	}
	body, ok := e.functions[fn]
	if !ok {
		return nil, evalerror.NewStructural("call to %q has no registered function body", fn.Name)
	}

	if e.cfg.MaxCallDepth > 0 && len(e.locals) >= e.cfg.MaxCallDepth {
		return nil, evalerror.NewStructural("call depth exceeded the configured maximum of %d", e.cfg.MaxCallDepth)
	}

	frame := make(scope, len(fn.Parameters))
	for i, param := range fn.Parameters {
		frame[param] = args[i]
	}
	e.pushScope(frame)
	defer e.popScope()

	return e.execBlock(body.Body, globals)
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	if n := len(s); n > 0 && s[n-1] == '\r' {
		s = s[:n-1]
	}
	return s
}

// stringify renders a built-in `print` argument. Object-typed values
// reaching print are whatever runtime representation convert.Convert
// would box (bool, int64, string); this mirrors Conversion's
// Bool/Int/String -> String rules without requiring print's caller to
// have inserted an explicit Conversion node.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int64:
		return fmt.Sprintf("%d", x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// rand lazily constructs the PRNG backing `rnd` on first use and reuses
// it thereafter, per spec.md §6's built-in table. A deterministic config
// seeds it from EvaluatorConfig.Seed for reproducible test runs; the
// default seeds from the clock, matching the "no required determinism"
// case in spec.md §8 property 8.
func (e *Evaluator) rand() *rand.Rand {
	if e.rng == nil {
		seed := e.cfg.Seed
		if !e.cfg.Deterministic {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	return e.rng
}
