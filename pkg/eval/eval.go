// Package eval is the Evaluator: a tree-walking interpreter over a
// bound.Program. It resolves the entry function, walks each function's
// body with a label-indexed program counter, and maintains a stack of
// local scopes plus the caller-owned global scope, per spec.md §4.4.
package eval

import (
	"bufio"
	"io"
	"math/rand"
	"os"

	"github.com/lhaig/vivian/internal/config"
	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/symbols"
)

// Globals is the externally-owned mapping the Evaluator reads and writes
// in place for GlobalVariable symbols. Callers construct one, pass it to
// Evaluate, and may inspect it afterward.
type Globals = map[*symbols.VariableSymbol]any

// scope is one local frame: the flat set of bindings a single function
// call owns, from parameter binding at call entry to the return that
// pops it. Per spec.md §4.4, nested blocks inside a function body never
// push their own scope — only a call does.
type scope map[*symbols.VariableSymbol]any

// Evaluator holds the state a single evaluation owns privately: the
// local scope stack, the host I/O streams built-ins block on, and the
// lazily-constructed PRNG behind rnd. Re-entrancy of one Evaluator
// instance is not supported, per spec.md §5 — construct one per
// concurrent evaluation.
type Evaluator struct {
	cfg    config.EvaluatorConfig
	logger Logger
	stdin  *bufio.Reader
	stdout io.Writer
	rng    *rand.Rand

	functions map[*symbols.FunctionSymbol]*bound.BoundFunction
	locals    []scope
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithConfig overrides the default EvaluatorConfig.
func WithConfig(cfg config.EvaluatorConfig) Option {
	return func(e *Evaluator) { e.cfg = cfg }
}

// WithLogger installs a diagnostic sink. The default discards everything.
func WithLogger(logger Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// WithStdin overrides the stream the `input` built-in reads from. The
// default is os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(e *Evaluator) { e.stdin = bufio.NewReader(r) }
}

// WithStdout overrides the stream the `print` built-in writes to. The
// default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Evaluator) { e.stdout = w }
}

// New constructs an Evaluator. Per spec.md §5, a fresh Evaluator must be
// constructed for each concurrent evaluation; none of its state is
// shared across instances.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		cfg:    config.Default(),
		logger: nopLogger{},
		stdin:  bufio.NewReader(os.Stdin),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs program to completion against globals, which the
// Evaluator reads and writes in place for GlobalVariable symbols. It
// returns the value of the entry function's executed ReturnStatement, or
// else of its last-executed ExpressionStatement/VariableDeclaration,
// whatever the entry's declared return type (nil for a chain with
// neither MainFunction nor ScriptFunction).
func (e *Evaluator) Evaluate(program *bound.Program, globals Globals) (any, error) {
	e.functions = e.buildFunctionTable(program)

	entry := program.EntryPoint()
	if entry == nil {
		e.logger.Printf("eval: program chain declares neither a main nor a script function")
		return nil, nil
	}
	e.logger.Printf("eval: running entry function %q", entry.Name)

	body, ok := e.functions[entry]
	if !ok {
		return nil, evalerror.NewStructural("entry function %q has no body in the function table", entry.Name)
	}

	globalsScope := &globalsView{table: globals}
	e.locals = []scope{make(scope, len(entry.Parameters))}
	defer func() { e.locals = nil }()

	return e.execBlock(body.Body, globalsScope)
}

// buildFunctionTable flattens program.Previous* into a single table,
// walking from the newest (leaf) program backward. The first binding
// seen for a given *symbols.FunctionSymbol wins — i.e. a later program's
// definition shadows any earlier one sharing the same symbol identity —
// and every subsequent sighting of that symbol is a skipped duplicate,
// logged for observability per SPEC_FULL.md §7.
func (e *Evaluator) buildFunctionTable(program *bound.Program) map[*symbols.FunctionSymbol]*bound.BoundFunction {
	table := make(map[*symbols.FunctionSymbol]*bound.BoundFunction)
	for cur := program; cur != nil; cur = cur.Previous {
		for sym, fn := range cur.Functions {
			if _, seen := table[sym]; seen {
				e.logger.Printf("eval: skipping duplicate definition of function %q found earlier in the previous-chain; a later program already shadows it", sym.Name)
				continue
			}
			table[sym] = fn
		}
	}
	return table
}

// globalsView is the adapter between the caller-owned Globals map and the
// variable read/write paths shared by local and global symbols.
type globalsView struct {
	table Globals
}
