// Package printer is the IR Pretty-Printer: it renders any bound.Node to
// indented, source-like text, emitting parentheses only when the parent
// expression's precedence requires them (spec.md §4.5). Expression text
// is built as a github.com/turbolent/prettier.Doc tree, mirroring
// onflow/cadence's runtime/ast Expression.Doc()/precedence() split;
// statement layout (blocks, labels, goto) is a small hand-rolled
// indentation tracker, since the pack leaves statement-level printing
// un-ported to prettier.Doc.
package printer

import (
	"io"

	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/bound"
)

// DefaultMaxLineWidth matches the 80-column default the teacher's sibling
// example (onflow/cadence's tools/pretty web tool) exposes as a stepper
// default.
const DefaultMaxLineWidth = 80

// DefaultIndent is the indentation unit statements nest by.
const DefaultIndent = "    "

// Option configures a WriteTo call.
type Option func(*writer)

// WithMaxLineWidth overrides the column at which prettier.Doc wraps an
// expression's rendered text.
func WithMaxLineWidth(width int) Option {
	return func(w *writer) { w.maxLineWidth = width }
}

// WithIndent overrides the per-level indentation string.
func WithIndent(unit string) Option {
	return func(w *writer) { w.indentUnit = unit }
}

// WriteTo renders node to dst. node may be any bound.Statement or
// bound.Expression; an unrecognized node kind or literal type is a
// StructuralError, per spec.md §4.5 and §7 — the pretty-printer raises
// only that one error kind.
func WriteTo(dst io.Writer, node bound.Node, opts ...Option) error {
	w := newWriter(DefaultMaxLineWidth, DefaultIndent)
	for _, opt := range opts {
		opt(w)
	}

	switch n := node.(type) {
	case bound.Statement:
		if err := w.writeStatement(n); err != nil {
			return err
		}
	case bound.Expression:
		text, err := w.render(n)
		if err != nil {
			return err
		}
		w.write(text)
	default:
		return evalerror.NewStructural("unsupported node kind %q in pretty-printer", node.BoundKind())
	}

	return w.flushTo(dst)
}
