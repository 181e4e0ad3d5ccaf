package printer

import (
	"strings"

	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/symbols"
	"github.com/turbolent/prettier"
)

// writeStatement renders one bound statement per the rules in spec.md
// §4.5. Every statement line embeds its expression text rendered through
// prettier.Prettier(writer, doc, maxLineWidth, indent), exactly as the
// teacher corpus's sibling example (onflow/cadence's tools/pretty/main.go)
// calls it over an expression's Doc().
func (w *writer) writeStatement(s bound.Statement) error {
	switch n := s.(type) {
	case *bound.BlockStatement:
		return w.writeBlock(n)

	case *bound.ExpressionStatement:
		text, err := w.render(n.Expression)
		if err != nil {
			return err
		}
		w.line(text)
		w.nl()
		return nil

	case *bound.VariableDeclaration:
		keyword := "imply"
		if n.Symbol.IsReadOnly {
			keyword = "let"
		}
		text, err := w.render(n.Initializer)
		if err != nil {
			return err
		}
		w.line(keyword + " " + n.Symbol.Name + " = " + text)
		w.nl()
		return nil

	case *bound.IfStatement:
		return w.writeIf(n)

	case *bound.WhileStatement:
		return w.writeWhile(n)

	case *bound.DoWhileStatement:
		return w.writeDoWhile(n)

	case *bound.ForStatement:
		return w.writeFor(n)

	case *bound.LabelStatement:
		w.dedent(func() {
			w.line(n.Label.Name + ":")
			w.nl()
		})
		return nil

	case *bound.GotoStatement:
		w.line("goto " + n.Label.Name)
		w.nl()
		return nil

	case *bound.ConditionalGotoStatement:
		condText, err := w.render(n.Condition)
		if err != nil {
			return err
		}
		connector := " unless "
		if n.JumpIfTrue {
			connector = " if "
		}
		w.line("goto " + n.Label.Name + connector + condText)
		w.nl()
		return nil

	case *bound.ReturnStatement:
		if n.Expression == nil {
			w.line("return")
			w.nl()
			return nil
		}
		text, err := w.render(n.Expression)
		if err != nil {
			return err
		}
		w.line("return " + text)
		w.nl()
		return nil

	default:
		return evalerror.NewStructural("unsupported statement kind %q in pretty-printer", s.BoundKind())
	}
}

// writeBlock implements §4.5's block rule: "{", newline, indent+1,
// children, indent-1, "}", newline.
func (w *writer) writeBlock(b *bound.BlockStatement) error {
	w.line("{")
	w.nl()
	var innerErr error
	w.withIndent(func() {
		for _, stmt := range b.Statements {
			if err := w.writeStatement(stmt); err != nil {
				innerErr = err
				return
			}
		}
	})
	if innerErr != nil {
		return innerErr
	}
	w.line("}")
	w.nl()
	return nil
}

// writeBody renders a control-flow body: inline when it is already a
// block (the block's own braces provide the nesting), otherwise indented
// by one level with no braces, per §4.5: "the nested statement indented
// by one level unless the body is itself a block."
func (w *writer) writeBody(body bound.Statement) error {
	if block, ok := body.(*bound.BlockStatement); ok {
		w.write(" ")
		return w.writeBlockInline(block)
	}
	w.nl()
	var err error
	w.withIndent(func() { err = w.writeStatement(body) })
	return err
}

// writeBlockInline is writeBlock without re-padding its opening brace —
// the caller has already written the keyword line up to where "{" goes.
func (w *writer) writeBlockInline(b *bound.BlockStatement) error {
	w.write("{")
	w.nl()
	var innerErr error
	w.withIndent(func() {
		for _, stmt := range b.Statements {
			if err := w.writeStatement(stmt); err != nil {
				innerErr = err
				return
			}
		}
	})
	if innerErr != nil {
		return innerErr
	}
	w.line("}")
	w.nl()
	return nil
}

func (w *writer) writeIf(n *bound.IfStatement) error {
	condText, err := w.render(n.Condition)
	if err != nil {
		return err
	}
	w.line("if " + condText)
	if err := w.writeBody(n.Then); err != nil {
		return err
	}
	if n.ElseClause == nil {
		return nil
	}
	// writeBody's block variant ends with a trailing newline after "}";
	// strip it so "else" continues on the same line as the closing brace.
	w.trimTrailingBraceNewline()
	w.write(" else")
	return w.writeBody(n.ElseClause)
}

func (w *writer) writeWhile(n *bound.WhileStatement) error {
	condText, err := w.render(n.Condition)
	if err != nil {
		return err
	}
	w.line("while " + condText)
	return w.writeBody(n.Body)
}

func (w *writer) writeDoWhile(n *bound.DoWhileStatement) error {
	w.line("do")
	if err := w.writeBody(n.Body); err != nil {
		return err
	}
	w.trimTrailingBraceNewline()
	condText, err := w.render(n.Condition)
	if err != nil {
		return err
	}
	w.write(" while " + condText)
	w.nl()
	return nil
}

// writeFor recognizes the common numeric-range shape — a VariableDeclaration
// initializer compared against an upper bound — and renders it with the
// source syntax's "to" keyword (§6); any other shape falls back to a
// generic C-style header, since bound.ForStatement carries no dedicated
// range-for node.
func (w *writer) writeFor(n *bound.ForStatement) error {
	if rangeText, ok := w.forRangeHeader(n); ok {
		w.line("for " + rangeText)
		return w.writeBody(n.Body)
	}

	initText := ""
	if n.Initializer != nil {
		var err error
		initText, err = w.renderStatementFragment(n.Initializer)
		if err != nil {
			return err
		}
	}
	condText := ""
	if n.Condition != nil {
		var err error
		condText, err = w.render(n.Condition)
		if err != nil {
			return err
		}
	}
	incText := ""
	if n.Increment != nil {
		var err error
		incText, err = w.render(n.Increment)
		if err != nil {
			return err
		}
	}
	w.line("for " + initText + "; " + condText + "; " + incText)
	return w.writeBody(n.Body)
}

func (w *writer) forRangeHeader(n *bound.ForStatement) (string, bool) {
	decl, ok := n.Initializer.(*bound.VariableDeclaration)
	if !ok {
		return "", false
	}
	cond, ok := n.Condition.(*bound.BinaryExpression)
	if !ok {
		return "", false
	}
	left, ok := cond.Left.(*bound.VariableExpression)
	if !ok || left.Symbol != decl.Symbol {
		return "", false
	}
	switch cond.Op.Kind {
	case symbols.Less, symbols.LessOrEqual:
	default:
		return "", false
	}
	startText, err := w.render(decl.Initializer)
	if err != nil {
		return "", false
	}
	boundText, err := w.render(cond.Right)
	if err != nil {
		return "", false
	}
	return decl.Symbol.Name + " = " + startText + " to " + boundText, true
}

// renderStatementFragment renders a VariableDeclaration or
// ExpressionStatement used as a for-loop initializer, without its own
// trailing newline — a for-header embeds it inline.
func (w *writer) renderStatementFragment(s bound.Statement) (string, error) {
	switch n := s.(type) {
	case *bound.VariableDeclaration:
		keyword := "imply"
		if n.Symbol.IsReadOnly {
			keyword = "let"
		}
		text, err := w.render(n.Initializer)
		if err != nil {
			return "", err
		}
		return keyword + " " + n.Symbol.Name + " = " + text, nil
	case *bound.ExpressionStatement:
		return w.render(n.Expression)
	default:
		return "", evalerror.NewStructural("unsupported for-loop initializer kind %q", s.BoundKind())
	}
}

// trimTrailingBraceNewline removes the single newline writeBlock always
// appends after a closing "}", so a following "else"/"while" keyword can
// share that line.
func (w *writer) trimTrailingBraceNewline() {
	s := w.b.String()
	if strings.HasSuffix(s, "}\n") {
		w.b.Reset()
		w.b.WriteString(s[:len(s)-1])
	}
}

// render renders an expression to text at the writer's configured line
// width, via the same prettier.Doc tree the expression layer builds.
func (w *writer) render(e bound.Expression) (string, error) {
	doc, _, err := exprDoc(e)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	prettier.Prettier(&b, doc, w.maxLineWidth, w.indentUnit)
	return b.String(), nil
}
