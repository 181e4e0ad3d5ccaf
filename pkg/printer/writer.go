package printer

import (
	"io"
	"strings"
)

// writer is the hand-rolled indentation tracker statement rendering
// writes through — prettier.Doc only covers expressions in this corpus
// (onflow/cadence's own Doc() methods stop at Expression; its
// tools/pretty/main.go leaves declarations/statements to a
// "// TODO: replace once Declaration implements Doc" marker), so
// statement layout follows the other shape the retrieved pack shows for
// a from-scratch printer: a *strings.Builder plus a depth counter with
// pad/line/withIndent helpers, as in daios-ai-msg/printer.go's out type.
type writer struct {
	b            *strings.Builder
	depth        int
	indentUnit   string
	maxLineWidth int
}

func newWriter(maxLineWidth int, indentUnit string) *writer {
	return &writer{b: &strings.Builder{}, indentUnit: indentUnit, maxLineWidth: maxLineWidth}
}

func (w *writer) write(s string) { w.b.WriteString(s) }
func (w *writer) nl()            { w.b.WriteByte('\n') }
func (w *writer) pad() {
	for i := 0; i < w.depth; i++ {
		w.b.WriteString(w.indentUnit)
	}
}
func (w *writer) line(s string) { w.pad(); w.write(s) }

func (w *writer) withIndent(fn func()) {
	w.depth++
	fn()
	w.depth--
}

// dedent un-indents by exactly one level for the duration of fn, capped
// at zero so a label line at the outermost depth never underflows — the
// source's label-statement quirk the design notes call out.
func (w *writer) dedent(fn func()) {
	if w.depth == 0 {
		fn()
		return
	}
	w.depth--
	fn()
	w.depth++
}

func (w *writer) flushTo(dst io.Writer) error {
	_, err := io.WriteString(dst, w.b.String())
	return err
}
