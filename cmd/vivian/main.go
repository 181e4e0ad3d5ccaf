// Command vivian is a small demonstration driver over the bound-tree
// core in pkg/bound, pkg/eval, and pkg/printer. It never parses source
// text: each named program is built directly in Go by internal/demo,
// the way a binder's output would be handed to the evaluator or
// printer in a real embedding. Subcommand dispatch follows the
// teacher's cmd/able/main.go: a leading flag switch for --help and
// --version, then a verb (run, fmt, list) consuming the rest of argv.
package main

import (
	"fmt"
	"os"

	"github.com/lhaig/vivian/internal/config"
	"github.com/lhaig/vivian/internal/demo"
	"github.com/lhaig/vivian/pkg/eval"
	"github.com/lhaig/vivian/pkg/printer"
)

const usage = `vivian is a demonstration driver for the Vivian bound-tree core.

Usage:
  vivian run <name>     evaluate a named demonstration program
  vivian fmt <name>     pretty-print a named demonstration program or expression
  vivian list           list every known program and expression name
  vivian --help         show this message
  vivian --version      print the driver's version

run and fmt only ever dispatch to bound trees built in Go by
internal/demo; there is no parser.`

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		fmt.Println(usage)
		return 0
	case "--version", "-V":
		fmt.Println("vivian " + version)
		return 0
	case "list":
		return runList()
	case "run":
		return runEvaluate(args[1:])
	case "fmt":
		return runFormat(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "vivian: unknown command %q\n\n%s\n", args[0], usage)
		return 1
	}
}

func runList() int {
	fmt.Println("programs (vivian run <name>):")
	for _, name := range demo.Names() {
		fmt.Println("  " + name)
	}
	fmt.Println("expressions (vivian fmt <name>):")
	for _, name := range demo.ExprNames() {
		fmt.Println("  " + name)
	}
	return 0
}

func runEvaluate(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "vivian: run requires exactly one program name")
		return 1
	}
	name := args[0]

	p, err := demo.Build(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vivian: %v\n", err)
		return 1
	}

	logger := eval.NewLogger(os.Stderr)
	evaluator := eval.New(
		eval.WithConfig(config.Default()),
		eval.WithLogger(logger),
		eval.WithStdin(os.Stdin),
		eval.WithStdout(os.Stdout),
	)

	result, err := evaluator.Evaluate(p.Tree, p.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vivian: %s: %v\n", name, err)
		return 1
	}
	if result != nil {
		fmt.Fprintf(os.Stderr, "vivian: %s: entry returned %v\n", name, result)
	}
	return 0
}

func runFormat(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "vivian: fmt requires exactly one program or expression name")
		return 1
	}
	name := args[0]

	if expr, err := demo.BuildExpr(name); err == nil {
		if err := printer.WriteTo(os.Stdout, expr); err != nil {
			fmt.Fprintf(os.Stderr, "vivian: %s: %v\n", name, err)
			return 1
		}
		fmt.Println()
		return 0
	}

	p, err := demo.Build(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vivian: %v\n", err)
		return 1
	}
	entry := p.Tree.EntryPoint()
	if entry == nil {
		fmt.Fprintf(os.Stderr, "vivian: %s: program declares neither a main nor a script function\n", name)
		return 1
	}
	body, ok := p.Tree.Functions[entry]
	if !ok {
		// entry may live in a Previous link rather than this program's
		// own Functions table; fall back to the flattened table.
		body, ok = p.Tree.FunctionTable()[entry]
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "vivian: %s: entry function has no body\n", name)
		return 1
	}
	if err := printer.WriteTo(os.Stdout, body.Body); err != nil {
		fmt.Fprintf(os.Stderr, "vivian: %s: %v\n", name, err)
		return 1
	}
	return 0
}
