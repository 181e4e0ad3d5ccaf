package bound

import "github.com/lhaig/vivian/pkg/symbols"

// BoundFunction pairs a declared function symbol with its lowered body.
type BoundFunction struct {
	Symbol *symbols.FunctionSymbol
	Body   *BlockStatement
}

// Program is a single compiled unit: the free-standing statements typed at
// the top level (ScriptFunction), the functions it declares, and — for a
// unit that declares an entry point — MainFunction. Previous links to the
// program compiled before this one in a chained session (e.g. a REPL or a
// multi-file run), mirroring how later submissions only add to what is
// already bound. A Program with a nil Previous is the first in its chain.
type Program struct {
	Previous       *Program
	MainFunction   *symbols.FunctionSymbol
	ScriptFunction *symbols.FunctionSymbol
	Functions      map[*symbols.FunctionSymbol]*BoundFunction
}

// NewProgram constructs a program. functions may be nil, in which case an
// empty table is allocated.
func NewProgram(previous *Program, mainFunction, scriptFunction *symbols.FunctionSymbol, functions map[*symbols.FunctionSymbol]*BoundFunction) *Program {
	if functions == nil {
		functions = make(map[*symbols.FunctionSymbol]*BoundFunction)
	}
	return &Program{
		Previous:       previous,
		MainFunction:   mainFunction,
		ScriptFunction: scriptFunction,
		Functions:      functions,
	}
}

// EntryPoint selects the function the evaluator should run: MainFunction
// if this program (or a predecessor in the chain) declared one, otherwise
// the most recent ScriptFunction, otherwise nil if the chain has no
// executable unit at all.
func (p *Program) EntryPoint() *symbols.FunctionSymbol {
	for cur := p; cur != nil; cur = cur.Previous {
		if cur.MainFunction != nil {
			return cur.MainFunction
		}
	}
	for cur := p; cur != nil; cur = cur.Previous {
		if cur.ScriptFunction != nil {
			return cur.ScriptFunction
		}
	}
	return nil
}

// FunctionTable flattens this program's chain into a single symbol-to-body
// map, walking from the oldest predecessor to the newest so that a later
// submission's redeclaration of a function shadows an earlier one sharing
// the same *FunctionSymbol identity — redeclaration under a fresh symbol
// with the same Name is not shadowing, it is simply a second, independent
// entry, matching how two distinct *VariableSymbol values with equal Name
// are distinct bindings.
func (p *Program) FunctionTable() map[*symbols.FunctionSymbol]*BoundFunction {
	var chain []*Program
	for cur := p; cur != nil; cur = cur.Previous {
		chain = append(chain, cur)
	}
	table := make(map[*symbols.FunctionSymbol]*BoundFunction)
	for i := len(chain) - 1; i >= 0; i-- {
		for sym, fn := range chain[i].Functions {
			table[sym] = fn
		}
	}
	return table
}
