package symbols

// SymbolKind discriminates the kinds of named entity a bound tree can
// reference.
type SymbolKind string

const (
	GlobalVariable SymbolKind = "GlobalVariable"
	LocalVariable  SymbolKind = "LocalVariable"
	Parameter      SymbolKind = "Parameter"
	Function       SymbolKind = "Function"
	Label          SymbolKind = "Label"
)

// VariableSymbol names a global, local, or parameter binding. Symbols are
// compared by identity (pointer equality), never by Name — two distinct
// *VariableSymbol values with the same Name are distinct bindings, which
// is how the evaluator tells a shadowed outer variable from an inner one.
type VariableSymbol struct {
	Name       string
	Type       Type
	IsReadOnly bool
	kind       SymbolKind
}

// NewVariableSymbol constructs a symbol of the given kind. kind must be
// one of GlobalVariable, LocalVariable, or Parameter.
func NewVariableSymbol(name string, typ Type, isReadOnly bool, kind SymbolKind) *VariableSymbol {
	return &VariableSymbol{Name: name, Type: typ, IsReadOnly: isReadOnly, kind: kind}
}

// Kind reports the symbol's discriminator.
func (v *VariableSymbol) Kind() SymbolKind { return v.kind }

// FunctionSymbol names a user-defined function: its ordered parameters and
// declared return type. FunctionSymbol values, like VariableSymbol, are
// identity-comparable; a BoundProgram's function table is keyed by the
// *FunctionSymbol pointer, not by Name.
type FunctionSymbol struct {
	Name       string
	Parameters []*VariableSymbol
	ReturnType Type
}

// NewFunctionSymbol constructs a function symbol. Each parameter must be a
// *VariableSymbol of kind Parameter.
func NewFunctionSymbol(name string, parameters []*VariableSymbol, returnType Type) *FunctionSymbol {
	return &FunctionSymbol{Name: name, Parameters: parameters, ReturnType: returnType}
}

func (f *FunctionSymbol) Kind() SymbolKind { return Function }

// BoundLabel is a unique jump target created during control-flow lowering.
// Two BoundLabel values with the same Name are still distinct targets;
// identity is what the evaluator's label index keys on.
type BoundLabel struct {
	Name string
}

// NewBoundLabel creates a fresh label. Labels carrying the same Name are
// intentionally permitted and remain distinct, mirroring how a lowering
// pass mints readable-but-not-unique names (e.g. "whileEnd") for multiple
// loops in the same function.
func NewBoundLabel(name string) *BoundLabel {
	return &BoundLabel{Name: name}
}

func (l *BoundLabel) Kind() SymbolKind { return Label }
