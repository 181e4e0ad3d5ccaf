package printer

import "github.com/lhaig/vivian/pkg/symbols"

// precedence orders bound expressions the way the source syntax's
// operator table does: higher binds tighter. It is deliberately a plain
// int, not a shared enum with the evaluator — the printer's precedence
// table exists purely to decide where parentheses are required, per
// spec.md §4.5.
type precedence int

const (
	precAssignment precedence = iota
	precLogicalOr
	precLogicalAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precPrimary
)

// binaryPrecedence maps a resolved binary operator kind to its slot in
// the standard precedence table (§4.5: "binary precedence is standard").
func binaryPrecedence(kind symbols.BinaryOperatorKind) precedence {
	switch kind {
	case symbols.LogicalOr:
		return precLogicalOr
	case symbols.LogicalAnd:
		return precLogicalAnd
	case symbols.Equal, symbols.NotEqual:
		return precEquality
	case symbols.Less, symbols.LessOrEqual, symbols.Greater, symbols.GreaterOrEqual:
		return precRelational
	case symbols.Add, symbols.Subtract:
		return precAdditive
	case symbols.Multiply, symbols.Divide, symbols.Modulo:
		return precMultiplicative
	default:
		return precPrimary
	}
}

func binarySymbol(kind symbols.BinaryOperatorKind) string {
	switch kind {
	case symbols.Add:
		return "+"
	case symbols.Subtract:
		return "-"
	case symbols.Multiply:
		return "*"
	case symbols.Divide:
		return "/"
	case symbols.Modulo:
		return "%"
	case symbols.Equal:
		return "=="
	case symbols.NotEqual:
		return "!="
	case symbols.Less:
		return "<"
	case symbols.LessOrEqual:
		return "<="
	case symbols.Greater:
		return ">"
	case symbols.GreaterOrEqual:
		return ">="
	case symbols.LogicalAnd:
		return "&&"
	case symbols.LogicalOr:
		return "||"
	default:
		return string(kind)
	}
}

func unarySymbol(kind symbols.UnaryOperatorKind) string {
	switch kind {
	case symbols.Negation:
		return "-"
	case symbols.LogicalNot:
		return "!"
	case symbols.IdentityUnary:
		return "+"
	default:
		return string(kind)
	}
}
