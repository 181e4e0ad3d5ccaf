package bound

import "github.com/lhaig/vivian/pkg/symbols"

// LiteralExpression is a constant of type Bool, Int, String, or the
// Object-typed null. Value holds the literal's Go-native representation:
// bool, int64, string, or nil.
type LiteralExpression struct {
	nodeImpl
	expressionMarker
	Value any
	Type  symbols.Type
}

func NewLiteral(value any, typ symbols.Type) *LiteralExpression {
	return &LiteralExpression{nodeImpl: newNodeImpl(KindLiteralExpression), Value: value, Type: typ}
}

func (l *LiteralExpression) ExprType() symbols.Type { return l.Type }

// VariableExpression reads the current value bound to Symbol.
type VariableExpression struct {
	nodeImpl
	expressionMarker
	Symbol *symbols.VariableSymbol
}

func NewVariableExpression(sym *symbols.VariableSymbol) *VariableExpression {
	return &VariableExpression{nodeImpl: newNodeImpl(KindVariableExpression), Symbol: sym}
}

func (v *VariableExpression) ExprType() symbols.Type { return v.Symbol.Type }

// AssignmentExpression writes Expression's value to Symbol and evaluates
// to that value. Expression.ExprType() must be assignable to Symbol.Type.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker
	Symbol     *symbols.VariableSymbol
	Expression Expression
}

func NewAssignment(sym *symbols.VariableSymbol, expr Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(KindAssignmentExpression), Symbol: sym, Expression: expr}
}

func (a *AssignmentExpression) ExprType() symbols.Type { return a.Symbol.Type }

// UnaryExpression applies a resolved unary operator to Operand.
type UnaryExpression struct {
	nodeImpl
	expressionMarker
	Op      symbols.UnaryOperator
	Operand Expression
}

func NewUnary(op symbols.UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(KindUnaryExpression), Op: op, Operand: operand}
}

func (u *UnaryExpression) ExprType() symbols.Type { return u.Op.Type }

// BinaryExpression applies a resolved binary operator to Left and Right.
// Type is the node's own resolved type, which for a polymorphic operator
// (Op.Type == nil) is the promoted type the binder already computed and
// recorded here — the evaluator does not recompute Promotion itself, it
// only re-derives the conversions Promotion implies.
type BinaryExpression struct {
	nodeImpl
	expressionMarker
	Left  Expression
	Op    symbols.BinaryOperator
	Right Expression
	Type  symbols.Type
}

func NewBinary(left Expression, op symbols.BinaryOperator, right Expression, typ symbols.Type) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(KindBinaryExpression), Left: left, Op: op, Right: right, Type: typ}
}

func (b *BinaryExpression) ExprType() symbols.Type { return b.Type }

// CallExpression invokes Function with Arguments, evaluated left to
// right. len(Arguments) must equal len(Function.Parameters).
type CallExpression struct {
	nodeImpl
	expressionMarker
	Function  *symbols.FunctionSymbol
	Arguments []Expression
}

func NewCall(fn *symbols.FunctionSymbol, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(KindCallExpression), Function: fn, Arguments: args}
}

func (c *CallExpression) ExprType() symbols.Type { return c.Function.ReturnType }

// ConversionExpression converts Expression's runtime value to TargetType.
// Any conversion the binder accepted (§4.3) may appear here, including
// the identity conversion.
type ConversionExpression struct {
	nodeImpl
	expressionMarker
	TargetType symbols.Type
	Expression Expression
}

func NewConversion(target symbols.Type, expr Expression) *ConversionExpression {
	return &ConversionExpression{nodeImpl: newNodeImpl(KindConversionExpression), TargetType: target, Expression: expr}
}

func (c *ConversionExpression) ExprType() symbols.Type { return c.TargetType }

// ErrorExpression is a propagated placeholder the binder emits to
// suppress cascading diagnostics. Neither consumer renders or evaluates
// it: the evaluator and the pretty-printer both report a StructuralError
// when they reach one.
type ErrorExpression struct {
	nodeImpl
	expressionMarker
}

func NewErrorExpression() *ErrorExpression {
	return &ErrorExpression{nodeImpl: newNodeImpl(KindErrorExpression)}
}

func (e *ErrorExpression) ExprType() symbols.Type { return symbols.Error }
