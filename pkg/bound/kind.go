// Package bound is the algebraic data model of the lowered, type-checked
// intermediate representation the binder hands to the evaluator and the
// pretty-printer. Nodes are immutable once constructed and are tagged by
// a closed Kind enumeration. Both consumers dispatch with Go type
// switches over the concrete node types; Kind names a node's variant in
// the StructuralError they report for a node they do not recognize.
package bound

import "github.com/lhaig/vivian/pkg/symbols"

// Type aliases symbols.Type so callers of this package rarely need to
// import pkg/symbols directly for the common case of reading a node's type.
type Type = symbols.Type

// Kind discriminates every bound node variant.
type Kind string

const (
	KindLiteralExpression        Kind = "LiteralExpression"
	KindVariableExpression       Kind = "VariableExpression"
	KindAssignmentExpression     Kind = "AssignmentExpression"
	KindUnaryExpression          Kind = "UnaryExpression"
	KindBinaryExpression         Kind = "BinaryExpression"
	KindCallExpression           Kind = "CallExpression"
	KindConversionExpression     Kind = "ConversionExpression"
	KindErrorExpression          Kind = "ErrorExpression"

	KindBlockStatement           Kind = "BlockStatement"
	KindExpressionStatement      Kind = "ExpressionStatement"
	KindVariableDeclaration      Kind = "VariableDeclaration"
	KindIfStatement              Kind = "IfStatement"
	KindWhileStatement           Kind = "WhileStatement"
	KindDoWhileStatement         Kind = "DoWhileStatement"
	KindForStatement             Kind = "ForStatement"
	KindLabelStatement           Kind = "LabelStatement"
	KindGotoStatement            Kind = "GotoStatement"
	KindConditionalGotoStatement Kind = "ConditionalGotoStatement"
	KindReturnStatement          Kind = "ReturnStatement"
)

// Node is implemented by every bound expression and statement.
type Node interface {
	BoundKind() Kind
}

type nodeImpl struct {
	kind Kind
}

func newNodeImpl(kind Kind) nodeImpl { return nodeImpl{kind: kind} }

func (n nodeImpl) BoundKind() Kind { return n.kind }

// Expression is implemented by every bound expression variant. Every
// expression carries a resolved Type, per §3 of the data model.
type Expression interface {
	Node
	ExprType() Type
	isExpression()
}

type expressionMarker struct{}

func (expressionMarker) isExpression() {}

// Statement is implemented by every bound statement variant.
type Statement interface {
	Node
	isStatement()
}

type statementMarker struct{}

func (statementMarker) isStatement() {}
