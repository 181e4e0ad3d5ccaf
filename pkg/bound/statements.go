package bound

import "github.com/lhaig/vivian/pkg/symbols"

// BlockStatement sequences Statements. Lowering flattens nested blocks
// produced by structured control flow away; a BlockStatement that survives
// into a function body is itself already flat.
type BlockStatement struct {
	nodeImpl
	statementMarker
	Statements []Statement
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(KindBlockStatement), Statements: statements}
}

// ExpressionStatement evaluates Expression and discards its value.
type ExpressionStatement struct {
	nodeImpl
	statementMarker
	Expression Expression
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(KindExpressionStatement), Expression: expr}
}

// VariableDeclaration introduces Symbol into the current scope, bound to
// Initializer's value.
type VariableDeclaration struct {
	nodeImpl
	statementMarker
	Symbol      *symbols.VariableSymbol
	Initializer Expression
}

func NewVariableDeclaration(sym *symbols.VariableSymbol, init Expression) *VariableDeclaration {
	return &VariableDeclaration{nodeImpl: newNodeImpl(KindVariableDeclaration), Symbol: sym, Initializer: init}
}

// IfStatement is a pretty-printer-only convenience node: the binder never
// hands one to the evaluator, which only ever walks the lowered
// Goto/ConditionalGoto/Label form. It survives solely so the printer can
// render source-level control flow for bound trees constructed directly
// (bypassing control-flow lowering) by callers such as the demonstration
// driver.
type IfStatement struct {
	nodeImpl
	statementMarker
	Condition  Expression
	Then       Statement
	ElseClause Statement // nil if there is no else branch
}

func NewIfStatement(condition Expression, then, elseClause Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(KindIfStatement), Condition: condition, Then: then, ElseClause: elseClause}
}

// WhileStatement is a pretty-printer-only convenience node; see IfStatement.
type WhileStatement struct {
	nodeImpl
	statementMarker
	Condition Expression
	Body      Statement
}

func NewWhileStatement(condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(KindWhileStatement), Condition: condition, Body: body}
}

// DoWhileStatement is a pretty-printer-only convenience node; see IfStatement.
type DoWhileStatement struct {
	nodeImpl
	statementMarker
	Body      Statement
	Condition Expression
}

func NewDoWhileStatement(body Statement, condition Expression) *DoWhileStatement {
	return &DoWhileStatement{nodeImpl: newNodeImpl(KindDoWhileStatement), Body: body, Condition: condition}
}

// ForStatement is a pretty-printer-only convenience node; see IfStatement.
// Initializer, Condition, and Increment may each be nil.
type ForStatement struct {
	nodeImpl
	statementMarker
	Initializer Statement
	Condition   Expression
	Increment   Expression
	Body        Statement
}

func NewForStatement(init Statement, condition, increment Expression, body Statement) *ForStatement {
	return &ForStatement{
		nodeImpl:    newNodeImpl(KindForStatement),
		Initializer: init,
		Condition:   condition,
		Increment:   increment,
		Body:        body,
	}
}

// LabelStatement marks a jump target in the enclosing statement list.
type LabelStatement struct {
	nodeImpl
	statementMarker
	Label *symbols.BoundLabel
}

func NewLabelStatement(label *symbols.BoundLabel) *LabelStatement {
	return &LabelStatement{nodeImpl: newNodeImpl(KindLabelStatement), Label: label}
}

// GotoStatement transfers control unconditionally to Label.
type GotoStatement struct {
	nodeImpl
	statementMarker
	Label *symbols.BoundLabel
}

func NewGotoStatement(label *symbols.BoundLabel) *GotoStatement {
	return &GotoStatement{nodeImpl: newNodeImpl(KindGotoStatement), Label: label}
}

// ConditionalGotoStatement transfers control to Label when Condition's
// truthiness equals JumpIfTrue.
type ConditionalGotoStatement struct {
	nodeImpl
	statementMarker
	Label      *symbols.BoundLabel
	Condition  Expression
	JumpIfTrue bool
}

func NewConditionalGotoStatement(label *symbols.BoundLabel, condition Expression, jumpIfTrue bool) *ConditionalGotoStatement {
	return &ConditionalGotoStatement{
		nodeImpl:   newNodeImpl(KindConditionalGotoStatement),
		Label:      label,
		Condition:  condition,
		JumpIfTrue: jumpIfTrue,
	}
}

// ReturnStatement exits the current call frame. Expression is nil for a
// Void-returning function.
type ReturnStatement struct {
	nodeImpl
	statementMarker
	Expression Expression
}

func NewReturnStatement(expr Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(KindReturnStatement), Expression: expr}
}
