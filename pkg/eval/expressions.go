package eval

import (
	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/convert"
	"github.com/lhaig/vivian/pkg/symbols"
)

// evalExpression is a pure function over the current scopes: it never
// mutates anything outside an explicit Assignment/Call side effect, and
// always returns either a runtime value or an error, never both.
func (e *Evaluator) evalExpression(expr bound.Expression, globals *globalsView) (any, error) {
	switch n := expr.(type) {
	case *bound.LiteralExpression:
		return n.Value, nil

	case *bound.VariableExpression:
		return e.lookup(n.Symbol, globals)

	case *bound.AssignmentExpression:
		v, err := e.evalExpression(n.Expression, globals)
		if err != nil {
			return nil, err
		}
		e.assign(n.Symbol, v, globals)
		return v, nil

	case *bound.UnaryExpression:
		return e.evalUnary(n, globals)

	case *bound.BinaryExpression:
		return e.evalBinary(n, globals)

	case *bound.CallExpression:
		return e.evalCall(n, globals)

	case *bound.ConversionExpression:
		return e.evalConversion(n, globals)

	case *bound.ErrorExpression:
		return nil, evalerror.NewStructural("evaluator reached an ErrorExpression node; the binder should have filtered this out")

	default:
		return nil, evalerror.NewStructural("unsupported expression kind %q in evaluator", expr.BoundKind())
	}
}

// evalUnary implements spec.md §4.4's intentional double conversion: the
// operand is narrowed to the operator's declared operand type before
// Operate runs, and Operate's raw result is narrowed again to the
// operator's declared result type, since the host arithmetic may
// overflow into a wider representation than the declared type permits.
func (e *Evaluator) evalUnary(n *bound.UnaryExpression, globals *globalsView) (any, error) {
	x, err := e.evalExpression(n.Operand, globals)
	if err != nil {
		return nil, err
	}

	classification := convert.Classify(n.Operand.ExprType(), n.Op.OperandType)
	if !classification.IsImplicit && !classification.IsIdentity {
		return nil, evalerror.NewStructural(
			"unary operator %q requires an implicit conversion from %s to %s, but none exists",
			n.Op.Kind, n.Operand.ExprType(), n.Op.OperandType,
		)
	}
	y, err := convert.Convert(n.Op.OperandType, x)
	if err != nil {
		return nil, err
	}

	raw, err := operateUnary(n.Op.Kind, y)
	if err != nil {
		return nil, err
	}
	return convert.Convert(n.Op.Type, raw)
}

// evalBinary implements the two shapes of spec.md §4.4's Binary rule: a
// fixed-type operator calls Operate directly and only converts the
// result, while a polymorphic operator (Op.Type == nil) must first prove
// both operands implicitly convert to the node's already-promoted Type
// before converting and invoking.
func (e *Evaluator) evalBinary(n *bound.BinaryExpression, globals *globalsView) (any, error) {
	l, err := e.evalExpression(n.Left, globals)
	if err != nil {
		return nil, err
	}
	r, err := e.evalExpression(n.Right, globals)
	if err != nil {
		return nil, err
	}

	if n.Op.Type == nil {
		leftClass := convert.Classify(n.Left.ExprType(), n.Type)
		rightClass := convert.Classify(n.Right.ExprType(), n.Type)
		if (!leftClass.IsImplicit && !leftClass.IsIdentity) || (!rightClass.IsImplicit && !rightClass.IsIdentity) {
			return nil, evalerror.NewStructural(
				"polymorphic binary operator %q requires both operands to implicitly convert to %s", n.Op.Kind, n.Type,
			)
		}
		lc, err := convert.Convert(n.Type, l)
		if err != nil {
			return nil, err
		}
		rc, err := convert.Convert(n.Type, r)
		if err != nil {
			return nil, err
		}
		raw, err := operateBinary(n.Op.Kind, lc, rc)
		if err != nil {
			return nil, err
		}
		return convert.Convert(n.Type, raw)
	}

	raw, err := operateBinary(n.Op.Kind, l, r)
	if err != nil {
		return nil, err
	}
	return convert.Convert(n.Type, raw)
}

// evalConversion implements spec.md §4.3/§4.4's conversion rules.
// Object is always an identity box; every other target delegates to the
// Conversion Engine, which already encodes the "true"/"false" string
// rule and the Bool<->String rendering rule.
func (e *Evaluator) evalConversion(n *bound.ConversionExpression, globals *globalsView) (any, error) {
	v, err := e.evalExpression(n.Expression, globals)
	if err != nil {
		return nil, err
	}
	if n.TargetType.Equal(symbols.Object) {
		return v, nil
	}
	return convert.Convert(n.TargetType, v)
}
