package printer

import (
	"fmt"
	"strings"

	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/bound"
	"github.com/lhaig/vivian/pkg/symbols"
	"github.com/turbolent/prettier"
)

// exprDoc builds a prettier.Doc for e and reports e's own precedence, so
// the caller (an enclosing expression, or a statement writer) can decide
// whether to wrap it in parentheses. This mirrors the Expression/Doc()/
// precedence() split in onflow/cadence's runtime/ast/expression.go,
// adapted to spec.md §4.5's simpler, non-associativity-aware rule:
// parentheses appear exactly when the parent's precedence is >= the
// child's.
func exprDoc(e bound.Expression) (prettier.Doc, precedence, error) {
	switch n := e.(type) {
	case *bound.LiteralExpression:
		doc, err := literalDoc(n.Value)
		return doc, precPrimary, err

	case *bound.VariableExpression:
		return prettier.Text(n.Symbol.Name), precPrimary, nil

	case *bound.AssignmentExpression:
		rhs, rhsPrec, err := exprDoc(n.Expression)
		if err != nil {
			return nil, 0, err
		}
		return prettier.Concat{
			prettier.Text(n.Symbol.Name),
			prettier.Text(" = "),
			wrapIfNeeded(rhs, rhsPrec, precAssignment),
		}, precAssignment, nil

	case *bound.UnaryExpression:
		operand, operandPrec, err := exprDoc(n.Operand)
		if err != nil {
			return nil, 0, err
		}
		return prettier.Concat{
			prettier.Text(unarySymbol(n.Op.Kind)),
			wrapIfNeeded(operand, operandPrec, precUnary),
		}, precUnary, nil

	case *bound.BinaryExpression:
		own := binaryPrecedence(n.Op.Kind)
		left, leftPrec, err := exprDoc(n.Left)
		if err != nil {
			return nil, 0, err
		}
		right, rightPrec, err := exprDoc(n.Right)
		if err != nil {
			return nil, 0, err
		}
		return prettier.Group{
			Doc: prettier.Concat{
				wrapIfNeeded(left, leftPrec, own),
				prettier.Line{},
				prettier.Text(binarySymbol(n.Op.Kind)),
				prettier.Space,
				wrapIfNeeded(right, rightPrec, own),
			},
		}, own, nil

	case *bound.CallExpression:
		argDocs := make([]prettier.Doc, len(n.Arguments))
		for i, arg := range n.Arguments {
			doc, _, err := exprDoc(arg)
			if err != nil {
				return nil, 0, err
			}
			argDocs[i] = doc
		}
		return prettier.Concat{
			prettier.Text(n.Function.Name),
			prettier.WrapParentheses(
				prettier.Join(prettier.Text(", "), argDocs...),
				prettier.SoftLine{},
			),
		}, precPrimary, nil

	case *bound.ConversionExpression:
		inner, _, err := exprDoc(n.Expression)
		if err != nil {
			return nil, 0, err
		}
		keyword, err := typeKeyword(n.TargetType)
		if err != nil {
			return nil, 0, err
		}
		return prettier.Concat{
			prettier.Text(keyword),
			prettier.WrapParentheses(inner, prettier.SoftLine{}),
		}, precPrimary, nil

	case *bound.ErrorExpression:
		return nil, 0, evalerror.NewStructural("pretty-printer reached an ErrorExpression node")

	default:
		return nil, 0, evalerror.NewStructural("unsupported expression kind %q in pretty-printer", e.BoundKind())
	}
}

func wrapIfNeeded(doc prettier.Doc, childPrec, parentPrec precedence) prettier.Doc {
	if parentPrec >= childPrec {
		return prettier.WrapParentheses(doc, prettier.SoftLine{})
	}
	return doc
}

// literalDoc renders the three literal value domains §4.5 allows: Bool as
// a keyword token, Int in decimal, String quoted with doubled interior
// quotes. Any other Go-native value — including the untyped nil used for
// an Object null literal, which has no keyword in the concrete syntax's
// compatibility surface (§6) — is a structural error.
func literalDoc(value any) (prettier.Doc, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return prettier.Text("true"), nil
		}
		return prettier.Text("false"), nil
	case int64:
		return prettier.Text(fmt.Sprintf("%d", v)), nil
	case string:
		return prettier.Text(quoteString(v)), nil
	default:
		return nil, evalerror.NewStructural("pretty-printer cannot render literal value of type %T", value)
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' {
			b.WriteString(`""`)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func typeKeyword(t symbols.Type) (string, error) {
	switch t.Kind {
	case symbols.KindBool:
		return "bool", nil
	case symbols.KindInt:
		return "int", nil
	case symbols.KindString:
		return "string", nil
	case symbols.KindObject:
		return "object", nil
	default:
		return "", evalerror.NewStructural("pretty-printer cannot name conversion target type %q", t.Kind)
	}
}
