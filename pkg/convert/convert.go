// Package convert is the Conversion Engine: it classifies and performs the
// implicit, explicit, and identity conversions the binder permits between
// Vivian's primitive types, and carries the two runtime value domains
// (bool and int64) that together model the source language's historical
// "Bool is really an Int" representation — see Classify and Convert for
// how the boundary between them is drawn.
package convert

import (
	"fmt"

	"github.com/lhaig/vivian/internal/evalerror"
	"github.com/lhaig/vivian/pkg/symbols"
)

// Classification reports how from relates to to. Exactly one of
// IsIdentity, IsImplicit, or IsExplicit is set when Exists is true.
type Classification struct {
	IsIdentity bool
	IsImplicit bool
	IsExplicit bool
	Exists     bool
}

// Classify determines whether, and how, a value of type from can become a
// value of type to.
//
// Identity: from == to.
// Implicit: Bool -> Int (the historical integer encoding, preserved for
// arithmetic contexts); anything -> Object.
// Explicit: Int -> Bool (truthiness narrowing); anything -> String;
// String -> an Arithmetic type, restricted to the literal tokens
// "true"/"false" — see Convert.
// Nonexistent: any other pair of distinct primitives, and anything
// to/from Error.
func Classify(from, to symbols.Type) Classification {
	if from.Equal(to) {
		return Classification{IsIdentity: true, Exists: true}
	}
	if from.Kind == symbols.KindError || to.Kind == symbols.KindError {
		return Classification{}
	}
	if to.Kind == symbols.KindObject {
		return Classification{IsImplicit: true, Exists: true}
	}
	if from.Kind == symbols.KindBool && to.Kind == symbols.KindInt {
		return Classification{IsImplicit: true, Exists: true}
	}
	if from.Kind == symbols.KindInt && to.Kind == symbols.KindBool {
		return Classification{IsExplicit: true, Exists: true}
	}
	if to.Kind == symbols.KindString {
		return Classification{IsExplicit: true, Exists: true}
	}
	if from.Kind == symbols.KindString && to.Is(symbols.Arithmetic) {
		return Classification{IsExplicit: true, Exists: true}
	}
	return Classification{}
}

// Convert performs the conversion Classify(TypeOf(value), to) reports as
// existing. value must be the Go-native runtime representation of its
// source type: bool for Bool, int64 for Int, string for String, or any
// boxed value for Object. It returns a *evalerror.Conversion if the
// conversion does not exist for this particular value, even when Classify
// would accept the type pair in general (the String-to-Arithmetic case).
func Convert(to symbols.Type, value any) (any, error) {
	switch to.Kind {
	case symbols.KindObject:
		return value, nil
	case symbols.KindBool:
		return toBool(value)
	case symbols.KindInt:
		return toInt(value)
	case symbols.KindString:
		return toString(value)
	default:
		return nil, evalerror.NewConversion(typeName(value), to.String(), "no rule targets this type")
	}
}

func toBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case string:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, evalerror.NewConversion("String", "Bool", "only the literal strings \"true\" and \"false\" convert, got %q", v)
		}
	default:
		return nil, evalerror.NewConversion(typeName(value), "Bool", "unsupported source value")
	}
}

func toInt(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		switch v {
		case "true":
			return int64(1), nil
		case "false":
			return int64(0), nil
		default:
			return nil, evalerror.NewConversion("String", "Int", "only the literal strings \"true\" and \"false\" convert, got %q", v)
		}
	default:
		return nil, evalerror.NewConversion(typeName(value), "Int", "unsupported source value")
	}
}

func toString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case int64:
		return fmt.Sprintf("%d", v), nil
	case nil:
		return "", nil
	default:
		return nil, evalerror.NewConversion(typeName(value), "String", "unsupported source value")
	}
}

func typeName(value any) string {
	switch value.(type) {
	case bool:
		return "Bool"
	case int64:
		return "Int"
	case string:
		return "String"
	case nil:
		return "Object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
