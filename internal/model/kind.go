package model

import "binding-generator/internal/common"

//go:generate go tool stringer -type=PrimitiveKind -trimprefix=Primitive -output=kind_string.go
//go:generate go tool stringer -type=UnitKind -trimprefix=UnitKind -output=unitkind_string.go

// PrimitiveKind enumerates the built-in scalar kinds a type can name.
type PrimitiveKind int

const (
	PrimitiveUnknown PrimitiveKind = iota // zero value; maps to the Any converter
	PrimitiveVoid                         // return types only
	PrimitiveInt32
	PrimitiveInt64
	PrimitiveDouble
	PrimitiveBoolean
	PrimitiveDOMString
	PrimitiveObject
	PrimitiveCallback
	PrimitiveAny
)

// primitiveSpellings maps accepted IDL spellings to kinds.
// canonicalSpelling holds the one used when printing.
var primitiveSpellings = map[string]PrimitiveKind{
	"void":      PrimitiveVoid,
	"undefined": PrimitiveVoid,
	"int32":     PrimitiveInt32,
	"long":      PrimitiveInt32,
	"int64":     PrimitiveInt64,
	"long long": PrimitiveInt64,
	"double":    PrimitiveDouble,
	"boolean":   PrimitiveBoolean,
	"bool":      PrimitiveBoolean,
	"DOMString": PrimitiveDOMString,
	"string":    PrimitiveDOMString,
	"object":    PrimitiveObject,
	"function":  PrimitiveCallback,
	"callback":  PrimitiveCallback,
	"any":       PrimitiveAny,
}

var canonicalSpelling = map[PrimitiveKind]string{
	PrimitiveVoid:      "void",
	PrimitiveInt32:     "int32",
	PrimitiveInt64:     "int64",
	PrimitiveDouble:    "double",
	PrimitiveBoolean:   "boolean",
	PrimitiveDOMString: "DOMString",
	PrimitiveObject:    "object",
	PrimitiveCallback:  "function",
	PrimitiveAny:       "any",
}

// UnitKind classifies a top-level declared unit.
type UnitKind int

const (
	UnitKindUnknown UnitKind = iota
	UnitKindInterface
	UnitKindDictionary
	UnitKindGlobalFunctionSet
)

// TypeKind is the variant tag of a Type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindPrimitive
	TypeKindArray
	TypeKindNullable
	TypeKindNamed
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindArray:
		return "array"
	case TypeKindNullable:
		return "nullable"
	case TypeKindNamed:
		return "named"
	default:
		return common.UnknownStr
	}
}
