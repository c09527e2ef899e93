package gen

import "binding-generator/internal/model"

// converterNames is the fixed 1:1 table from primitive kind to converter name.
// Kinds missing from it (unknown, void) fall back to anyConverter.
var converterNames = map[model.PrimitiveKind]string{
	model.PrimitiveInt32:     "Int32",
	model.PrimitiveInt64:     "Int64",
	model.PrimitiveDouble:    "Double",
	model.PrimitiveBoolean:   "Boolean",
	model.PrimitiveDOMString: "DOMString",
	model.PrimitiveObject:    "Object",
	model.PrimitiveCallback:  "Callback",
	model.PrimitiveAny:       "Any",
}

const (
	anyConverter      = "Any"
	sequenceConverter = "Sequence"
	nullableConverter = "Nullable"
	optionalConverter = "Optional"
)

// TypeMapper maps declared types to converter type expressions.
// It is total: every Type maps to some converter.
type TypeMapper struct {
	// Prefix is prepended to every built-in converter name; named types are
	// left as declared. With "IDL", sequence<int32>? maps to
	// IDLNullable<IDLSequence<IDLInt32>>.
	Prefix string
}

// Map returns the converter type expression for t.
func (m TypeMapper) Map(t model.Type) string {
	switch t.Kind {
	case model.TypeKindArray:
		return m.wrap(sequenceConverter, m.Map(deref(t.Elem)))
	case model.TypeKindNullable:
		return m.wrap(nullableConverter, m.Map(deref(t.Elem)))
	case model.TypeKindNamed:
		if t.Name != "" {
			return t.Name
		}
	case model.TypeKindPrimitive:
		if name, ok := converterNames[t.Primitive]; ok {
			return m.Prefix + name
		}
	}

	return m.Prefix + anyConverter
}

// Optional returns the converter for an omitted-able argument of type t.
func (m TypeMapper) Optional(t model.Type) string {
	return m.wrap(optionalConverter, m.Map(t))
}

// Converter returns the full converter class for t, e.g. Converter<IDLInt32>.
func (m TypeMapper) Converter(t model.Type) string {
	return converterClass(m.Map(t))
}

// ImplType returns the native implementation type expression for t.
func (m TypeMapper) ImplType(t model.Type) string {
	return m.Converter(t) + "::ImplType"
}

func (m TypeMapper) wrap(outer, inner string) string {
	return m.Prefix + outer + "<" + inner + ">"
}

func converterClass(expr string) string {
	return "Converter<" + expr + ">"
}

func deref(t *model.Type) model.Type {
	if t == nil {
		return model.Type{}
	}

	return *t
}
