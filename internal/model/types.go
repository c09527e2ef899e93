package model

// Type describes a declared parameter, property or return type.
// Array and Nullable wrap Elem; Named refers to another declared unit by Name.
type Type struct {
	Kind      TypeKind      // Variant tag
	Primitive PrimitiveKind // For TypeKindPrimitive
	Elem      *Type         // For TypeKindArray and TypeKindNullable
	Name      string        // For TypeKindNamed
}

// Primitive returns a primitive type of the given kind.
func Primitive(kind PrimitiveKind) Type {
	return Type{Kind: TypeKindPrimitive, Primitive: kind}
}

// ArrayOf returns a sequence type with the given element type.
func ArrayOf(elem Type) Type {
	return Type{Kind: TypeKindArray, Elem: &elem}
}

// NullableOf returns a nullable wrapper around inner.
func NullableOf(inner Type) Type {
	return Type{Kind: TypeKindNullable, Elem: &inner}
}

// Named returns a reference to another declared interface or dictionary.
func Named(name string) Type {
	return Type{Kind: TypeKindNamed, Name: name}
}

// Void returns the void return type.
func Void() Type {
	return Primitive(PrimitiveVoid)
}

// IsVoid returns true for the void return type. The zero Type counts as void,
// so a function declared without a return type returns nothing.
func (t Type) IsVoid() bool {
	return t.Kind == TypeKindUnknown || (t.Kind == TypeKindPrimitive && t.Primitive == PrimitiveVoid)
}

// IsNamed returns true if t is a named reference to name.
func (t Type) IsNamed(name string) bool {
	return t.Kind == TypeKindNamed && t.Name == name
}

// String returns the IDL spelling of the type, e.g. "sequence<int32>?".
func (t Type) String() string {
	switch t.Kind {
	case TypeKindPrimitive:
		if s, ok := canonicalSpelling[t.Primitive]; ok {
			return s
		}

		return "any"
	case TypeKindArray:
		return "sequence<" + t.elem().String() + ">"
	case TypeKindNullable:
		return t.elem().String() + "?"
	case TypeKindNamed:
		return t.Name
	default:
		return "void"
	}
}

func (t Type) elem() Type {
	if t.Elem == nil {
		return Type{}
	}

	return *t.Elem
}

// Parameter is one declared function parameter.
type Parameter struct {
	Name     string
	Type     Type
	Required bool
}

// Function is a declared method, constructor or free function.
type Function struct {
	Name   string
	Params []Parameter
	Return Type
}

// RequiredCount returns the number of required parameters.
func (f *Function) RequiredCount() int {
	n := 0

	for _, p := range f.Params {
		if p.Required {
			n++
		}
	}

	return n
}

// Property is a declared attribute of an interface or member of a dictionary.
type Property struct {
	Name     string
	Type     Type
	Readonly bool
}

// Unit is one top-level declared entity. The set of implementations is closed.
type Unit interface {
	Kind() UnitKind
	UnitName() string
	isUnit()
}

// InterfaceUnit is a script-visible class with methods and attributes.
type InterfaceUnit struct {
	ClassName  string
	Parent     string // empty when the interface has no parent
	Methods    []Function
	Properties []Property
}

// DictionaryUnit is a structured value converted member by member.
type DictionaryUnit struct {
	Name       string
	Properties []Property
}

// GlobalFunctionSetUnit is a set of free functions bound to a namespace.
type GlobalFunctionSetUnit struct {
	Name      string // owning namespace
	Functions []Function
}

// UnknownUnit is a unit whose declared kind this generator does not handle.
type UnknownUnit struct {
	Name    string
	RawKind string
}

func (*InterfaceUnit) Kind() UnitKind         { return UnitKindInterface }
func (*DictionaryUnit) Kind() UnitKind        { return UnitKindDictionary }
func (*GlobalFunctionSetUnit) Kind() UnitKind { return UnitKindGlobalFunctionSet }
func (*UnknownUnit) Kind() UnitKind           { return UnitKindUnknown }

func (u *InterfaceUnit) UnitName() string         { return u.ClassName }
func (u *DictionaryUnit) UnitName() string        { return u.Name }
func (u *GlobalFunctionSetUnit) UnitName() string { return u.Name }
func (u *UnknownUnit) UnitName() string           { return u.Name }

func (*InterfaceUnit) isUnit()         {}
func (*DictionaryUnit) isUnit()        {}
func (*GlobalFunctionSetUnit) isUnit() {}
func (*UnknownUnit) isUnit()           {}

// File is one declaration file: an ordered list of units generated together.
type File struct {
	Version string
	// Name is the stem used for generated file names, e.g. "point".
	Name  string
	Units []Unit
}
