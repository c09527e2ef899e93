package gen

import (
	"fmt"
	"strings"
)

// Callback is one generated native callback.
type Callback struct {
	// Name is the declared member name.
	Name string
	// Symbol is the native function name of the callback.
	Symbol string
	// Body is the callback body, already indented for placement in braces.
	Body string
}

// MethodEntry is a (name, arity) registration of a method or global function.
type MethodEntry struct {
	Name     string
	Callback string
	Arity    int
}

// String renders the entry as an initializer, e.g. {"move", Point_moveCallback, 3}.
func (e MethodEntry) String() string {
	return fmt.Sprintf("{%q, %s, %d}", e.Name, e.Callback, e.Arity)
}

// PropertyEntry is a (name, getter, setter-or-none) attribute registration.
type PropertyEntry struct {
	Name   string
	Getter string
	// Setter is empty for readonly attributes.
	Setter string
}

// String renders the entry as an initializer; a readonly attribute gets nullptr.
func (e PropertyEntry) String() string {
	setter := e.Setter
	if setter == "" {
		setter = "nullptr"
	}

	return fmt.Sprintf("{%q, %s, %s}", e.Name, e.Getter, setter)
}

// Accessor holds the generated getter and optional setter of one attribute.
type Accessor struct {
	Name   string
	Getter Callback
	Setter *Callback
}

// WrapperTypeInfo is the type-metadata record of an interface. It links to
// the parent's record, forming a single-parent chain.
type WrapperTypeInfo struct {
	ClassID             string
	ClassName           string
	Parent              string
	ConstructorCallback string
}

// ParentRef returns the expression for the parent's record, or nullptr.
func (w WrapperTypeInfo) ParentRef() string {
	if w.Parent == "" {
		return "nullptr"
	}

	return w.Parent + "::GetStaticWrapperTypeInfo()"
}

// String renders the record as an initializer.
func (w WrapperTypeInfo) String() string {
	return fmt.Sprintf("{%s, %q, %s, %s}", w.ClassID, w.ClassName, w.ParentRef(), w.ConstructorCallback)
}

// InterfaceContext is the substitution context of the interface template.
type InterfaceContext struct {
	ClassName    string
	WrapperClass string
	// Constructor is nil when the interface declares no constructor.
	Constructor   *Callback
	Methods       []Callback
	Accessors     []Accessor
	MethodTable   []MethodEntry
	PropertyTable []PropertyEntry
	TypeInfo      WrapperTypeInfo
}

// DictionaryMember is the conversion-only code of one dictionary member.
type DictionaryMember struct {
	Name string
	// Field is the native member field the value is stored in.
	Field string
	// Fill converts the script value of the member into Field.
	Fill string
	// Encode converts Field back into a script value.
	Encode string
}

// DictionaryContext is the substitution context of the dictionary template.
type DictionaryContext struct {
	ClassName string
	Members   []DictionaryMember
}

// GlobalFunctionContext is the substitution context of the global function template.
type GlobalFunctionContext struct {
	Namespace     string
	WrapperClass  string
	Functions     []Callback
	FunctionTable []MethodEntry
}

// BaseContext is the substitution context of the base template that wraps
// every unit of one declaration file.
type BaseContext struct {
	// Name is the declaration file name stem.
	Name string
	// Header is the companion header this source includes.
	Header string
	// Content is the composed text of all units, in declaration order.
	Content string
	// Tables folded across all units, in declaration order. The default base
	// template only lists them in its header comment; the install code that
	// registers them lives in the per-kind templates. A custom base template
	// may use them to emit a file-wide registry.
	MethodTable         []MethodEntry
	PropertyTable       []PropertyEntry
	GlobalFunctionTable []MethodEntry
	TypeInfos           []WrapperTypeInfo
}

// Naming conventions for generated symbols. Callback symbols carry the
// owning class or namespace, since every unit of a declaration file lands
// in one translation unit.

func wrapperClass(name string) string {
	return "QJS" + name
}

func classID(name string) string {
	return "JS_CLASS_" + strings.ToUpper(name)
}

func methodSymbol(owner, name string) string {
	return owner + "_" + name + "Callback"
}

func getterSymbol(owner, name string) string {
	return owner + "_" + name + "AttributeGetCallback"
}

func setterSymbol(owner, name string) string {
	return owner + "_" + name + "AttributeSetCallback"
}

func fieldName(name string) string {
	return name + "_"
}
