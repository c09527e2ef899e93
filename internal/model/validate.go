package model

import (
	"fmt"

	"binding-generator/internal/diagnostic"
)

// Diagnostic codes reported by validation.
const (
	CodeEmptyName              = "empty_name"
	CodeDuplicateUnit          = "duplicate_unit"
	CodeDuplicateMember        = "duplicate_member"
	CodeDuplicateParameter     = "duplicate_parameter"
	CodeOptionalBeforeRequired = "optional_before_required"
	CodeMalformedType          = "malformed_type"
	CodeVoidValue              = "void_value"
	CodeParentCycle            = "parent_cycle"
	CodeUnknownUnitKind        = "unknown_unit_kind"
)

// UnitLabel returns the name diagnostics use for the unit at index i.
// Unnamed units get a positional label so they can still be isolated.
func UnitLabel(i int, u Unit) string {
	if name := u.UnitName(); name != "" {
		return name
	}

	return fmt.Sprintf("#%d", i)
}

// ValidateFile validates every unit of f plus the file-level rules:
// a file name, unique unit names and an acyclic parent chain.
// Diagnostics are attributed to units via UnitLabel.
func ValidateFile(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Name == "" {
		res.AddError(CodeEmptyName, "declaration file has no name", "", "")
	}

	seen := make(map[string]bool, len(f.Units))

	for i, u := range f.Units {
		label := UnitLabel(i, u)
		if seen[label] {
			res.AddError(CodeDuplicateUnit, fmt.Sprintf("unit %q declared more than once", label), label, "")
		}

		seen[label] = true

		res.Merge(*validateUnit(label, u))
	}

	_, cyclic := InheritanceOrder(f)
	for _, iu := range cyclic {
		res.AddError(CodeParentCycle,
			fmt.Sprintf("parent chain of %q loops back on itself", iu.ClassName), iu.ClassName, iu.Parent)
	}

	return res
}

// ValidateUnit validates a single unit in isolation.
func ValidateUnit(u Unit) *diagnostic.Diagnostics {
	return validateUnit(UnitLabel(0, u), u)
}

func validateUnit(label string, u Unit) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if u.UnitName() == "" {
		res.AddError(CodeEmptyName, "unit has no name", label, "")
	}

	switch u := u.(type) {
	case *InterfaceUnit:
		members := make(map[string]bool)
		for i := range u.Methods {
			checkUniqueMember(res, label, members, u.Methods[i].Name)
			validateFunction(res, label, &u.Methods[i])
		}

		accessors := make(map[string]bool)
		for _, p := range u.Properties {
			checkUniqueMember(res, label, accessors, p.Name)
			validateProperty(res, label, p)
		}
	case *DictionaryUnit:
		members := make(map[string]bool)
		for _, p := range u.Properties {
			checkUniqueMember(res, label, members, p.Name)
			validateProperty(res, label, p)
		}
	case *GlobalFunctionSetUnit:
		members := make(map[string]bool)
		for i := range u.Functions {
			checkUniqueMember(res, label, members, u.Functions[i].Name)
			validateFunction(res, label, &u.Functions[i])
		}
	case *UnknownUnit:
		msg := fmt.Sprintf("unit kind %q is not generated", u.RawKind)
		if hint := SuggestUnitKind(u.RawKind); hint != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", hint)
		}

		res.AddWarning(CodeUnknownUnitKind, msg, label, "")
	}

	return res
}

func checkUniqueMember(res *diagnostic.Diagnostics, unit string, seen map[string]bool, name string) {
	if name == "" {
		res.AddError(CodeEmptyName, "member has no name", unit, "")
		return
	}

	if seen[name] {
		res.AddError(CodeDuplicateMember, fmt.Sprintf("member %q declared more than once", name), unit, name)
	}

	seen[name] = true
}

// validateFunction checks parameters and return type. Required parameters
// must form a prefix of the list: arity dispatch truncates from the end.
func validateFunction(res *diagnostic.Diagnostics, unit string, fn *Function) {
	seen := make(map[string]bool, len(fn.Params))
	sawOptional := false

	for _, p := range fn.Params {
		member := fn.Name + "." + p.Name

		switch {
		case p.Name == "":
			res.AddError(CodeEmptyName, "parameter has no name", unit, fn.Name)
		case seen[p.Name]:
			res.AddError(CodeDuplicateParameter, fmt.Sprintf("duplicate parameter %q", p.Name), unit, fn.Name)
		}

		seen[p.Name] = true

		if p.Required && sawOptional {
			res.AddError(CodeOptionalBeforeRequired,
				fmt.Sprintf("required parameter %q follows an optional parameter", p.Name), unit, member)
		}

		if !p.Required {
			sawOptional = true
		}

		validateValueType(res, unit, member, p.Type)
	}

	if msg := malformed(fn.Return); msg != "" && fn.Return.Kind != TypeKindUnknown {
		res.AddError(CodeMalformedType, msg, unit, fn.Name)
	}
}

func validateProperty(res *diagnostic.Diagnostics, unit string, p Property) {
	validateValueType(res, unit, p.Name, p.Type)
}

// validateValueType checks a type that must carry a value.
func validateValueType(res *diagnostic.Diagnostics, unit, member string, t Type) {
	if t.IsVoid() {
		res.AddError(CodeVoidValue, "value type cannot be void", unit, member)
		return
	}

	if msg := malformed(t); msg != "" {
		res.AddError(CodeMalformedType, msg, unit, member)
	}
}

// malformed returns a description of the first structural defect in t, or "".
func malformed(t Type) string {
	switch t.Kind {
	case TypeKindPrimitive:
		return ""
	case TypeKindArray, TypeKindNullable:
		if t.Elem == nil {
			return fmt.Sprintf("%s type has no element type", t.Kind)
		}

		return malformed(*t.Elem)
	case TypeKindNamed:
		if t.Name == "" {
			return "named type has no name"
		}

		return ""
	default:
		return "type has no kind"
	}
}
