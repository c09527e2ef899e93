package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ErrInvalidType is returned for type strings that cannot be parsed.
var ErrInvalidType = errors.New("invalid type")

const (
	sequencePrefix = "sequence<"
	sequenceSuffix = ">"
	nullableSuffix = "?"
)

// ParseType parses an IDL type spelling such as "sequence<int32>?".
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, fmt.Errorf("%w: empty type", ErrInvalidType)
	}

	if inner, ok := strings.CutSuffix(s, nullableSuffix); ok {
		t, err := ParseType(inner)
		if err != nil {
			return Type{}, err
		}

		return NullableOf(t), nil
	}

	if rest, ok := strings.CutPrefix(s, sequencePrefix); ok {
		body, ok := strings.CutSuffix(rest, sequenceSuffix)
		if !ok {
			return Type{}, fmt.Errorf("%w: unterminated sequence in %q", ErrInvalidType, s)
		}

		elem, err := ParseType(body)
		if err != nil {
			return Type{}, err
		}

		return ArrayOf(elem), nil
	}

	if kind, ok := primitiveSpellings[s]; ok {
		return Primitive(kind), nil
	}

	if !isIdentifier(s) {
		return Type{}, fmt.Errorf("%w: %q is not an identifier", ErrInvalidType, s)
	}

	return Named(s), nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return s != ""
}

// UnmarshalYAML implements custom YAML unmarshaling for Type.
// Accepts a scalar IDL spelling: "int32", "sequence<Node>?".
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected type string, got %v", node.Line, node.Kind)
	}

	parsed, err := ParseType(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*t = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Type.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Raw YAML shapes of a declaration file. They are converted into the Unit
// variants by toFile so the rest of the generator never sees YAML.

type fileYAML struct {
	Version string     `yaml:"version,omitempty"`
	Name    string     `yaml:"name,omitempty"`
	Units   []unitYAML `yaml:"units"`
}

type unitYAML struct {
	Kind       string         `yaml:"kind"`
	Name       string         `yaml:"name"`
	Parent     string         `yaml:"parent,omitempty"`
	Methods    []functionYAML `yaml:"methods,omitempty"`
	Functions  []functionYAML `yaml:"functions,omitempty"`
	Properties []propertyYAML `yaml:"properties,omitempty"`
}

type functionYAML struct {
	Name    string          `yaml:"name"`
	Params  []parameterYAML `yaml:"params,omitempty"`
	Returns Type            `yaml:"returns,omitempty"`
}

type parameterYAML struct {
	Name     string `yaml:"name"`
	Type     Type   `yaml:"type"`
	Optional bool   `yaml:"optional,omitempty"`
}

type propertyYAML struct {
	Name     string `yaml:"name"`
	Type     Type   `yaml:"type"`
	Readonly bool   `yaml:"readonly,omitempty"`
}

// Unit kind spellings accepted in declaration files.
const (
	unitKindInterface       = "interface"
	unitKindDictionary      = "dictionary"
	unitKindGlobalFunctions = "global_functions"
)

func (fy *fileYAML) toFile() *File {
	f := &File{
		Version: fy.Version,
		Name:    fy.Name,
		Units:   make([]Unit, 0, len(fy.Units)),
	}

	for i := range fy.Units {
		f.Units = append(f.Units, fy.Units[i].toUnit())
	}

	return f
}

func (uy *unitYAML) toUnit() Unit {
	switch uy.Kind {
	case unitKindInterface:
		return &InterfaceUnit{
			ClassName:  uy.Name,
			Parent:     uy.Parent,
			Methods:    toFunctions(uy.Methods),
			Properties: toProperties(uy.Properties),
		}
	case unitKindDictionary:
		return &DictionaryUnit{
			Name:       uy.Name,
			Properties: toProperties(uy.Properties),
		}
	case unitKindGlobalFunctions:
		return &GlobalFunctionSetUnit{
			Name:      uy.Name,
			Functions: toFunctions(uy.Functions),
		}
	default:
		return &UnknownUnit{Name: uy.Name, RawKind: uy.Kind}
	}
}

func toFunctions(in []functionYAML) []Function {
	if len(in) == 0 {
		return nil
	}

	out := make([]Function, 0, len(in))

	for _, fy := range in {
		fn := Function{Name: fy.Name, Return: fy.Returns}
		for _, py := range fy.Params {
			fn.Params = append(fn.Params, Parameter{
				Name:     py.Name,
				Type:     py.Type,
				Required: !py.Optional,
			})
		}

		out = append(out, fn)
	}

	return out
}

func toProperties(in []propertyYAML) []Property {
	if len(in) == 0 {
		return nil
	}

	out := make([]Property, 0, len(in))
	for _, py := range in {
		out = append(out, Property(py))
	}

	return out
}
