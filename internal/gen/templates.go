package gen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"text/template"
)

var (
	// ErrTemplateMissing is returned when a unit template cannot be found.
	ErrTemplateMissing = errors.New("template missing")
	// ErrTemplateInvalid is returned when a template fails to parse or refers
	// to a substitution point its context does not define.
	ErrTemplateInvalid = errors.New("template invalid")
)

//go:embed templates/*.cc.tpl
var defaultTemplateFS embed.FS

const (
	defaultTemplateDir = "templates"
	templateExt        = ".cc.tpl"

	baseTemplate           = "base"
	interfaceTemplate      = "interface"
	dictionaryTemplate     = "dictionary"
	globalFunctionTemplate = "global_function"
)

// TemplateSet holds the parsed template of every unit kind plus the base
// template. It is immutable once loaded and safe for concurrent use.
type TemplateSet struct {
	base           *template.Template
	iface          *template.Template
	dictionary     *template.Template
	globalFunction *template.Template
}

// DefaultTemplates returns the templates embedded in the generator.
func DefaultTemplates() (*TemplateSet, error) {
	return loadTemplates(defaultTemplateFS, defaultTemplateDir)
}

// LoadTemplates reads base.cc.tpl, interface.cc.tpl, dictionary.cc.tpl and
// global_function.cc.tpl from dir.
func LoadTemplates(dir string) (*TemplateSet, error) {
	return loadTemplates(os.DirFS(dir), ".")
}

// loadTemplates parses every template and executes it once against a fully
// populated sample context, so an undefined substitution point fails here
// rather than while generating.
func loadTemplates(fsys fs.FS, dir string) (*TemplateSet, error) {
	set := &TemplateSet{}

	entries := []struct {
		name   string
		dst    **template.Template
		sample any
	}{
		{baseTemplate, &set.base, sampleBaseContext()},
		{interfaceTemplate, &set.iface, sampleInterfaceContext()},
		{dictionaryTemplate, &set.dictionary, sampleDictionaryContext()},
		{globalFunctionTemplate, &set.globalFunction, sampleGlobalFunctionContext()},
	}

	for _, entry := range entries {
		tmpl, err := parseTemplate(fsys, dir, entry.name)
		if err != nil {
			return nil, err
		}

		if err := tmpl.Execute(io.Discard, entry.sample); err != nil {
			return nil, fmt.Errorf("%w: %s%s: %w", ErrTemplateInvalid, entry.name, templateExt, err)
		}

		*entry.dst = tmpl
	}

	return set, nil
}

func parseTemplate(fsys fs.FS, dir, name string) (*template.Template, error) {
	file := path.Join(dir, name+templateExt)

	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, file)
		}

		return nil, fmt.Errorf("reading template %s: %w", file, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateInvalid, err)
	}

	return tmpl, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	return buf.String(), nil
}

// Sample contexts populate every optional branch so validation reaches all
// substitution points.

func sampleCallback(name string) Callback {
	return Callback{Name: name, Symbol: methodSymbol("Sample", name), Body: "  return JS_NULL;"}
}

func sampleInterfaceContext() InterfaceContext {
	ctor := sampleCallback(constructorMember)
	setter := sampleCallback("value")

	return InterfaceContext{
		ClassName:    "Sample",
		WrapperClass: wrapperClass("Sample"),
		Constructor:  &ctor,
		Methods:      []Callback{sampleCallback("run")},
		Accessors: []Accessor{
			{Name: "value", Getter: sampleCallback("value"), Setter: &setter},
		},
		MethodTable:   []MethodEntry{{Name: "run", Callback: methodSymbol("Sample", "run"), Arity: 1}},
		PropertyTable: []PropertyEntry{{Name: "value", Getter: getterSymbol("Sample", "value"), Setter: setterSymbol("Sample", "value")}},
		TypeInfo: WrapperTypeInfo{
			ClassID:             classID("Sample"),
			ClassName:           "Sample",
			Parent:              "SampleBase",
			ConstructorCallback: wrapperClass("Sample") + "::ConstructorCallback",
		},
	}
}

func sampleDictionaryContext() DictionaryContext {
	return DictionaryContext{
		ClassName: "SampleInit",
		Members: []DictionaryMember{
			{Name: "value", Field: fieldName("value"), Fill: "value_ = 0;", Encode: "JS_NULL"},
		},
	}
}

func sampleGlobalFunctionContext() GlobalFunctionContext {
	return GlobalFunctionContext{
		Namespace:     "Sample",
		WrapperClass:  wrapperClass("Sample"),
		Functions:     []Callback{sampleCallback("run")},
		FunctionTable: []MethodEntry{{Name: "run", Callback: methodSymbol("Sample", "run"), Arity: 1}},
	}
}

func sampleBaseContext() BaseContext {
	return BaseContext{
		Name:                "sample",
		Header:              "qjs_sample.h",
		Content:             "// sample",
		MethodTable:         []MethodEntry{{Name: "run", Callback: methodSymbol("Sample", "run"), Arity: 1}},
		PropertyTable:       []PropertyEntry{{Name: "value", Getter: getterSymbol("Sample", "value")}},
		GlobalFunctionTable: []MethodEntry{{Name: "run", Callback: methodSymbol("Sample", "run"), Arity: 1}},
		TypeInfos:           []WrapperTypeInfo{sampleInterfaceContext().TypeInfo},
	}
}
