package gen

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"binding-generator/internal/model"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// ConverterPrefix is prepended to built-in converter names.
	ConverterPrefix string
	// FilePrefix is prepended to generated file names.
	FilePrefix string
	// FileExtension is the generated source file extension.
	FileExtension string
	// HeaderExtension is the extension of the companion header.
	HeaderExtension string
	// Concurrency bounds how many declaration files are generated at once.
	Concurrency int
	// Logger receives generation progress; nil discards it.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ConverterPrefix: "IDL",
		FilePrefix:      "qjs_",
		FileExtension:   ".cc",
		HeaderExtension: ".h",
		Concurrency:     1,
	}
}

// Generator composes binding source from declaration files.
// It holds no per-run state and is safe for concurrent use.
type Generator struct {
	config    GeneratorConfig
	templates *TemplateSet
	assembler assembler
	logger    *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration and templates.
func NewGenerator(config GeneratorConfig, templates *TemplateSet) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{
		config:    config,
		templates: templates,
		assembler: newAssembler(TypeMapper{Prefix: config.ConverterPrefix}),
		logger:    logger,
	}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "qjs_point.cc").
	Filename string
	// Content is the generated source text.
	Content []byte
}

// UnitSource is the composed text of one unit plus the registration entries
// it contributes.
type UnitSource struct {
	Kind model.UnitKind
	Name string
	// Text is empty for units that contribute nothing.
	Text          string
	MethodTable   []MethodEntry
	PropertyTable []PropertyEntry
	FunctionTable []MethodEntry
	TypeInfo      *WrapperTypeInfo
}

// Generate generates one source file per declaration file, up to
// Concurrency files at a time. Failures are isolated: files and units that
// generate cleanly are returned alongside a joined error describing the rest.
func (g *Generator) Generate(files []*model.File) ([]GeneratedFile, error) {
	results := make([]*GeneratedFile, len(files))
	errs := make([]error, len(files))

	var eg errgroup.Group
	eg.SetLimit(max(g.config.Concurrency, 1))

	for i, f := range files {
		eg.Go(func() error {
			results[i], errs[i] = g.GenerateFile(f)
			return nil
		})
	}

	_ = eg.Wait()

	out := make([]GeneratedFile, 0, len(files))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}

	return out, errors.Join(errs...)
}

// GenerateFile validates and composes every unit of f and wraps the result
// in the base template. A unit that fails validation or composition is left
// out and reported in the returned error; the file is still produced from
// the remaining units unless every unit failed.
func (g *Generator) GenerateFile(f *model.File) (*GeneratedFile, error) {
	if f == nil {
		return nil, errors.New("declaration file is nil")
	}

	diags := model.ValidateFile(f)
	if fileLevel := diags.FileLevel(); fileLevel.HasErrors() {
		return nil, fmt.Errorf("declaration file %q: %w", f.Name, fileLevel.Error())
	}

	var (
		sources []UnitSource
		errs    []error
	)

	for i, u := range f.Units {
		label := model.UnitLabel(i, u)
		log := g.logger.With("file", f.Name, "unit", label, "kind", u.Kind())

		unitDiags := diags.ForUnit(label)
		for _, w := range unitDiags.Warnings {
			log.Warn("skipping unit", "reason", w.Message)
		}

		if unitDiags.HasErrors() {
			err := fmt.Errorf("unit %s: %w", label, unitDiags.Error())
			log.Error("invalid unit", "error", err)
			errs = append(errs, err)

			continue
		}

		src, err := g.ComposeUnit(u)
		if err != nil {
			err = fmt.Errorf("unit %s: %w", label, err)
			log.Error("composing unit", "error", err)
			errs = append(errs, err)

			continue
		}

		log.Debug("composed unit",
			"methods", len(src.MethodTable)+len(src.FunctionTable),
			"properties", len(src.PropertyTable))

		sources = append(sources, src)
	}

	if len(sources) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	content, err := render(g.templates.base, g.baseContext(f, sources))
	if err != nil {
		return nil, errors.Join(append(errs, fmt.Errorf("declaration file %q: %w", f.Name, err))...)
	}

	return &GeneratedFile{
		Filename: g.config.FilePrefix + f.Name + g.config.FileExtension,
		Content:  []byte(content),
	}, errors.Join(errs...)
}

// ComposeUnit composes the source text of one unit from its kind's template.
// Units of an unrecognized kind compose to an empty UnitSource.
func (g *Generator) ComposeUnit(u model.Unit) (UnitSource, error) {
	switch u := u.(type) {
	case *model.InterfaceUnit:
		return g.composeInterface(u)
	case *model.DictionaryUnit:
		return g.composeDictionary(u)
	case *model.GlobalFunctionSetUnit:
		return g.composeGlobalFunctions(u)
	case *model.UnknownUnit:
		// Not generated; contributes nothing.
	}

	return UnitSource{Kind: u.Kind(), Name: u.UnitName()}, nil
}

// baseContext folds the unit sources in declaration order.
func (g *Generator) baseContext(f *model.File, sources []UnitSource) BaseContext {
	ctx := BaseContext{
		Name:   f.Name,
		Header: g.config.FilePrefix + f.Name + g.config.HeaderExtension,
	}

	var texts []string

	for _, src := range sources {
		if src.Text != "" {
			texts = append(texts, src.Text)
		}

		ctx.MethodTable = append(ctx.MethodTable, src.MethodTable...)
		ctx.PropertyTable = append(ctx.PropertyTable, src.PropertyTable...)
		ctx.GlobalFunctionTable = append(ctx.GlobalFunctionTable, src.FunctionTable...)

		if src.TypeInfo != nil {
			ctx.TypeInfos = append(ctx.TypeInfos, *src.TypeInfo)
		}
	}

	ctx.Content = joinLines(texts)

	return ctx
}

func (g *Generator) composeInterface(u *model.InterfaceUnit) (UnitSource, error) {
	ctx := InterfaceContext{
		ClassName:    u.ClassName,
		WrapperClass: wrapperClass(u.ClassName),
		TypeInfo: WrapperTypeInfo{
			ClassID:             classID(u.ClassName),
			ClassName:           u.ClassName,
			Parent:              u.Parent,
			ConstructorCallback: wrapperClass(u.ClassName) + "::ConstructorCallback",
		},
	}

	for i := range u.Methods {
		fn := &u.Methods[i]

		if fn.Name == constructorMember {
			ctx.Constructor = &Callback{
				Name:   fn.Name,
				Symbol: ctx.TypeInfo.ConstructorCallback,
				Body:   g.assembler.functionBody(fn, CallContext{Receiver: ReceiverConstructor, Owner: u.ClassName, Member: fn.Name}),
			}

			continue
		}

		cb := g.callback(fn, CallContext{Receiver: ReceiverInstance, Owner: u.ClassName, Member: fn.Name})
		ctx.Methods = append(ctx.Methods, cb)
		ctx.MethodTable = append(ctx.MethodTable, MethodEntry{Name: fn.Name, Callback: cb.Symbol, Arity: len(fn.Params)})
	}

	for _, p := range u.Properties {
		acc := g.accessor(u.ClassName, p)
		ctx.Accessors = append(ctx.Accessors, acc)

		entry := PropertyEntry{Name: p.Name, Getter: acc.Getter.Symbol}
		if acc.Setter != nil {
			entry.Setter = acc.Setter.Symbol
		}

		ctx.PropertyTable = append(ctx.PropertyTable, entry)
	}

	text, err := render(g.templates.iface, ctx)
	if err != nil {
		return UnitSource{}, err
	}

	return UnitSource{
		Kind:          model.UnitKindInterface,
		Name:          u.ClassName,
		Text:          text,
		MethodTable:   slices.Clone(ctx.MethodTable),
		PropertyTable: slices.Clone(ctx.PropertyTable),
		TypeInfo:      &ctx.TypeInfo,
	}, nil
}

func (g *Generator) composeDictionary(u *model.DictionaryUnit) (UnitSource, error) {
	ctx := DictionaryContext{ClassName: u.Name}

	for _, p := range u.Properties {
		ctx.Members = append(ctx.Members, g.dictionaryMember(p))
	}

	text, err := render(g.templates.dictionary, ctx)
	if err != nil {
		return UnitSource{}, err
	}

	return UnitSource{Kind: model.UnitKindDictionary, Name: u.Name, Text: text}, nil
}

func (g *Generator) composeGlobalFunctions(u *model.GlobalFunctionSetUnit) (UnitSource, error) {
	ctx := GlobalFunctionContext{
		Namespace:    u.Name,
		WrapperClass: wrapperClass(u.Name),
	}

	for i := range u.Functions {
		fn := &u.Functions[i]

		cb := g.callback(fn, CallContext{Receiver: ReceiverStatic, Owner: u.Name, Member: fn.Name})
		ctx.Functions = append(ctx.Functions, cb)
		ctx.FunctionTable = append(ctx.FunctionTable, MethodEntry{Name: fn.Name, Callback: cb.Symbol, Arity: len(fn.Params)})
	}

	text, err := render(g.templates.globalFunction, ctx)
	if err != nil {
		return UnitSource{}, err
	}

	return UnitSource{
		Kind:          model.UnitKindGlobalFunctionSet,
		Name:          u.Name,
		Text:          text,
		FunctionTable: slices.Clone(ctx.FunctionTable),
	}, nil
}

func (g *Generator) callback(fn *model.Function, call CallContext) Callback {
	return Callback{
		Name:   fn.Name,
		Symbol: methodSymbol(call.Owner, fn.Name),
		Body:   g.assembler.functionBody(fn, call),
	}
}

// accessor builds the getter, and the setter unless p is readonly. Both call
// the member by its declared name; the setter overload takes the new value.
func (g *Generator) accessor(owner string, p model.Property) Accessor {
	call := CallContext{Receiver: ReceiverInstance, Owner: owner, Member: p.Name}

	getter := model.Function{Name: p.Name, Return: p.Type}
	acc := Accessor{
		Name: p.Name,
		Getter: Callback{
			Name:   p.Name,
			Symbol: getterSymbol(owner, p.Name),
			Body:   g.assembler.functionBody(&getter, call),
		},
	}

	if !p.Readonly {
		setter := model.Function{
			Name:   p.Name,
			Params: []model.Parameter{{Name: "value", Type: p.Type, Required: true}},
			Return: model.Void(),
		}
		acc.Setter = &Callback{
			Name:   p.Name,
			Symbol: setterSymbol(owner, p.Name),
			Body:   g.assembler.functionBody(&setter, call),
		}
	}

	return acc
}

// dictionaryMember emits conversion-only code for one dictionary member.
// Absent members keep their default value.
func (g *Generator) dictionaryMember(p model.Property) DictionaryMember {
	converter := g.assembler.mapper.Converter(p.Type)
	field := fieldName(p.Name)

	body := []string{fmt.Sprintf("JSValue v = JS_GetPropertyStr(ctx, value, %q);", p.Name)}
	body = append(body, block("if (!JS_IsUndefined(v))",
		fmt.Sprintf("%s = %s::FromValue(ctx, v, %s);", field, converter, exceptionStateVar))...)
	body = append(body, "JS_FreeValue(ctx, v);")
	body = append(body, exceptionCheck("return false;")...)

	fill := append([]string{"{"}, indentAll(body, 1)...)
	fill = append(fill, "}")

	return DictionaryMember{
		Name:   p.Name,
		Field:  field,
		Fill:   joinLines(indentAll(fill, 1)),
		Encode: fmt.Sprintf("%s::ToValue(ctx, %s)", converter, field),
	}
}
