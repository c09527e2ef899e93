package gen

import (
	"fmt"

	"binding-generator/internal/model"
)

// assembler sequences precheck, exception holder, return slot, dispatch
// scope and result encoding into one callback body.
type assembler struct {
	mapper     TypeMapper
	marshaller marshaller
}

func newAssembler(mapper TypeMapper) assembler {
	return assembler{mapper: mapper, marshaller: marshaller{mapper: mapper}}
}

// functionBody returns the body of the native callback for fn, indented one
// level so it can be placed between the callback's braces.
//
// The exception holder is checked after the dispatch scope and before the
// result is encoded, so a failed conversion or call never yields a value.
func (a assembler) functionBody(fn *model.Function, call CallContext) string {
	slot := a.mapper.synthesizeReturn(fn.Return, call)

	var out []string

	if k := fn.RequiredCount(); k > 0 {
		out = append(out, arityCheck(fn.Name, k)...)
		out = append(out, "")
	}

	out = append(out, fmt.Sprintf("ExceptionState %s;", exceptionStateVar))
	if slot.Decl != "" {
		out = append(out, slot.Decl)
	}

	if call.Receiver != ReceiverInstance {
		out = append(out, fmt.Sprintf("ExecutingContext* %s = ExecutingContext::From(ctx);", contextVar))
	}

	out = append(out, "")
	out = append(out, "[&]() {")
	out = append(out, indentAll(a.marshaller.dispatchScope(fn, call, slot.assigns()), 1)...)
	out = append(out, "}();")
	out = append(out, "")
	out = append(out, exceptionCheck(fmt.Sprintf("return %s.ToQuickJS();", exceptionStateVar))...)
	out = append(out, fmt.Sprintf("return %s;", slot.Result))

	return joinLines(indentAll(out, 1))
}

// arityCheck rejects calls with fewer than required arguments before any
// conversion runs.
func arityCheck(name string, required int) []string {
	return block(fmt.Sprintf("if (%s < %d)", argcVar, required),
		fmt.Sprintf(`return JS_ThrowTypeError(ctx, "Failed to execute '%s' : %d argument required, but %%d present.", %s);`,
			name, required, argcVar))
}
