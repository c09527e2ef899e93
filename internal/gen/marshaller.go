package gen

import (
	"fmt"
	"strings"

	"binding-generator/internal/common"
	"binding-generator/internal/model"
)

// ReceiverKind selects what a generated call binds to.
type ReceiverKind int

const (
	// ReceiverInstance calls a method on the wrapped receiver object.
	ReceiverInstance ReceiverKind = iota
	// ReceiverStatic calls a function on the owning class or namespace.
	ReceiverStatic
	// ReceiverConstructor calls the owning class's factory.
	ReceiverConstructor
)

// String returns a human-readable receiver kind name.
func (k ReceiverKind) String() string {
	switch k {
	case ReceiverInstance:
		return "instance"
	case ReceiverStatic:
		return "static"
	case ReceiverConstructor:
		return "constructor"
	default:
		return common.UnknownStr
	}
}

const (
	// constructorMember is the declared name of construction members.
	constructorMember = "constructor"
	// factoryName is the native operation constructors bind to.
	factoryName = "Create"
)

// Names of locals shared by every emitted callback body.
const (
	exceptionStateVar = "exception_state"
	returnValueVar    = "return_value"
	contextVar        = "context"
	selfVar           = "self"
	argcVar           = "argc"
	argvVar           = "argv"
	argPrefix         = "args_"
)

// CallContext describes where a marshalled call lands.
type CallContext struct {
	Receiver ReceiverKind
	// Owner is the owning class or namespace name.
	Owner string
	// Member is the declared member name.
	Member string
}

// Target returns the native member the call binds to. Constructors bind to
// the factory; no other name is rewritten.
func (c CallContext) Target() string {
	if c.Receiver == ReceiverConstructor || c.Member == constructorMember {
		return factoryName
	}

	return c.Member
}

// marshaller emits the arity dispatch scope of one callable.
type marshaller struct {
	mapper TypeMapper
}

// dispatchScope returns the statements of the dispatch scope for fn.
//
// The scope converts the k required parameters, then walks tiers for
// argument counts k..n. Each tier but the last is guarded by argc <= count
// and returns right after its call; the last tier is unconditional so that
// surplus arguments still reach the all-parameter call. Every conversion is
// followed by an exception check that leaves the scope before any call.
//
// When assign is true the call result is stored in the return slot.
func (m marshaller) dispatchScope(fn *model.Function, call CallContext, assign bool) []string {
	k := fn.RequiredCount()
	n := len(fn.Params)

	var out []string

	if call.Receiver == ReceiverInstance {
		out = append(out, fmt.Sprintf("auto* %s = toScriptWrappable<%s>(this_val);", selfVar, call.Owner))
	}

	args := make([]string, 0, n)

	for i := range k {
		out = append(out, m.convert(fn.Params[i], i, false)...)
		args = append(args, argName(fn.Params[i]))
	}

	out = append(out, m.tier(call, args, k, k == n, assign)...)

	for i := k; i < n; i++ {
		out = append(out, "")
		out = append(out, m.convert(fn.Params[i], i, true)...)
		args = append(args, argName(fn.Params[i]))
		out = append(out, m.tier(call, args, i+1, i+1 == n, assign)...)
	}

	return out
}

// convert emits the conversion of argv[index] into the parameter's local.
func (m marshaller) convert(p model.Parameter, index int, optional bool) []string {
	converter := m.mapper.Converter(p.Type)
	if optional {
		converter = converterClass(m.mapper.Optional(p.Type))
	}

	return append([]string{
		fmt.Sprintf("auto&& %s = %s::FromValue(ctx, %s[%d], %s);",
			argName(p), converter, argvVar, index, exceptionStateVar),
	}, exceptionCheck("return;")...)
}

// tier emits the call issued when argc equals count.
func (m marshaller) tier(call CallContext, args []string, count int, final, assign bool) []string {
	stmt := callStatement(call, args, assign)
	if final {
		return []string{stmt}
	}

	return block(fmt.Sprintf("if (%s <= %d)", argcVar, count), stmt, "return;")
}

// callStatement renders the single native call with its arguments.
func callStatement(call CallContext, args []string, assign bool) string {
	var sb strings.Builder

	if assign {
		sb.WriteString(returnValueVar + " = ")
	}

	var params []string

	switch call.Receiver {
	case ReceiverInstance:
		sb.WriteString(selfVar + "->" + call.Target())
	default:
		sb.WriteString(call.Owner + "::" + call.Target())

		params = append(params, contextVar)
	}

	params = append(params, args...)
	params = append(params, exceptionStateVar)

	sb.WriteString("(" + strings.Join(params, ", ") + ");")

	return sb.String()
}

func exceptionCheck(onFailure string) []string {
	return block(fmt.Sprintf("if (%s.HasException())", exceptionStateVar), onFailure)
}

func argName(p model.Parameter) string {
	return argPrefix + p.Name
}
