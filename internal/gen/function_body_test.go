package gen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/internal/model"
)

var arityGuard = regexp.MustCompile(`^if \(argc < (\d+)\) \{$`)

// rejectsArity reports whether the body's precheck throws for argc arguments.
func rejectsArity(t *testing.T, body string, argc int) bool {
	t.Helper()

	for _, line := range strings.Split(body, "\n") {
		if m := arityGuard.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			required, err := strconv.Atoi(m[1])
			require.NoError(t, err)

			return argc < required
		}
	}

	return false
}

func pointMove() *model.Function {
	return &model.Function{
		Name: "move",
		Params: []model.Parameter{
			{Name: "x", Type: model.Primitive(model.PrimitiveInt32), Required: true},
			{Name: "y", Type: model.Primitive(model.PrimitiveInt32), Required: true},
			{Name: "z", Type: model.Primitive(model.PrimitiveInt32)},
		},
		Return: model.Void(),
	}
}

func consoleParse() *model.Function {
	return &model.Function{
		Name:   "parse",
		Params: []model.Parameter{{Name: "input", Type: model.Primitive(model.PrimitiveDOMString), Required: true}},
		Return: model.Primitive(model.PrimitiveDOMString),
	}
}

const pointMoveBody = `  if (argc < 2) {
    return JS_ThrowTypeError(ctx, "Failed to execute 'move' : 2 argument required, but %d present.", argc);
  }

  ExceptionState exception_state;

  [&]() {
    auto* self = toScriptWrappable<Point>(this_val);
    auto&& args_x = Converter<IDLInt32>::FromValue(ctx, argv[0], exception_state);
    if (exception_state.HasException()) {
      return;
    }
    auto&& args_y = Converter<IDLInt32>::FromValue(ctx, argv[1], exception_state);
    if (exception_state.HasException()) {
      return;
    }
    if (argc <= 2) {
      self->move(args_x, args_y, exception_state);
      return;
    }

    auto&& args_z = Converter<IDLOptional<IDLInt32>>::FromValue(ctx, argv[2], exception_state);
    if (exception_state.HasException()) {
      return;
    }
    self->move(args_x, args_y, args_z, exception_state);
  }();

  if (exception_state.HasException()) {
    return exception_state.ToQuickJS();
  }
  return JS_NULL;`

const consoleParseBody = `  if (argc < 1) {
    return JS_ThrowTypeError(ctx, "Failed to execute 'parse' : 1 argument required, but %d present.", argc);
  }

  ExceptionState exception_state;
  Converter<IDLDOMString>::ImplType return_value;
  ExecutingContext* context = ExecutingContext::From(ctx);

  [&]() {
    auto&& args_input = Converter<IDLDOMString>::FromValue(ctx, argv[0], exception_state);
    if (exception_state.HasException()) {
      return;
    }
    return_value = Console::parse(context, args_input, exception_state);
  }();

  if (exception_state.HasException()) {
    return exception_state.ToQuickJS();
  }
  return Converter<IDLDOMString>::ToValue(ctx, std::move(return_value));`

func TestFunctionBody_PointMove(t *testing.T) {
	a := newAssembler(TypeMapper{Prefix: "IDL"})
	body := a.functionBody(pointMove(), CallContext{Receiver: ReceiverInstance, Owner: "Point", Member: "move"})

	assert.Equal(t, pointMoveBody, body)

	lines := strings.Split(body, "\n")
	assert.Equal(t, "args_x, args_y, exception_state", fireCall(t, lines, 2))
	assert.Equal(t, "args_x, args_y, args_z, exception_state", fireCall(t, lines, 3))
	assert.Equal(t, "args_x, args_y, args_z, exception_state", fireCall(t, lines, 4))
	assert.True(t, rejectsArity(t, body, 1))
	assert.False(t, rejectsArity(t, body, 2))
}

func TestFunctionBody_ConsoleParse(t *testing.T) {
	a := newAssembler(TypeMapper{Prefix: "IDL"})
	body := a.functionBody(consoleParse(), CallContext{Receiver: ReceiverStatic, Owner: "Console", Member: "parse"})

	assert.Equal(t, consoleParseBody, body)
	assert.Equal(t, "context, args_input, exception_state", fireCall(t, strings.Split(body, "\n"), 1))
	assert.True(t, rejectsArity(t, body, 0))
}

func TestFunctionBody_NoPrecheckWithoutRequired(t *testing.T) {
	a := newAssembler(TypeMapper{Prefix: "IDL"})
	fn := &model.Function{
		Name:   "log",
		Params: []model.Parameter{{Name: "message", Type: model.Primitive(model.PrimitiveAny)}},
	}

	body := a.functionBody(fn, CallContext{Receiver: ReceiverStatic, Owner: "Console", Member: "log"})

	assert.NotContains(t, body, "JS_ThrowTypeError")
	assert.False(t, rejectsArity(t, body, 0))
	assert.Equal(t, "context, exception_state", fireCall(t, strings.Split(body, "\n"), 0))
	assert.Equal(t, "context, args_message, exception_state", fireCall(t, strings.Split(body, "\n"), 1))
}

func TestFunctionBody_ErrorCheckPrecedesResult(t *testing.T) {
	a := newAssembler(TypeMapper{Prefix: "IDL"})
	fn := &model.Function{Name: "distance", Return: model.Primitive(model.PrimitiveDouble)}

	body := a.functionBody(fn, CallContext{Receiver: ReceiverInstance, Owner: "Point", Member: "distance"})

	check := strings.LastIndex(body, "return exception_state.ToQuickJS();")
	result := strings.LastIndex(body, "return Converter<IDLDouble>::ToValue(ctx, std::move(return_value));")

	require.NotEqual(t, -1, check)
	require.NotEqual(t, -1, result)
	assert.Less(t, check, result)
	assert.Contains(t, body, "return_value = self->distance(exception_state);")
}

func TestFunctionBody_Constructor(t *testing.T) {
	a := newAssembler(TypeMapper{Prefix: "IDL"})
	fn := &model.Function{
		Name:   "constructor",
		Params: []model.Parameter{{Name: "x", Type: model.Primitive(model.PrimitiveDouble), Required: true}},
	}

	body := a.functionBody(fn, CallContext{Receiver: ReceiverConstructor, Owner: "Point", Member: "constructor"})

	assert.Contains(t, body, "Point* return_value = nullptr;")
	assert.Contains(t, body, "ExecutingContext* context = ExecutingContext::From(ctx);")
	assert.Contains(t, body, "return_value = Point::Create(context, args_x, exception_state);")
	assert.Contains(t, body, "return return_value->ToQuickJS();")
	assert.NotContains(t, body, "toScriptWrappable")
}
