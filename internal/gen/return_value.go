package gen

import (
	"fmt"

	"binding-generator/internal/model"
)

// promiseType is the named return type emitted as a promise handle.
const promiseType = "Promise"

// voidResult is the script value returned by callables with no result.
const voidResult = "JS_NULL"

// returnSlot is the return-slot declaration and the expression that encodes
// the slot into a script value after the call.
type returnSlot struct {
	// Decl declares the slot; empty when nothing is returned.
	Decl string
	// Result is the script value returned on success.
	Result string
}

// assigns reports whether the call result must be stored in the slot.
func (s returnSlot) assigns() bool {
	return s.Decl != ""
}

// synthesizeReturn picks the slot for a callable returning t.
// Constructors always yield an owning handle to the new instance, whatever
// return type was declared. A named type keeps its handle slot when nullable,
// since a null handle already encodes the absent value.
func (m TypeMapper) synthesizeReturn(t model.Type, call CallContext) returnSlot {
	named := stripNullable(t)

	switch {
	case call.Receiver == ReceiverConstructor:
		return pointerSlot(call.Owner)
	case t.IsVoid():
		return returnSlot{Result: voidResult}
	case named.IsNamed(promiseType):
		return returnSlot{
			Decl:   "ScriptPromise " + returnValueVar + ";",
			Result: returnValueVar + ".ToQuickJS()",
		}
	case named.Kind == model.TypeKindNamed && named.Name != "":
		return pointerSlot(named.Name)
	default:
		return returnSlot{
			Decl:   fmt.Sprintf("%s %s;", m.ImplType(t), returnValueVar),
			Result: fmt.Sprintf("%s::ToValue(ctx, std::move(%s))", m.Converter(t), returnValueVar),
		}
	}
}

func pointerSlot(class string) returnSlot {
	return returnSlot{
		Decl:   fmt.Sprintf("%s* %s = nullptr;", class, returnValueVar),
		Result: returnValueVar + "->ToQuickJS()",
	}
}

// stripNullable removes one nullable wrapper from t.
func stripNullable(t model.Type) model.Type {
	if t.Kind == model.TypeKindNullable {
		return deref(t.Elem)
	}

	return t
}
