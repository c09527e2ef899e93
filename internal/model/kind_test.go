package model_test

import (
	"fmt"

	"binding-generator/internal/model"
)

func Example() {
	fmt.Println(model.PrimitiveInt32)
	fmt.Println(model.PrimitiveDOMString)
	fmt.Println(model.PrimitiveKind(42))
	fmt.Println(model.UnitKindGlobalFunctionSet)
	fmt.Println(model.TypeKindNullable)
	// Output:
	// Int32
	// DOMString
	// PrimitiveKind(42)
	// GlobalFunctionSet
	// nullable
}
