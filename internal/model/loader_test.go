package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointYAML = `
version: "1"
name: point
units:
  - kind: interface
    name: Point
    parent: EventTarget
    methods:
      - name: move
        params:
          - {name: x, type: int32}
          - {name: y, type: int32}
          - {name: z, type: int32, optional: true}
      - name: distance
        params:
          - {name: other, type: Point}
        returns: double
    properties:
      - {name: x, type: double, readonly: true}
      - {name: tags, type: "sequence<DOMString>?"}
  - kind: dictionary
    name: PointInit
    properties:
      - {name: x, type: double}
  - kind: global_functions
    name: Console
    functions:
      - name: parse
        params:
          - {name: input, type: DOMString}
        returns: DOMString
  - kind: enum
    name: Direction
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(pointYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "v1", f.Version)
	assert.Equal(t, "point", f.Name)
	require.Len(t, f.Units, 4, spew.Sdump(f.Units))

	iface, ok := f.Units[0].(*InterfaceUnit)
	require.True(t, ok, spew.Sdump(f.Units[0]))
	assert.Equal(t, "Point", iface.ClassName)
	assert.Equal(t, "EventTarget", iface.Parent)
	require.Len(t, iface.Methods, 2)

	move := iface.Methods[0]
	assert.Equal(t, "move", move.Name)
	assert.True(t, move.Return.IsVoid())
	require.Len(t, move.Params, 3)
	assert.True(t, move.Params[0].Required)
	assert.True(t, move.Params[1].Required)
	assert.False(t, move.Params[2].Required)
	assert.Equal(t, Primitive(PrimitiveInt32), move.Params[2].Type)

	assert.Equal(t, Primitive(PrimitiveDouble), iface.Methods[1].Return)
	assert.Equal(t, Named("Point"), iface.Methods[1].Params[0].Type)

	require.Len(t, iface.Properties, 2)
	assert.True(t, iface.Properties[0].Readonly)
	assert.Equal(t, NullableOf(ArrayOf(Primitive(PrimitiveDOMString))), iface.Properties[1].Type)

	dict, ok := f.Units[1].(*DictionaryUnit)
	require.True(t, ok)
	assert.Equal(t, "PointInit", dict.Name)
	assert.Equal(t, UnitKindDictionary, dict.Kind())

	set, ok := f.Units[2].(*GlobalFunctionSetUnit)
	require.True(t, ok)
	assert.Equal(t, "Console", set.UnitName())
	require.Len(t, set.Functions, 1)
	assert.Equal(t, Primitive(PrimitiveDOMString), set.Functions[0].Return)

	unknown, ok := f.Units[3].(*UnknownUnit)
	require.True(t, ok)
	assert.Equal(t, "enum", unknown.RawKind)
	assert.Equal(t, UnitKindUnknown, unknown.Kind())
}

func TestParse_Version(t *testing.T) {
	f, err := Parse([]byte("units: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "v1", f.Version)

	f, err = Parse([]byte("version: v1.2.0\nunits: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", f.Version)

	_, err = Parse([]byte("version: \"2\"\nunits: []\n"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Parse([]byte("version: banana\nunits: []\n"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParse_InvalidType(t *testing.T) {
	_, err := Parse([]byte(`
units:
  - kind: global_functions
    name: Console
    functions:
      - name: log
        params:
          - {name: msg, type: "sequence<DOMString"}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated sequence")
}

func TestLoadFile_DefaultsName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: []\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "console", f.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
