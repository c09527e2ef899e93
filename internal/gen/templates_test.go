package gen

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/internal/model"
)

// copyDefaultTemplates writes the embedded templates into a fresh directory.
func copyDefaultTemplates(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	entries, err := fs.ReadDir(defaultTemplateFS, defaultTemplateDir)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for _, e := range entries {
		data, err := fs.ReadFile(defaultTemplateFS, defaultTemplateDir+"/"+e.Name())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644))
	}

	return dir
}

func TestDefaultTemplates(t *testing.T) {
	set, err := DefaultTemplates()
	require.NoError(t, err)
	assert.NotNil(t, set.base)
	assert.NotNil(t, set.iface)
	assert.NotNil(t, set.dictionary)
	assert.NotNil(t, set.globalFunction)
}

func TestLoadTemplates_FromDir(t *testing.T) {
	dir := copyDefaultTemplates(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dictionary.cc.tpl"),
		[]byte("// dictionary {{.ClassName}}:{{range .Members}} {{.Name}}{{end}}\n"), 0o644))

	set, err := LoadTemplates(dir)
	require.NoError(t, err)

	f := &model.File{Name: "init", Units: []model.Unit{
		&model.DictionaryUnit{Name: "Init", Properties: []model.Property{
			{Name: "a", Type: model.Primitive(model.PrimitiveInt32)},
			{Name: "b", Type: model.Primitive(model.PrimitiveBoolean)},
		}},
	}}

	out, err := NewGenerator(DefaultGeneratorConfig(), set).GenerateFile(f)
	require.NoError(t, err)
	assert.Contains(t, string(out.Content), "// dictionary Init: a b\n")
}

func TestLoadTemplates_Missing(t *testing.T) {
	dir := copyDefaultTemplates(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "global_function.cc.tpl")))

	_, err := LoadTemplates(dir)
	require.ErrorIs(t, err, ErrTemplateMissing)
	assert.Contains(t, err.Error(), "global_function.cc.tpl")
}

func TestLoadTemplates_UndefinedField(t *testing.T) {
	dir := copyDefaultTemplates(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "interface.cc.tpl"),
		[]byte("// {{.ClassName}} {{.Superclass}}\n"), 0o644))

	_, err := LoadTemplates(dir)
	require.ErrorIs(t, err, ErrTemplateInvalid)
	assert.Contains(t, err.Error(), "interface.cc.tpl")
}

func TestLoadTemplates_UndefinedFieldInOptionalBranch(t *testing.T) {
	dir := copyDefaultTemplates(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "interface.cc.tpl"),
		[]byte("{{if .Constructor}}{{.Constructor.Signature}}{{end}}\n"), 0o644))

	_, err := LoadTemplates(dir)
	require.ErrorIs(t, err, ErrTemplateInvalid)
}

func TestLoadTemplates_ParseError(t *testing.T) {
	dir := copyDefaultTemplates(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.cc.tpl"), []byte("{{.Content"), 0o644))

	_, err := LoadTemplates(dir)
	require.ErrorIs(t, err, ErrTemplateInvalid)
}
