package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndCheckFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{
		{Filename: "qjs_a.cc", Content: []byte("one\ntwo\nthree\n")},
		{Filename: "qjs_b.cc", Content: []byte("b\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	got, err := os.ReadFile(filepath.Join(dir, "qjs_a.cc"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", string(got))

	stale, err := CheckFiles(files, dir)
	require.NoError(t, err)
	assert.Empty(t, stale)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "qjs_a.cc"), []byte("one\n2\nthree\n"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "qjs_b.cc")))

	stale, err = CheckFiles(files, dir)
	require.NoError(t, err)
	require.Len(t, stale, 2)

	assert.Equal(t, "qjs_a.cc", stale[0].Filename)
	assert.False(t, stale[0].Missing)
	assert.Contains(t, stale[0].Diff, "--- a/qjs_a.cc")
	assert.Contains(t, stale[0].Diff, "+++ b/qjs_a.cc")
	assert.Contains(t, stale[0].Diff, "\n-2\n")
	assert.Contains(t, stale[0].Diff, "\n+two\n")

	assert.Equal(t, StaleFile{Filename: "qjs_b.cc", Missing: true}, stale[1])
}

func TestDiff_Identical(t *testing.T) {
	diff, err := Diff("x.cc", []byte("same\n"), []byte("same\n"))
	require.NoError(t, err)
	assert.Empty(t, diff)
}
