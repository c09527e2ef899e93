package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// StaleFile is a generated file whose copy on disk differs from a fresh run.
type StaleFile struct {
	Filename string
	// Missing is true when no copy exists on disk.
	Missing bool
	// Diff is a unified diff from the disk copy to the fresh output.
	Diff string
}

// CheckFiles compares freshly generated files against outputDir and returns
// the files that are missing or out of date, in the order given.
func CheckFiles(files []GeneratedFile, outputDir string) ([]StaleFile, error) {
	var stale []StaleFile

	for _, file := range files {
		onDisk, err := os.ReadFile(filepath.Join(outputDir, file.Filename))
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, StaleFile{Filename: file.Filename, Missing: true})
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file.Filename, err)
		}

		if string(onDisk) == string(file.Content) {
			continue
		}

		diff, err := Diff(file.Filename, onDisk, file.Content)
		if err != nil {
			return nil, err
		}

		stale = append(stale, StaleFile{Filename: file.Filename, Diff: diff})
	}

	return stale, nil
}

// Diff renders a unified diff between the disk copy and the generated copy of name.
func Diff(name string, onDisk, generated []byte) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(onDisk)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", name, err)
	}

	return diff, nil
}
