package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion is returned for declaration files of a major version
// this generator does not understand.
var ErrUnsupportedVersion = errors.New("unsupported declaration file version")

// supportedMajor is the declaration file major version understood here.
const supportedMajor = "v1"

// LoadFile loads and parses a YAML declaration file from the given path.
// When the file declares no name, the base name of path without extension is used.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return f, nil
}

// Parse parses YAML data into a File.
// Parse does not validate the declarations; see ValidateFile.
func Parse(data []byte) (*File, error) {
	var fy fileYAML

	err := yaml.Unmarshal(data, &fy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&fy)

	if err := checkVersion(fy.Version); err != nil {
		return nil, err
	}

	return fy.toFile(), nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(fy *fileYAML) {
	if fy.Version == "" {
		fy.Version = supportedMajor
	}

	if !strings.HasPrefix(fy.Version, "v") {
		fy.Version = "v" + fy.Version
	}
}

func checkVersion(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, version)
	}

	if major := semver.Major(version); major != supportedMajor {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, major, supportedMajor)
	}

	return nil
}
