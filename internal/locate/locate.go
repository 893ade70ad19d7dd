// Package locate resolves the fixed paths vecgen works with.
package locate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zkbeta/vecgen/internal/errors"
)

// VectorsFileName is the name of the test vector source document.
const VectorsFileName = "test_vectors.json"

// OutputDirName is the name of the generated fixture directory.
const OutputDirName = "test"

// Paths holds the resolved locations for a run. They are computed once at
// startup and passed down; nothing re-derives them mid-run.
type Paths struct {
	VectorsDir string // directory expected to contain test_vectors.json
	OutputDir  string // directory receiving generated fixtures
}

// VectorsFile returns the path of the canonical JSON source document.
func (p Paths) VectorsFile() string {
	return filepath.Join(p.VectorsDir, VectorsFileName)
}

// FromExecutable resolves paths relative to the running binary. The binary is
// installed under <circuits>/scripts/, the vector document lives two levels
// up and the fixture directory is the "test" sibling of scripts/.
func FromExecutable() (Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to locate executable: %w", err)
	}
	return FromToolDir(filepath.Dir(exe)), nil
}

// FromToolDir resolves paths relative to an explicit tool directory.
func FromToolDir(toolDir string) Paths {
	return Paths{
		VectorsDir: filepath.Clean(filepath.Join(toolDir, "..", "..")),
		OutputDir:  filepath.Clean(filepath.Join(toolDir, "..", OutputDirName)),
	}
}

// EnsureOutputDir creates the fixture output directory if it is absent.
// Only the leaf directory is created, never its parents. An existing
// directory is fine; an existing non-directory or a missing parent is an
// I/O failure.
func EnsureOutputDir(dir string) error {
	err := os.Mkdir(dir, 0755)
	if err == nil {
		return nil
	}
	if os.IsExist(err) {
		info, statErr := os.Stat(dir)
		if statErr != nil {
			return errors.IO(dir, statErr)
		}
		if !info.IsDir() {
			return errors.IO(dir, fmt.Errorf("output path exists and is not a directory"))
		}
		return nil
	}
	return errors.IO(dir, err)
}
