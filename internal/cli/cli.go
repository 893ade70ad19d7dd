// Package cli drives a single vecgen run: locate, load, emit, report.
package cli

import (
	"os"
	"path/filepath"

	"github.com/zkbeta/vecgen/internal/errors"
	"github.com/zkbeta/vecgen/internal/fixtures"
	"github.com/zkbeta/vecgen/internal/locate"
	"github.com/zkbeta/vecgen/internal/output"
	"github.com/zkbeta/vecgen/internal/vectors"
)

// Run resolves paths relative to the installed binary and performs a full
// regeneration. It returns the process exit code. vecgen takes no arguments;
// every invocation regenerates all fixtures.
func Run() int {
	w := output.New()

	paths, err := locate.FromExecutable()
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.ExitIOFailure
	}

	return RunWithPaths(paths, w)
}

// RunWithPaths performs a full regeneration against explicit paths and
// reports through the given writer.
func RunWithPaths(paths locate.Paths, w *output.Writer) int {
	if err := generate(paths, w); err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

// generate runs the full pipeline. Any error aborts the run; fixture files
// already written stay in place.
func generate(paths locate.Paths, w *output.Writer) error {
	if err := locate.EnsureOutputDir(paths.OutputDir); err != nil {
		return err
	}

	doc, srcPath, err := vectors.Load(paths.VectorsDir)
	if err != nil {
		return err
	}

	w.Action("Reading test vectors from: %s", srcPath)
	w.Println("Found %d test cases", len(doc.TestCases))
	w.Println("")

	emitter := fixtures.NewEmitter(paths.OutputDir)
	for i, tc := range doc.TestCases {
		entry, err := emitter.EmitCase(i+1, tc)
		if err != nil {
			return err
		}
		w.Generated("Generated test case %d: %s", entry.Case, entry.Name)
		w.Detail("Input: %s → Expected: %s (±%s)", entry.Input, entry.Expected, entry.Tolerance)
	}

	summary, err := emitter.WriteSummary(doc.BulkValidation)
	if err != nil {
		return err
	}

	w.Println("")
	w.Generated("Generated summary: %s", filepath.Join(paths.OutputDir, fixtures.SummaryFileName))

	return report(paths.OutputDir, summary.TotalCases, w)
}

// report prints the final run report. The file listing is a directory
// snapshot, not a memory of what was written this run, so stale files from
// earlier runs remain visible.
func report(outDir string, totalCases int, w *output.Writer) error {
	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return errors.IO(outDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	w.Println("")
	w.Banner("Test Input Generation Complete!")
	w.Println("Generated %d test cases in: %s", totalCases, outDir)
	w.Println("")
	w.Section("Files created:")
	w.List(names)
	w.Println("")
	w.Section("Next steps:")
	w.Step(1, "Implement PCHIPBeta.circom circuit")
	w.Step(2, "Compile: ./scripts/compile.sh")
	w.Step(3, "Test: ./scripts/test_circuit.sh")

	return nil
}
