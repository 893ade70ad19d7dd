// Package fixtures writes the per-case circuit fixture files and the
// aggregate summary consumed by the downstream circuit test harness.
package fixtures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zkbeta/vecgen/internal/errors"
	"github.com/zkbeta/vecgen/internal/vectors"
)

// SummaryFileName is the fixed name of the aggregate summary file.
const SummaryFileName = "test_summary.json"

// SummaryDescription is the fixed description embedded in the summary file.
const SummaryDescription = "Summary of all CIRCOM test cases"

// InputFileName returns the fixture file name for a circuit input.
func InputFileName(caseNumber int) string {
	return fmt.Sprintf("input_case%d.json", caseNumber)
}

// ExpectedFileName returns the fixture file name for an expected output.
func ExpectedFileName(caseNumber int) string {
	return fmt.Sprintf("expected_case%d.json", caseNumber)
}

// inputFixture is the circuit input file content. Field order is the wire
// contract with the circuit harness.
type inputFixture struct {
	Uniform json.Number `json:"uniform"`
}

// expectedFixture is the expected output file content. Field order is the
// wire contract with the circuit harness.
type expectedFixture struct {
	ExpectedOutput json.Number `json:"expected_output"`
	Tolerance      json.Number `json:"tolerance"`
	Name           string      `json:"name"`
	Notes          string      `json:"notes"`
}

// SummaryEntry is the per-case projection kept for the summary document.
type SummaryEntry struct {
	Case         int         `json:"case"`
	Name         string      `json:"name"`
	Input        json.Number `json:"input"`
	Expected     json.Number `json:"expected"`
	Tolerance    json.Number `json:"tolerance"`
	InputFile    string      `json:"input_file"`
	ExpectedFile string      `json:"expected_file"`
}

// Summary is the aggregate document written once after all cases.
type Summary struct {
	Description    string         `json:"description"`
	TotalCases     int            `json:"total_cases"`
	BulkValidation map[string]any `json:"bulk_validation"`
	TestCases      []SummaryEntry `json:"test_cases"`
}

// Emitter writes fixture files for test cases, in order, into one output
// directory. Existing files of the same name are overwritten.
type Emitter struct {
	outDir  string
	entries []SummaryEntry
}

// NewEmitter creates an Emitter for the given output directory.
func NewEmitter(outDir string) *Emitter {
	return &Emitter{
		outDir:  outDir,
		entries: make([]SummaryEntry, 0),
	}
}

// EmitCase writes the input and expected fixture files for one test case and
// records its summary entry. caseNumber is 1-based and assigned by the caller
// in document order.
func (e *Emitter) EmitCase(caseNumber int, tc vectors.TestCase) (SummaryEntry, error) {
	inputName := InputFileName(caseNumber)
	input := inputFixture{Uniform: tc.UniformInput}
	if err := e.writeJSON(inputName, input); err != nil {
		return SummaryEntry{}, err
	}

	expectedName := ExpectedFileName(caseNumber)
	expected := expectedFixture{
		ExpectedOutput: tc.ExpectedOutput,
		Tolerance:      tc.Tolerance,
		Name:           tc.Name,
		Notes:          tc.Notes,
	}
	if err := e.writeJSON(expectedName, expected); err != nil {
		return SummaryEntry{}, err
	}

	entry := SummaryEntry{
		Case:         caseNumber,
		Name:         tc.Name,
		Input:        tc.UniformInput,
		Expected:     tc.ExpectedOutput,
		Tolerance:    tc.Tolerance,
		InputFile:    inputName,
		ExpectedFile: expectedName,
	}
	e.entries = append(e.entries, entry)
	return entry, nil
}

// WriteSummary builds the aggregate summary from all emitted entries and
// writes it to the fixed summary file.
func (e *Emitter) WriteSummary(bulkValidation map[string]any) (Summary, error) {
	if bulkValidation == nil {
		bulkValidation = map[string]any{}
	}
	summary := Summary{
		Description:    SummaryDescription,
		TotalCases:     len(e.entries),
		BulkValidation: bulkValidation,
		TestCases:      e.entries,
	}
	if err := e.writeJSON(SummaryFileName, summary); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// writeJSON serializes v with 2-space indentation and writes it into the
// output directory. Map keys marshal sorted, so repeated runs over the same
// source produce byte-identical files.
func (e *Emitter) writeJSON(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.IO(name, err)
	}

	path := filepath.Join(e.outDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.IO(path, err)
	}
	return nil
}
