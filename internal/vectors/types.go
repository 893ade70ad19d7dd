// Package vectors loads the curated test vector document for vecgen.
package vectors

import "encoding/json"

// TestCase is a single curated test vector. Numeric values are kept as
// json.Number so fixtures carry them verbatim, with no float re-formatting.
type TestCase struct {
	Name           string      // Unique-by-convention identifier
	UniformInput   json.Number // The circuit's single scalar input
	ExpectedOutput json.Number // Expected scalar output
	Tolerance      json.Number // Acceptable absolute deviation downstream
	Notes          string      // Free text, may be empty
}

// Document is the parsed test vector document. TestCases order is
// semantically meaningful: it determines fixture case numbering.
type Document struct {
	TestCases      []TestCase
	BulkValidation map[string]any // Opaque pass-through block, never empty-nil
}
