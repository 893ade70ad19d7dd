// Package schema validates test vector documents against the embedded schema.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/zkbeta/vecgen/schema"
)

var (
	vectorsSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchema compiles the embedded schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("test_vectors.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read test vectors schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal test vectors schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("test_vectors.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add test vectors schema resource: %w", err)
			return
		}

		vectorsSchema, compileErr = compiler.Compile("test_vectors.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile test vectors schema: %w", compileErr)
		}
	})

	return compileErr
}

// ValidateDocument validates a decoded test vector document against the
// embedded schema. The schema checks document shape only; per-case field
// requirements are enforced by the loader so diagnostics can name the
// offending case index.
func ValidateDocument(v any) error {
	if err := compileSchema(); err != nil {
		return err
	}

	if err := vectorsSchema.Validate(v); err != nil {
		return fmt.Errorf("test vector document validation failed: %w", err)
	}

	return nil
}
