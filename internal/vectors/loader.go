package vectors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zkbeta/vecgen/internal/errors"
	"github.com/zkbeta/vecgen/internal/locate"
	"github.com/zkbeta/vecgen/internal/schema"
)

// yamlFileNames are the fallback source documents consulted when the
// canonical test_vectors.json is absent.
var yamlFileNames = []string{"test_vectors.yaml", "test_vectors.yml"}

// requiredNumberFields are the numeric fields every test case must carry.
var requiredNumberFields = []string{"uniform_input", "expected_output", "tolerance"}

// requiredStringFields are the string fields every test case must carry.
var requiredStringFields = []string{"name", "notes"}

// Load reads the test vector document from the given directory. The JSON
// document is preferred; a YAML document with the same base name is accepted
// when the JSON file does not exist.
func Load(dir string) (*Document, string, error) {
	jsonPath := filepath.Join(dir, locate.VectorsFileName)
	if _, err := os.Stat(jsonPath); err == nil {
		doc, err := LoadFile(jsonPath)
		return doc, jsonPath, err
	}

	for _, name := range yamlFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			doc, err := LoadFile(path)
			return doc, path, err
		}
	}

	return nil, jsonPath, errors.MissingSource(jsonPath)
}

// LoadFile reads and parses a single test vector document. The format is
// chosen by file extension; anything that is not .yaml/.yml is parsed as JSON.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingSource(path)
		}
		return nil, errors.IO(path, err)
	}

	var raw any
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		raw, err = decodeYAML(data)
	default:
		raw, err = decodeJSON(data)
	}
	if err != nil {
		return nil, errors.Malformedf("%s: %v", filepath.Base(path), err)
	}

	if err := schema.ValidateDocument(raw); err != nil {
		return nil, errors.Malformedf("%s: %v", filepath.Base(path), err)
	}

	return extract(raw)
}

// decodeJSON parses the document keeping numbers as json.Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}

// decodeYAML parses the document and normalizes scalars to the same shapes
// the JSON decoder produces, so the rest of the pipeline sees one model.
func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return normalizeYAML(v), nil
}

// normalizeYAML converts YAML scalar types to json.Number recursively.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, item := range val {
			result[k] = normalizeYAML(item)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = normalizeYAML(item)
		}
		return result
	case int:
		return json.Number(strconv.Itoa(val))
	case int64:
		return json.Number(strconv.FormatInt(val, 10))
	case uint64:
		return json.Number(strconv.FormatUint(val, 10))
	case float64:
		return json.Number(strconv.FormatFloat(val, 'g', -1, 64))
	default:
		return v
	}
}

// extract builds the Document from the schema-validated raw value. Per-case
// field requirements are checked here so errors name the 1-based case index.
func extract(raw any) (*Document, error) {
	rawMap, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Malformed("document root must be an object")
	}

	rawCases, ok := rawMap["test_cases"].([]any)
	if !ok {
		return nil, errors.Malformed(`missing required key "test_cases"`)
	}

	cases := make([]TestCase, 0, len(rawCases))
	for i, rawCase := range rawCases {
		idx := i + 1

		caseMap, ok := rawCase.(map[string]any)
		if !ok {
			return nil, errors.MalformedCase(idx, "entry must be an object")
		}

		tc := TestCase{}
		for _, field := range requiredStringFields {
			s, err := stringField(caseMap, field, idx)
			if err != nil {
				return nil, err
			}
			switch field {
			case "name":
				tc.Name = s
			case "notes":
				tc.Notes = s
			}
		}
		for _, field := range requiredNumberFields {
			n, err := numberField(caseMap, field, idx)
			if err != nil {
				return nil, err
			}
			switch field {
			case "uniform_input":
				tc.UniformInput = n
			case "expected_output":
				tc.ExpectedOutput = n
			case "tolerance":
				tc.Tolerance = n
			}
		}

		cases = append(cases, tc)
	}

	bulk := map[string]any{}
	if rawBulk, ok := rawMap["bulk_validation"].(map[string]any); ok {
		bulk = rawBulk
	}

	return &Document{TestCases: cases, BulkValidation: bulk}, nil
}

func stringField(caseMap map[string]any, field string, idx int) (string, error) {
	v, ok := caseMap[field]
	if !ok {
		return "", errors.MalformedCase(idx, fmt.Sprintf("missing required field %q", field))
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.MalformedCase(idx, fmt.Sprintf("field %q must be a string", field))
	}
	return s, nil
}

func numberField(caseMap map[string]any, field string, idx int) (json.Number, error) {
	v, ok := caseMap[field]
	if !ok {
		return "", errors.MalformedCase(idx, fmt.Sprintf("missing required field %q", field))
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", errors.MalformedCase(idx, fmt.Sprintf("field %q must be a number", field))
	}
	return n, nil
}
