package studypack

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// storedPackSchema describes the shape a persisted pack must have before
// the store will trust it. Anything that fails validation is treated as
// corrupt and therefore absent, never as an error to propagate.
var storedPackSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"packId": map[string]any{"type": "string", "minLength": 1},
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject":       map[string]any{"type": "string"},
				"difficulty":    map[string]any{"type": "string"},
				"questionCount": map[string]any{"type": "integer", "minimum": 1},
				"timestamp":     map[string]any{"type": "string"},
			},
			"required": []any{"subject", "difficulty", "questionCount"},
		},
		"quiz": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":     map[string]any{"type": "string", "minLength": 1},
							"type":   map[string]any{"type": "string", "enum": []any{"MCQ", "Short Answer"}},
							"prompt": map[string]any{"type": "string"},
						},
						"required": []any{"id", "type", "prompt"},
					},
				},
			},
			"required": []any{"questions"},
		},
		"flashcards": map[string]any{"type": "array"},
		"readiness":  map[string]any{"type": "integer", "minimum": 50, "maximum": 100},
		"keywords":   map[string]any{"type": "array", "maxItems": 8},
	},
	"required": []any{"packId", "meta", "quiz", "flashcards", "readiness", "keywords"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateStored checks raw JSON against the persisted-pack schema.
// Returns an error when the bytes are not valid JSON or do not match.
func ValidateStored(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := storedSchema()
	if err != nil {
		return fmt.Errorf("compile pack schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// storedSchema compiles the schema once and caches it.
func storedSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the
		// map through encoding/json first.
		defBytes, err := json.Marshal(storedPackSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://study-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
