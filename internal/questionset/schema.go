package questionset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://daycheck-question-set.json"

// fileSchema describes the on-disk question set document.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type": "string",
		},
		"categories": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"label": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "label"},
				"additionalProperties": false,
			},
		},
		"scale": map[string]any{
			"type":     "array",
			"minItems": MaxScore - MinScore + 1,
			"maxItems": MaxScore - MinScore + 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"value": map[string]any{"type": "integer", "minimum": MinScore, "maximum": MaxScore},
					"label": map[string]any{"type": "string"},
				},
				"required":             []any{"value", "label"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer"},
					"text":     map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"id", "text", "category"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"categories", "questions"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles fileSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go ints.
		raw, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// checkSchema validates a decoded document against fileSchema.
func checkSchema(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile question set schema: %w", err)
	}

	// Round-trip through JSON so numbers and maps have the shapes the
	// validator expects regardless of the source decoder.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}

	if err := sch.Validate(normalized); err != nil {
		return &ValidationError{Problems: []string{fmt.Sprintf("schema: %v", err)}}
	}
	return nil
}
