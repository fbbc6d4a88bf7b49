package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionBatchSchema is the shape the model must return: a JSON array
// of question objects with all five fields present.
var questionBatchSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems": 2,
			},
			"correctAnswer": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"explanation": map[string]any{
				"type": "string",
			},
			"difficulty": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 10,
			},
		},
		"required": []any{"question", "options", "correctAnswer", "explanation", "difficulty"},
	},
}

var compileBatchSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(questionBatchSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-batch.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateBatch validates a parsed JSON value against the batch schema.
func validateBatch(parsed any) error {
	compiled, err := compileBatchSchema()
	if err != nil {
		return fmt.Errorf("compile question batch schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
