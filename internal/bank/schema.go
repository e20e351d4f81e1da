package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema describes the tolerated shape of a question-bank file.
// It is deliberately loose: records are heterogeneous by design, so the
// schema only pins the structural envelope (array or {questions: []}
// of objects) and the types of fields it does recognize. Loading never
// requires validation; this exists for operator-driven checks.
var bankSchema = map[string]any{
	"oneOf": []any{
		map[string]any{
			"type":  "array",
			"items": recordSchema,
		},
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": recordSchema,
				},
			},
			"required": []any{"questions"},
		},
	},
}

var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"Subject":  map[string]any{"type": "string"},
		"subject":  map[string]any{"type": "string"},
		"category": map[string]any{"type": "string"},
		"answers":  map[string]any{"type": "object"},
		"explanation": map[string]any{
			"type": "string",
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateBank checks raw bank JSON against the bank schema. A nil
// return means the envelope is well-formed; normalization may still
// apply defaults for individual fields.
func ValidateBank(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation failed: %w", err)
	}
	return nil
}

// compiledBankSchema compiles the bank schema once and caches it.
func compiledBankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(bankSchema)
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
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
