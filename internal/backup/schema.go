package backup

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains backup files before any row is written, so
// a truncated or hand-mangled file fails fast instead of half-importing.
const documentSchema = `{
  "type": "object",
  "required": ["version", "profiles"],
  "properties": {
    "version": { "type": "integer", "minimum": 1 },
    "exported_at": { "type": "string" },
    "profiles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "display_name", "variant"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "display_name": { "type": "string", "minLength": 1 },
          "variant": { "enum": ["standard", "junior"] },
          "start_date": { "type": "string" },
          "grade": { "type": "integer", "minimum": 0 },
          "created_at": { "type": "string" },
          "ledger": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "additionalProperties": { "type": "boolean" }
            }
          }
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(documentSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse backup schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://backup.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("backup is not valid JSON: %w", err)
	}
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("backup failed validation: %w", err)
	}
	return nil
}
