package catalog

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema constrains catalog documents before they are unmarshalled:
// every lesson needs an id, a band and drills; every drill content must name
// its variant through the kind discriminant.
const catalogSchema = `{
	"type": "object",
	"properties": {
		"lessons": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"title": {"type": "string"},
					"level": {"enum": ["PreA0", "A0", "A1", "A2", "B1", "B2", "C1", "C2"]},
					"drills": {
						"type": "array",
						"items": {
							"type": "object",
							"properties": {
								"id": {"type": "string", "minLength": 1},
								"content": {
									"type": "object",
									"properties": {
										"kind": {"enum": ["grammar", "vocab"]},
										"grammar": {
											"type": "object",
											"properties": {
												"type": {"enum": ["fill_blank", "multiple_choice", "matching", "reorder"]},
												"prompt": {"type": "string"},
												"choices": {"type": "array", "items": {"type": "string"}},
												"answer": {"type": "array", "items": {"type": "string"}, "minItems": 1},
												"explanation": {"type": "string"}
											},
											"required": ["type", "prompt", "answer"],
											"additionalProperties": false
										},
										"vocab": {
											"type": "object",
											"properties": {
												"word": {"type": "string", "minLength": 1},
												"translation": {"type": "string", "minLength": 1},
												"example": {"type": "string"}
											},
											"required": ["word", "translation"],
											"additionalProperties": false
										}
									},
									"required": ["kind"],
									"additionalProperties": false
								}
							},
							"required": ["id", "content"],
							"additionalProperties": false
						}
					}
				},
				"required": ["id", "title", "level", "drills"],
				"additionalProperties": false
			}
		}
	},
	"required": ["lessons"],
	"additionalProperties": false
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateCatalog checks raw against the catalog schema.
func validateCatalog(raw []byte) error {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(catalogSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://catalog.json")
	})
	if compileErr != nil {
		return compileErr
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return compiledSchema.Validate(doc)
}
