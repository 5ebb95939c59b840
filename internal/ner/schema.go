package ner

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// responseSchemaMap returns the JSON-Schema the sidecar response must
// satisfy before we consume its spans.
func responseSchemaMap() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"entities"},
		"properties": map[string]any{
			"entities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"text", "label"},
					"properties": map[string]any{
						"text":  map[string]any{"type": "string"},
						"label": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

var responseSchema = mustCompileSchema(responseSchemaMap())

func mustCompileSchema(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// validateResponse checks raw sidecar output against the response schema.
func validateResponse(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if err := responseSchema.Validate(v); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}
	return nil
}
