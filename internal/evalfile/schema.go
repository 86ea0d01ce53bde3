// internal/evalfile/schema.go
package evalfile

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the wire contract a well-formed result file follows.
// It backs the check command only; Parse keeps its own permissive
// required-field check so that sloppy-but-usable files still load.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []string{"timestamp", "config", "dataset_results"},
	"properties": map[string]any{
		"timestamp": map[string]any{"type": "string"},
		"config": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"model": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
				},
			},
		},
		"dataset_results": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"average_accuracy": map[string]any{"type": "number"},
					"results": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"file":          map[string]any{"type": "string"},
								"accuracy_mean": map[string]any{"type": "number"},
							},
						},
					},
				},
			},
		},
	},
}

// CheckDocument validates a parsed document against the wire contract and
// returns one finding per violation. An empty slice means the document
// conforms.
func CheckDocument(doc Document) ([]string, error) {
	schemaLoader := gojsonschema.NewGoLoader(documentSchema)
	documentLoader := gojsonschema.NewGoLoader(map[string]any(doc))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	findings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		findings = append(findings, desc.String())
	}
	return findings, nil
}
