// internal/evalfile/document.go
package evalfile

const (
	unknownModel = "<unknown>"
	noTimestamp  = "<no-ts>"
)

// Document is the parsed top-level structure of one evaluation result file.
// Parse guarantees the three required keys exist; everything nested below
// them is optional, so every accessor checks presence and shape and returns
// a sentinel or empty value instead of failing.
type Document map[string]any

// Timestamp returns the run timestamp, or "<no-ts>" when absent.
func (d Document) Timestamp() string {
	if ts, ok := d["timestamp"].(string); ok {
		return ts
	}
	return noTimestamp
}

// ModelName returns config.model.name, or "<unknown>" when any level of the
// nesting is absent or of an unexpected shape.
func (d Document) ModelName() string {
	config, ok := d["config"].(map[string]any)
	if !ok {
		return unknownModel
	}
	model, ok := config["model"].(map[string]any)
	if !ok {
		return unknownModel
	}
	name, ok := model["name"].(string)
	if !ok {
		return unknownModel
	}
	return name
}

// SourceLabel identifies this document's run in combined output. All records
// extracted from one document share it.
func (d Document) SourceLabel() string {
	return d.ModelName() + " @ " + d.Timestamp()
}

// DatasetResults returns the dataset path to payload map, or nil when the
// value is not an object.
func (d Document) DatasetResults() map[string]any {
	results, ok := d["dataset_results"].(map[string]any)
	if !ok {
		return nil
	}
	return results
}
