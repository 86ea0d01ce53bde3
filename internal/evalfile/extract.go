// internal/evalfile/extract.go
package evalfile

import (
	"math"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Record is one per-file accuracy measurement in canonical form.
type Record struct {
	Dataset      string  `json:"dataset"`
	Category     string  `json:"category"`
	File         string  `json:"file"`
	AccuracyMean float64 `json:"accuracy_mean"`
	SourceLabel  string  `json:"source_label"`
}

// Extract flattens a document's dataset results into records plus a
// per-dataset average map. Malformed nested data never fails extraction:
// a bad entry loses only that entry, a bad dataset payload loses only that
// dataset. The average for a dataset is the declared average_accuracy when
// it coerces to a finite float, otherwise the unweighted mean of the
// retained entries; a dataset with neither contributes no average.
//
// Datasets are visited in sorted path order so output is deterministic;
// within a dataset, entry order is preserved.
func Extract(doc Document) ([]Record, map[string]float64) {
	label := doc.SourceLabel()
	results := doc.DatasetResults()

	paths := make([]string, 0, len(results))
	for p := range results {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var records []Record
	averages := make(map[string]float64)

	for _, dsPath := range paths {
		payload, ok := results[dsPath].(map[string]any)
		if !ok {
			continue
		}
		name := datasetName(dsPath)
		declared, hasDeclared := coerceFloat(payload["average_accuracy"])

		entries, _ := payload["results"].([]any)
		var sum float64
		var kept int
		for _, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			filePath, ok := entry["file"].(string)
			if !ok {
				continue
			}
			mean, ok := coerceFloat(entry["accuracy_mean"])
			if !ok {
				continue
			}
			base := path.Base(filePath)
			records = append(records, Record{
				Dataset:      name,
				Category:     categoryName(base),
				File:         base,
				AccuracyMean: mean,
				SourceLabel:  label,
			})
			sum += mean
			kept++
		}

		switch {
		case hasDeclared:
			averages[name] = declared
		case kept > 0:
			averages[name] = sum / float64(kept)
		}
	}

	return records, averages
}

// datasetName strips the leading "datasets/" prefix and surrounding slashes
// from a dataset path. The split keeps only what follows the last
// occurrence, matching how runs produced by nested runner layouts name
// their datasets.
func datasetName(dsPath string) string {
	if !strings.HasPrefix(dsPath, "datasets/") {
		return dsPath
	}
	parts := strings.Split(dsPath, "datasets/")
	return strings.Trim(parts[len(parts)-1], "/")
}

// categoryName drops the final extension from a result file's base name.
func categoryName(base string) string {
	if ext := path.Ext(base); ext != "" {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// coerceFloat accepts JSON numbers, ints, and numeric strings. Anything
// else, or a non-finite result, reports false.
func coerceFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
