// internal/evalfile/parse.go
package evalfile

import (
	"encoding/json"
	"strings"
)

// FormatError reports text that did not yield a usable evaluation document.
type FormatError struct {
	Reason string
}

// Error returns the rejection reason.
func (e *FormatError) Error() string { return e.Reason }

// Parse turns decoded text into a Document. It first attempts to parse the
// whole text as one JSON value. If that fails it falls back to line mode:
// each non-blank line is trimmed, stripped of a single trailing comma, and
// parsed on its own; the first line that parses wins and the rest of the
// file is ignored. This is a recovery heuristic for newline-delimited or
// comma-joined fragments, not a multi-record reader — one file yields at
// most one logical document.
//
// The result must be a JSON object carrying timestamp, config, and
// dataset_results, otherwise a *FormatError is returned.
func Parse(text string) (Document, error) {
	text = strings.TrimSpace(text)

	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		value = firstParseableLine(text)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &FormatError{Reason: "not a valid object"}
	}
	for _, key := range []string{"timestamp", "config", "dataset_results"} {
		if _, present := obj[key]; !present {
			return nil, &FormatError{Reason: "missing required fields"}
		}
	}
	return Document(obj), nil
}

func firstParseableLine(text string) any {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSuffix(line, ",")
		if line == "" {
			continue
		}
		var value any
		if err := json.Unmarshal([]byte(line), &value); err == nil {
			return value
		}
	}
	return nil
}
