// internal/evalfile/schema_test.go
package evalfile

import "testing"

func TestCheckDocumentValid(t *testing.T) {
	doc := mustParse(t, `{
		"timestamp": "2024-06-01",
		"config": {"model": {"name": "m1"}},
		"dataset_results": {
			"mmlu": {
				"average_accuracy": 0.5,
				"results": [{"file": "a.json", "accuracy_mean": 0.5}]
			}
		}
	}`)

	findings, err := CheckDocument(doc)
	if err != nil {
		t.Fatalf("CheckDocument error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}

func TestCheckDocumentReportsTypeViolations(t *testing.T) {
	// Parse only checks key presence, so these shapes load fine; check is
	// where they get flagged.
	doc := mustParse(t, `{
		"timestamp": 12345,
		"config": {"model": {"name": "m1"}},
		"dataset_results": {
			"mmlu": {"results": [{"file": "a.json", "accuracy_mean": "0.5"}]}
		}
	}`)

	findings, err := CheckDocument(doc)
	if err != nil {
		t.Fatalf("CheckDocument error: %v", err)
	}
	if len(findings) < 2 {
		t.Fatalf("expected findings for timestamp and accuracy_mean types, got %v", findings)
	}
}
