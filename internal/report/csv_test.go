// internal/report/csv_test.go
package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ai-twinkle/analyzer/internal/evalfile"
)

func TestWritePageCSV(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortMeanDesc, false)
	page := v.Pages(10)[0]

	var buf bytes.Buffer
	if err := v.WritePageCSV(&buf, page); err != nil {
		t.Fatalf("WritePageCSV error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading written CSV: %v", err)
	}
	if !reflect.DeepEqual(rows[0], []string{"category", "m1 @ t1", "m2 @ t2"}) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if !reflect.DeepEqual(rows[1], []string{"physics", "0.8", "0.6"}) {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	// biology has no m2 record, so its cell stays blank.
	if !reflect.DeepEqual(rows[3], []string{"biology", "0.2", ""}) {
		t.Fatalf("unexpected biology row: %v", rows[3])
	}
}

func TestPageFileNameFlattensSlashes(t *testing.T) {
	corpus := &evalfile.Corpus{Records: []evalfile.Record{
		{Dataset: "mmlu/sub", Category: "physics", AccuracyMean: 0.5, SourceLabel: "m1 @ t1"},
	}}
	v := NewView(corpus, "mmlu/sub", SortAlpha, false)
	page := v.Pages(20)[0]
	if got := v.PageFileName(page); got != "twinkle_mmlu_sub_1_1.csv" {
		t.Fatalf("unexpected file name: %s", got)
	}
}

func TestExportPageCSV(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortMeanDesc, false)
	page := v.Pages(10)[0]

	dir := filepath.Join(t.TempDir(), "exports")
	path, err := v.ExportPageCSV(dir, page)
	if err != nil {
		t.Fatalf("ExportPageCSV error: %v", err)
	}
	if filepath.Base(path) != "twinkle_mmlu_1_3.csv" {
		t.Fatalf("unexpected export path: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("category,m1 @ t1,m2 @ t2\n")) {
		t.Fatalf("unexpected export content:\n%s", data)
	}
}
