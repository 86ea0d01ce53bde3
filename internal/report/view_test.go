// internal/report/view_test.go
package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ai-twinkle/analyzer/internal/evalfile"
)

func testCorpus() *evalfile.Corpus {
	return &evalfile.Corpus{Records: []evalfile.Record{
		{Dataset: "mmlu", Category: "physics", File: "physics.json", AccuracyMean: 0.8, SourceLabel: "m1 @ t1"},
		{Dataset: "mmlu", Category: "biology", File: "biology.json", AccuracyMean: 0.2, SourceLabel: "m1 @ t1"},
		{Dataset: "mmlu", Category: "chemistry", File: "chemistry.json", AccuracyMean: 0.5, SourceLabel: "m1 @ t1"},
		{Dataset: "mmlu", Category: "physics", File: "physics.json", AccuracyMean: 0.6, SourceLabel: "m2 @ t2"},
		{Dataset: "other", Category: "x", File: "x.json", AccuracyMean: 0.1, SourceLabel: "m1 @ t1"},
	}}
}

func TestParseSortMode(t *testing.T) {
	for _, valid := range []string{"mean-desc", "mean-asc", "alpha"} {
		if _, err := ParseSortMode(valid); err != nil {
			t.Fatalf("expected %q to parse: %v", valid, err)
		}
	}
	if _, err := ParseSortMode("by-vibes"); err == nil {
		t.Fatal("expected error for unknown sort mode")
	}
}

func TestNewViewSortMeanDesc(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortMeanDesc, false)
	want := []string{"physics", "chemistry", "biology"}
	if !reflect.DeepEqual(v.Categories, want) {
		t.Fatalf("unexpected order: %v", v.Categories)
	}
}

func TestNewViewSortMeanAsc(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortMeanAsc, false)
	want := []string{"biology", "chemistry", "physics"}
	if !reflect.DeepEqual(v.Categories, want) {
		t.Fatalf("unexpected order: %v", v.Categories)
	}
}

func TestNewViewSortAlpha(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortAlpha, false)
	want := []string{"biology", "chemistry", "physics"}
	if !reflect.DeepEqual(v.Categories, want) {
		t.Fatalf("unexpected order: %v", v.Categories)
	}
}

func TestViewValueAveragesDuplicates(t *testing.T) {
	corpus := &evalfile.Corpus{Records: []evalfile.Record{
		{Dataset: "d", Category: "c", AccuracyMean: 0.2, SourceLabel: "s"},
		{Dataset: "d", Category: "c", AccuracyMean: 0.4, SourceLabel: "s"},
	}}
	v := NewView(corpus, "d", SortAlpha, false)
	value, ok := v.Value("c", "s")
	if !ok {
		t.Fatal("expected a value for the cell")
	}
	if value < 0.299 || value > 0.301 {
		t.Fatalf("expected mean 0.3, got %v", value)
	}
}

func TestViewValueMissingCell(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortAlpha, false)
	if _, ok := v.Value("biology", "m2 @ t2"); ok {
		t.Fatal("expected no value where the source has no record")
	}
}

func TestNewViewNormalize(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortAlpha, true)
	if v.Metric != "accuracy_mean (x100)" {
		t.Fatalf("unexpected metric label: %s", v.Metric)
	}
	value, ok := v.Value("physics", "m1 @ t1")
	if !ok || value != 80 {
		t.Fatalf("expected scaled value 80, got %v (present=%v)", value, ok)
	}
}

func TestViewEmptyDataset(t *testing.T) {
	v := NewView(testCorpus(), "nope", SortAlpha, false)
	if !v.Empty() {
		t.Fatal("expected empty view for unknown dataset")
	}
	if pages := v.Pages(10); pages != nil {
		t.Fatalf("expected no pages, got %v", pages)
	}
}

func TestPages(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortAlpha, false)
	pages := v.Pages(2)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].Start != 1 || pages[0].End != 2 || len(pages[0].Categories) != 2 {
		t.Fatalf("unexpected first page: %+v", pages[0])
	}
	if pages[1].Start != 3 || pages[1].End != 3 || len(pages[1].Categories) != 1 {
		t.Fatalf("unexpected last page: %+v", pages[1])
	}
}

func TestPageTitle(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortAlpha, false)
	page := v.Pages(2)[0]
	if got := v.PageTitle(page); got != "mmlu | categories 1-2 / 3" {
		t.Fatalf("unexpected page title: %s", got)
	}
}

func TestSourcesFirstAppearance(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortAlpha, false)
	if !reflect.DeepEqual(v.Sources, []string{"m1 @ t1", "m2 @ t2"}) {
		t.Fatalf("unexpected source order: %v", v.Sources)
	}
}

func TestChartContainsValuesAndCategories(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortMeanDesc, false)
	chart := v.Chart(v.Pages(10)[0], 80)
	for _, want := range []string{"physics", "biology", "0.800", "0.600", "m2 @ t2"} {
		if !strings.Contains(chart, want) {
			t.Fatalf("chart missing %q:\n%s", want, chart)
		}
	}
}

func TestTableBlanksMissingCells(t *testing.T) {
	v := NewView(testCorpus(), "mmlu", SortAlpha, false)
	table := v.Table(v.Pages(10)[0])
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), table)
	}
	var biologyLine string
	for _, line := range lines {
		if strings.Contains(line, "biology") {
			biologyLine = line
		}
	}
	if strings.Contains(biologyLine, "0.600") {
		t.Fatalf("biology row must not carry m2's value:\n%s", table)
	}
	if !strings.Contains(biologyLine, "0.200") {
		t.Fatalf("biology row missing m1's value:\n%s", table)
	}
}
