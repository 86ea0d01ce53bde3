// internal/report/view.go
// Package report turns a loaded corpus into terminal presentation artifacts:
// sorted category pages, grouped bar charts, pivot tables, and CSV exports.
package report

import (
	"fmt"
	"sort"

	"github.com/ai-twinkle/analyzer/internal/evalfile"
	"github.com/ai-twinkle/analyzer/internal/util"
)

// SortMode controls category ordering in charts and tables.
type SortMode string

const (
	// SortMeanDesc orders categories by overall mean, highest first.
	SortMeanDesc SortMode = "mean-desc"
	// SortMeanAsc orders categories by overall mean, lowest first.
	SortMeanAsc SortMode = "mean-asc"
	// SortAlpha orders categories alphabetically.
	SortAlpha SortMode = "alpha"
)

// ParseSortMode validates a sort mode flag value.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortMeanDesc, SortMeanAsc, SortAlpha:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("unknown sort mode %q (want mean-desc, mean-asc, or alpha)", s)
}

// View is the working set for one dataset: metric values grouped by category
// and source label, with categories ordered per the sort mode.
type View struct {
	Dataset    string
	Metric     string
	Categories []string
	Sources    []string

	cells    map[string]map[string][]float64
	catMeans map[string]float64
}

// NewView builds the presentation view for one dataset. With normalize set,
// values are scaled to 0-100 and the metric label gains an (x100) suffix.
func NewView(corpus *evalfile.Corpus, dataset string, mode SortMode, normalize bool) *View {
	scale := 1.0
	metric := "accuracy_mean"
	if normalize {
		scale = 100.0
		metric += " (x100)"
	}

	v := &View{
		Dataset:  dataset,
		Metric:   metric,
		cells:    make(map[string]map[string][]float64),
		catMeans: make(map[string]float64),
	}

	seenSource := make(map[string]struct{})
	for _, r := range corpus.DatasetRecords(dataset) {
		value := r.AccuracyMean * scale
		bySource, ok := v.cells[r.Category]
		if !ok {
			bySource = make(map[string][]float64)
			v.cells[r.Category] = bySource
		}
		bySource[r.SourceLabel] = append(bySource[r.SourceLabel], value)
		if _, ok := seenSource[r.SourceLabel]; !ok {
			seenSource[r.SourceLabel] = struct{}{}
			v.Sources = append(v.Sources, r.SourceLabel)
		}
	}

	for category, bySource := range v.cells {
		var sum float64
		var count int
		for _, values := range bySource {
			for _, value := range values {
				sum += value
				count++
			}
		}
		v.catMeans[category] = sum / float64(count)
		v.Categories = append(v.Categories, category)
	}

	sort.Slice(v.Categories, func(i, j int) bool {
		a, b := v.Categories[i], v.Categories[j]
		switch mode {
		case SortMeanDesc:
			if v.catMeans[a] != v.catMeans[b] {
				return v.catMeans[a] > v.catMeans[b]
			}
		case SortMeanAsc:
			if v.catMeans[a] != v.catMeans[b] {
				return v.catMeans[a] < v.catMeans[b]
			}
		}
		return a < b
	})

	return v
}

// Empty reports whether the dataset had no records.
func (v *View) Empty() bool { return len(v.Categories) == 0 }

// Total returns the number of categories in the view.
func (v *View) Total() int { return len(v.Categories) }

// Value returns the mean metric value for a category/source cell. The
// second result is false when the source has no record for the category.
func (v *View) Value(category, source string) (float64, bool) {
	values := v.cells[category][source]
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values)), true
}

// CategoryMean returns the overall mean used for ordering.
func (v *View) CategoryMean(category string) float64 { return v.catMeans[category] }

// Page is one slice of the ordered category list. Start and End are
// 1-based and inclusive, matching the rendered page headers.
type Page struct {
	Start      int
	End        int
	Categories []string
}

// Pages splits the ordered categories into fixed-size pages.
func (v *View) Pages(pageSize int) []Page {
	if pageSize <= 0 || v.Empty() {
		return nil
	}
	var pages []Page
	for start := 0; start < len(v.Categories); start += pageSize {
		end := util.Min(start+pageSize, len(v.Categories))
		pages = append(pages, Page{
			Start:      start + 1,
			End:        end,
			Categories: v.Categories[start:end],
		})
	}
	return pages
}

// PageTitle renders the header line for one page.
func (v *View) PageTitle(page Page) string {
	return fmt.Sprintf("%s | categories %d-%d / %d", v.Dataset, page.Start, page.End, v.Total())
}
