// internal/evalfile/corpus.go
package evalfile

import (
	"bytes"
	"io"
	"os"
	"sort"

	"github.com/ai-twinkle/analyzer/internal/logging"
)

// Source is one uploaded evaluation file: readable content plus a display
// name for diagnostics. *os.File satisfies it.
type Source interface {
	io.Reader
	Name() string
}

// Diagnostic records a file that could not be read or parsed.
type Diagnostic struct {
	Name string
	Err  error
}

// Corpus is the combined output of one load: records in arrival order, then
// in-document order, plus per-source per-dataset averages.
type Corpus struct {
	Records  []Record                      `json:"records"`
	Averages map[string]map[string]float64 `json:"averages"`
}

// Load runs decode, parse, and extract over each source in order. A failing
// source yields one Diagnostic and never blocks the rest; a source whose
// document yields zero records contributes neither records nor averages.
// Each call rebuilds the corpus from scratch. Load itself never fails.
func Load(sources []Source) (*Corpus, []Diagnostic) {
	corpus := &Corpus{Averages: make(map[string]map[string]float64)}
	var diags []Diagnostic

	for _, src := range sources {
		raw, err := io.ReadAll(src)
		if err != nil {
			logging.LogEvent("[CORPUS] read %s: %v", src.Name(), err)
			diags = append(diags, Diagnostic{Name: src.Name(), Err: err})
			continue
		}
		doc, err := Parse(DecodeBytes(raw))
		if err != nil {
			logging.LogEvent("[CORPUS] parse %s: %v", src.Name(), err)
			diags = append(diags, Diagnostic{Name: src.Name(), Err: err})
			continue
		}
		records, averages := Extract(doc)
		if len(records) == 0 {
			continue
		}
		corpus.Records = append(corpus.Records, records...)
		// Labels are expected unique per document; on collision the last
		// document wins.
		corpus.Averages[doc.SourceLabel()] = averages
	}

	return corpus, diags
}

// LoadPaths opens each path and delegates to Load. Unopenable files become
// diagnostics like any other per-file failure.
func LoadPaths(paths []string) (*Corpus, []Diagnostic) {
	sources := make([]Source, 0, len(paths))
	var openDiags []Diagnostic
	var files []*os.File

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			openDiags = append(openDiags, Diagnostic{Name: p, Err: err})
			continue
		}
		files = append(files, f)
		sources = append(sources, f)
	}
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	corpus, diags := Load(sources)
	return corpus, append(openDiags, diags...)
}

// NewSource adapts an in-memory payload to a Source.
func NewSource(name string, data []byte) Source {
	return &byteSource{name: name, Reader: bytes.NewReader(data)}
}

type byteSource struct {
	name string
	*bytes.Reader
}

func (s *byteSource) Name() string { return s.name }

// Datasets returns the sorted set of dataset names present in the corpus.
func (c *Corpus) Datasets() []string {
	seen := make(map[string]struct{})
	for _, r := range c.Records {
		seen[r.Dataset] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DatasetRecords returns the records belonging to one dataset, in corpus
// order.
func (c *Corpus) DatasetRecords(dataset string) []Record {
	var out []Record
	for _, r := range c.Records {
		if r.Dataset == dataset {
			out = append(out, r)
		}
	}
	return out
}

// SourceLabels returns source labels in order of first appearance, which
// keeps chart colors stable across pages.
func (c *Corpus) SourceLabels() []string {
	var labels []string
	seen := make(map[string]struct{})
	for _, r := range c.Records {
		if _, ok := seen[r.SourceLabel]; ok {
			continue
		}
		seen[r.SourceLabel] = struct{}{}
		labels = append(labels, r.SourceLabel)
	}
	return labels
}
