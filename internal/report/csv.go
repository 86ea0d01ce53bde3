// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ai-twinkle/analyzer/internal/logging"
)

// WritePageCSV writes one page's pivot table as CSV: a category column
// followed by one column per source label, blank cells where a source has
// no value.
func (v *View) WritePageCSV(w io.Writer, page Page) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"category"}, v.Sources...)); err != nil {
		return err
	}
	for _, category := range page.Categories {
		row := []string{category}
		for _, source := range v.Sources {
			if value, ok := v.Value(category, source); ok {
				row = append(row, strconv.FormatFloat(value, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PageFileName names a page export after the dataset and category range.
// Dataset names may contain slashes, which are flattened for the filesystem.
func (v *View) PageFileName(page Page) string {
	dataset := strings.ReplaceAll(v.Dataset, "/", "_")
	return fmt.Sprintf("twinkle_%s_%d_%d.csv", dataset, page.Start, page.End)
}

// ExportPageCSV writes the page CSV into dir, creating it if needed, and
// returns the written path.
func (v *View) ExportPageCSV(dir string, page Page) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, v.PageFileName(page))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer file.Close()

	if err := v.WritePageCSV(file, page); err != nil {
		logging.LogFileOutcome("export", path, err)
		return "", fmt.Errorf("unable to write %s: %w", path, err)
	}
	logging.LogFileOutcome("export", path, nil)
	return path, nil
}
