// internal/commands/analyze.go
package analyzer

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/ai-twinkle/analyzer/internal/evalfile"
	"github.com/ai-twinkle/analyzer/internal/report"
)

// chartWidth is the rendered width of the analyze command's bar charts.
const chartWidth = 100

var analyzeDataset string

// analyzeCmd renders charts, pivot tables, and optional CSV exports for one
// dataset of a loaded corpus.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Render charts and pivot tables for a dataset",
	Long: `Parse one or more Twinkle Eval result files (.json or .jsonl), combine
their records, and render paginated grouped bar charts plus a pivot table
comparing per-category accuracy across sources. Files that cannot be parsed
are reported and skipped; they never block the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		out := cmd.OutOrStdout()

		corpus, diags := evalfile.LoadPaths(args)
		reportDiagnostics(cmd, diags)

		if DebugEnabled() {
			pp.Fprintln(cmd.ErrOrStderr(), corpus.Averages)
		}
		if len(corpus.Records) == 0 {
			fmt.Fprintln(out, "no records parsed from the given files")
			return nil
		}
		if JSONModeEnabled() {
			data, err := json.MarshalIndent(corpus, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal corpus: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		sortMode, err := report.ParseSortMode(cfg.EffectiveSortMode())
		if err != nil {
			return err
		}

		dataset := analyzeDataset
		if dataset == "" {
			dataset = corpus.Datasets()[0]
		}
		view := report.NewView(corpus, dataset, sortMode, cfg.Normalize)
		if view.Empty() {
			return fmt.Errorf("dataset %q not present (available: %v)", dataset, corpus.Datasets())
		}

		for _, page := range view.Pages(cfg.EffectivePageSize()) {
			fmt.Fprintln(out, view.Chart(page, chartWidth))
			fmt.Fprintln(out, view.Table(page))
			if cfg.CSVDir != "" {
				path, err := view.ExportPageCSV(cfg.CSVDir, page)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "CSV written to %s\n", path)
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDataset, "dataset", "", "dataset to render (default: first alphabetically)")
	rootCmd.AddCommand(analyzeCmd)
}

// reportDiagnostics prints one red line per file that failed to load.
func reportDiagnostics(cmd *cobra.Command, diags []evalfile.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	errColor := color.New(color.FgRed)
	for _, d := range diags {
		errColor.Fprintf(cmd.ErrOrStderr(), "✗ could not read %s: %v\n", d.Name, d.Err)
	}
}
