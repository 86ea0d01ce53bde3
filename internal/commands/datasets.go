// internal/commands/datasets.go
package analyzer

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ai-twinkle/analyzer/internal/evalfile"
)

// datasetsCmd lists the datasets found in the given files along with each
// source's average accuracy (declared in the file, or derived from its
// entries when the file carries none).
var datasetsCmd = &cobra.Command{
	Use:   "datasets <file>...",
	Short: "List datasets and per-source average accuracy",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, diags := evalfile.LoadPaths(args)
		reportDiagnostics(cmd, diags)

		out := cmd.OutOrStdout()
		datasets := corpus.Datasets()
		if len(datasets) == 0 {
			fmt.Fprintln(out, "no records parsed from the given files")
			return nil
		}

		nameColor := color.New(color.FgCyan, color.Bold)
		for _, dataset := range datasets {
			nameColor.Fprintln(out, dataset)
			for _, label := range corpus.SourceLabels() {
				avg, ok := corpus.Averages[label][dataset]
				if !ok {
					continue
				}
				fmt.Fprintf(out, "  %s: %.3f\n", label, avg)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
