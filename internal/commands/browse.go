// internal/commands/browse.go
package analyzer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ai-twinkle/analyzer/internal/evalfile"
	"github.com/ai-twinkle/analyzer/internal/tui"
)

// browseCmd opens the interactive browser: pick a dataset, page through its
// charts, and flip sort order and normalization on the fly.
var browseCmd = &cobra.Command{
	Use:   "browse <file>...",
	Short: "Browse datasets interactively",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, diags := evalfile.LoadPaths(args)
		reportDiagnostics(cmd, diags)

		if len(corpus.Records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no records parsed from the given files")
			return nil
		}
		return tui.Browse(corpus, GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
