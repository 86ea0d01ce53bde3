// internal/commands/check.go
package analyzer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ai-twinkle/analyzer/internal/evalfile"
)

// checkCmd validates result files against the wire contract. Unlike the
// permissive loader, this surfaces shape and type problems so runner bugs
// can be caught before a batch of uploads goes quietly half-empty.
var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate result files against the expected document shape",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		okColor := color.New(color.FgGreen)
		badColor := color.New(color.FgRed)

		invalid := 0
		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				badColor.Fprintf(out, "✗ %s: %v\n", path, err)
				invalid++
				continue
			}
			doc, err := evalfile.Parse(evalfile.DecodeBytes(raw))
			if err != nil {
				badColor.Fprintf(out, "✗ %s: %v\n", path, err)
				invalid++
				continue
			}
			findings, err := evalfile.CheckDocument(doc)
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if len(findings) == 0 {
				okColor.Fprintf(out, "✓ %s\n", path)
				continue
			}
			badColor.Fprintf(out, "✗ %s\n", path)
			for _, finding := range findings {
				fmt.Fprintf(out, "    %s\n", finding)
			}
			invalid++
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d files failed validation", invalid, len(args))
		}
		return nil
	},
}

func init() {
	checkCmd.SilenceUsage = true
	rootCmd.AddCommand(checkCmd)
}
