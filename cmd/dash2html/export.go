// ABOUTME: Export command writing the HTML report.
// ABOUTME: Also runs as the root command's default action.

package main

import (
	"fmt"

	"github.com/harper/dash2html/internal/report"
	"github.com/harper/dash2html/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export public snippets to HTML",
	Long:  `Write the HTML report of all snippets tagged "public" to --output (stdout by default).`,
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if cfg.Output == "" || cfg.Output == "-" {
		if _, err := report.Write(snippetSource, cmd.OutOrStdout(), logger); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		return nil
	}

	res, err := report.WriteFile(snippetSource, cfg.Output, logger)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), ui.Success(fmt.Sprintf(
		"Wrote %d snippets to %s (%d not public)",
		res.Stats.Rendered, cfg.Output, res.Stats.Skipped,
	)))
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
