// ABOUTME: List command for previewing which snippets the report will contain.
// ABOUTME: Shows public snippets by default; --all includes the rest.

package main

import (
	"fmt"

	"github.com/harper/dash2html/internal/render"
	"github.com/harper/dash2html/internal/report"
	"github.com/harper/dash2html/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List snippets",
	Long:  `List the snippets that will be exported, in report order. Use --all to include snippets that are not tagged public.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		records, err := report.Collect(snippetSource)
		if err != nil {
			return fmt.Errorf("failed to list snippets: %w", err)
		}

		out := cmd.OutOrStdout()
		shown, hidden := 0, 0
		for _, r := range records {
			if visible, _ := render.FormatTags(r.Snippet.ID, r.Tags); !visible {
				hidden++
				if !all {
					continue
				}
			}
			shown++
			fmt.Fprint(out, ui.FormatSnippetListItem(r.Snippet, r.Tags))
		}

		if shown == 0 {
			fmt.Fprintln(out, "No snippets found.")
			return nil
		}
		if all {
			fmt.Fprint(out, ui.FormatListSummary(shown, hidden))
		} else {
			fmt.Fprint(out, ui.FormatListSummary(shown, 0))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "include snippets not tagged public")
	rootCmd.AddCommand(listCmd)
}
