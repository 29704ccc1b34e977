// ABOUTME: Show command for displaying a single snippet.
// ABOUTME: Renders the snippet body with glamour using its syntax label.

package main

import (
	"fmt"
	"strconv"

	"github.com/harper/dash2html/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a snippet",
	Long:  `Display a snippet's body and tags rendered for the terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid snippet id %q", args[0])
		}

		snippet, err := snippetSource.Snippet(id)
		if err != nil {
			return fmt.Errorf("failed to get snippet: %w", err)
		}

		tags, err := snippetSource.TagsFor(snippet.ID)
		if err != nil {
			return fmt.Errorf("failed to get tags: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatSnippetListItem(snippet, tags))
		fmt.Fprint(out, ui.Separator())
		fmt.Fprint(out, ui.FormatSnippetPreview(snippet, tags))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
