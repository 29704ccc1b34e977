// ABOUTME: Tags command listing every tag in the library.
// ABOUTME: Shows how many snippets carry each tag.

package main

import (
	"fmt"

	"github.com/harper/dash2html/internal/ui"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := snippetSource.TagCounts()
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		if len(tags) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tags found.")
			return nil
		}

		var tagCounts []ui.TagCount
		for _, t := range tags {
			tagCounts = append(tagCounts, ui.TagCount{
				Name:  t.Tag.Name,
				Count: t.Count,
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatTagList(tagCounts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
