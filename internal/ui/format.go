// ABOUTME: Terminal UI formatting for dash2html output.
// ABOUTME: Uses glamour for snippet previews and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/dash2html/internal/models"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

type TagCount struct {
	Name  string
	Count int
}

// tagNames returns the names of all tags except the public sentinel.
func tagNames(tags []*models.Tag) []string {
	var names []string
	for _, t := range tags {
		if !t.IsPublic() {
			names = append(names, t.Name)
		}
	}
	return names
}

func isPublic(tags []*models.Tag) bool {
	for _, t := range tags {
		if t.IsPublic() {
			return true
		}
	}
	return false
}

func FormatSnippetListItem(snippet *models.Snippet, tags []*models.Tag) string {
	var sb strings.Builder

	marker := "  "
	if !isPublic(tags) {
		marker = yellow("✗ ")
	}
	sb.WriteString(fmt.Sprintf("%s%s  %s\n", marker, faint(fmt.Sprintf("%5d", snippet.ID)), bold(snippet.Title)))

	if names := tagNames(tags); len(names) > 0 {
		sb.WriteString(fmt.Sprintf("         %s %s\n",
			faint("Tags:"),
			cyan(strings.Join(names, ", "))))
	}

	if snippet.Syntax != "" {
		sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Syntax:"), faint(snippet.Syntax)))
	}

	return sb.String()
}

// SnippetMarkdown renders a snippet as markdown with the body in a fenced
// code block labelled with the snippet's syntax.
func SnippetMarkdown(snippet *models.Snippet, tags []*models.Tag) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", snippet.Title))
	if names := tagNames(tags); len(names) > 0 {
		sb.WriteString(fmt.Sprintf("**Tags:** %s\n\n", strings.Join(names, ", ")))
	}
	if !isPublic(tags) {
		sb.WriteString("_Not tagged public; excluded from the report._\n\n")
	}

	fence := "```"
	for strings.Contains(snippet.Body, fence) {
		fence += "`"
	}
	sb.WriteString(fence + strings.ToLower(snippet.Syntax) + "\n")
	sb.WriteString(snippet.Body)
	if !strings.HasSuffix(snippet.Body, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(fence + "\n")

	return sb.String()
}

// FormatSnippetPreview renders the snippet markdown for the terminal,
// falling back to the raw markdown when glamour cannot render it.
func FormatSnippetPreview(snippet *models.Snippet, tags []*models.Tag) string {
	content := SnippetMarkdown(snippet, tags)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func FormatTagList(tags []TagCount) string {
	var sb strings.Builder

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			cyan(t.Name),
			faint(fmt.Sprintf("(%d)", t.Count))))
	}

	return sb.String()
}

func FormatListSummary(shown, hidden int) string {
	if hidden == 0 {
		return faint(fmt.Sprintf("\n%d snippets\n", shown))
	}
	return faint(fmt.Sprintf("\n%d snippets, %d not public\n", shown, hidden))
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
