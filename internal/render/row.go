// ABOUTME: Renders one snippet and its tags as a report table row.
// ABOUTME: Composes escaping, markup annotation, and tag badges.

package render

import (
	"fmt"
	"strings"

	"github.com/harper/dash2html/internal/models"
)

// Record is a snippet together with the tags fetched for it.
type Record struct {
	Snippet *models.Snippet
	Tags    []*models.Tag
}

// Row returns the <tr> fragment for a snippet, or ok=false when the snippet
// is not tagged public and must be left out of the report.
func Row(snippet *models.Snippet, tags []*models.Tag) (row string, ok bool) {
	visible, badges := FormatTags(snippet.ID, tags)
	if !visible {
		return "", false
	}

	title := Escape(snippet.Title)
	body := Annotate(Escape(snippet.Body))

	return fmt.Sprintf(
		`<tr id="%s"><td><code>%s</code></td><td class="snippet-body">%s</td><td>%s</td></tr>`,
		snippet.Anchor(), title, body, strings.Join(badges, " "),
	), true
}
