// ABOUTME: Visibility filter and badge markup for snippet tags.
// ABOUTME: The public tag gates export and is never shown as a badge.

package render

import (
	"fmt"

	"github.com/harper/dash2html/internal/models"
)

// FormatTags reports whether a snippet is visible and returns one badge per
// non-public tag, in the order given. Badges are meaningless when visible is
// false.
func FormatTags(snippetID int64, tags []*models.Tag) (visible bool, badges []string) {
	for _, tag := range tags {
		if tag.IsPublic() {
			visible = true
			continue
		}
		badges = append(badges, fmt.Sprintf(`<span class="tag %s">%s</span>`, tag.Class(), Escape(tag.Name)))
	}
	return visible, badges
}
