// ABOUTME: Tag model for categorizing snippets.
// ABOUTME: Names are kept verbatim; the "public" tag gates report visibility.

package models

import "strconv"

// PublicTag is the tag that marks a snippet for export.
const PublicTag = "public"

type Tag struct {
	ID   int64
	Name string
}

func NewTag(id int64, name string) *Tag {
	return &Tag{ID: id, Name: name}
}

// IsPublic reports whether this is the visibility sentinel tag.
// The comparison is case-sensitive.
func (t *Tag) IsPublic() bool {
	return t.Name == PublicTag
}

// Class returns the CSS class namespaced by the tag id.
func (t *Tag) Class() string {
	return "tag-" + strconv.FormatInt(t.ID, 10)
}
