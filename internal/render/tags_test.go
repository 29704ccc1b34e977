// ABOUTME: Tests for the tag visibility filter and badge markup.
// ABOUTME: Checks the public sentinel, badge order, and id-based classes.

package render

import (
	"testing"

	"github.com/harper/dash2html/internal/models"
)

func TestFormatTagsVisibility(t *testing.T) {
	tests := []struct {
		name    string
		tags    []*models.Tag
		visible bool
	}{
		{"no tags", nil, false},
		{"draft only", []*models.Tag{models.NewTag(1, "draft")}, false},
		{"public", []*models.Tag{models.NewTag(1, "public")}, true},
		{"public with others", []*models.Tag{models.NewTag(2, "rust"), models.NewTag(1, "public")}, true},
		{"wrong case", []*models.Tag{models.NewTag(1, "Public")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, _ := FormatTags(1, tt.tags)
			if visible != tt.visible {
				t.Errorf("expected visible=%v, got %v", tt.visible, visible)
			}
		})
	}
}

func TestFormatTagsBadges(t *testing.T) {
	tags := []*models.Tag{
		models.NewTag(1, "public"),
		models.NewTag(42, "rust"),
		models.NewTag(9, "<shell>"),
	}

	visible, badges := FormatTags(5, tags)
	if !visible {
		t.Fatal("expected snippet to be visible")
	}

	want := []string{
		`<span class="tag tag-42">rust</span>`,
		`<span class="tag tag-9">&lt;shell&gt;</span>`,
	}
	if len(badges) != len(want) {
		t.Fatalf("expected %d badges, got %v", len(want), badges)
	}
	for i := range want {
		if badges[i] != want[i] {
			t.Errorf("badge %d: expected %q, got %q", i, want[i], badges[i])
		}
	}
}

func TestFormatTagsClassIncludesID(t *testing.T) {
	_, a := FormatTags(1, []*models.Tag{models.NewTag(1, "public"), models.NewTag(42, "rust")})
	_, b := FormatTags(2, []*models.Tag{models.NewTag(1, "public"), models.NewTag(7, "rust")})

	if a[0] == b[0] {
		t.Errorf("expected distinct badges for tags with different ids, both were %q", a[0])
	}
}
