// ABOUTME: Source backed by a YAML fixture file.
// ABOUTME: Used for offline rendering and deterministic tests.

package source

import (
	"fmt"
	"os"
	"sort"

	"github.com/harper/dash2html/internal/db"
	"github.com/harper/dash2html/internal/models"
	"gopkg.in/yaml.v3"
)

// FixtureTag is a tag entry in a fixture file.
type FixtureTag struct {
	ID   *int64  `yaml:"id"`
	Name *string `yaml:"name"`
}

// FixtureSnippet is a snippet entry in a fixture file. Pointer fields let
// missing keys be told apart from empty values.
type FixtureSnippet struct {
	ID     *int64       `yaml:"id"`
	Title  *string      `yaml:"title"`
	Body   *string      `yaml:"body"`
	Syntax *string      `yaml:"syntax"`
	Tags   []FixtureTag `yaml:"tags"`
}

type FixtureFile struct {
	Snippets []FixtureSnippet `yaml:"snippets"`
}

// Fixture serves snippets from memory, sorted by title.
type Fixture struct {
	snippets []*models.Snippet
	tags     map[int64][]*models.Tag
}

// LoadFixture reads and parses a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified fixture path is expected CLI behavior
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return ParseFixture(data)
}

// ParseFixture builds a Fixture from YAML. Entries missing any of id, title,
// body or syntax, tags missing an id or name, and duplicate snippet ids are
// rejected as malformed records. Empty values are accepted.
func ParseFixture(data []byte) (*Fixture, error) {
	var file FixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse fixture: %w", ErrSourceUnavailable, err)
	}

	f := &Fixture{tags: make(map[int64][]*models.Tag)}
	for i, fs := range file.Snippets {
		if fs.ID == nil || fs.Title == nil {
			return nil, fmt.Errorf("%w: snippet #%d is missing id or title", ErrMalformedRecord, i+1)
		}
		if fs.Body == nil || fs.Syntax == nil {
			return nil, fmt.Errorf("%w: snippet %d is missing body or syntax", ErrMalformedRecord, *fs.ID)
		}
		if _, dup := f.tags[*fs.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate snippet id %d", ErrMalformedRecord, *fs.ID)
		}

		tags := make([]*models.Tag, 0, len(fs.Tags))
		for _, ft := range fs.Tags {
			if ft.ID == nil || ft.Name == nil {
				return nil, fmt.Errorf("%w: tag on snippet %d is missing id or name", ErrMalformedRecord, *fs.ID)
			}
			tags = append(tags, models.NewTag(*ft.ID, *ft.Name))
		}

		f.snippets = append(f.snippets, &models.Snippet{
			ID:     *fs.ID,
			Title:  *fs.Title,
			Body:   *fs.Body,
			Syntax: *fs.Syntax,
		})
		f.tags[*fs.ID] = tags
	}

	sort.SliceStable(f.snippets, func(i, j int) bool {
		return f.snippets[i].Title < f.snippets[j].Title
	})

	return f, nil
}

func (f *Fixture) ListSnippets() ([]*models.Snippet, error) {
	out := make([]*models.Snippet, len(f.snippets))
	copy(out, f.snippets)
	return out, nil
}

// TagsFor returns the fixture's tags for a snippet; unknown ids have none.
func (f *Fixture) TagsFor(snippetID int64) ([]*models.Tag, error) {
	tags := f.tags[snippetID]
	out := make([]*models.Tag, len(tags))
	copy(out, tags)
	return out, nil
}

func (f *Fixture) Snippet(id int64) (*models.Snippet, error) {
	for _, s := range f.snippets {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("get snippet %d: %w", id, ErrSnippetNotFound)
}

// TagCounts aggregates tag usage across the fixture, ordered by name.
func (f *Fixture) TagCounts() ([]*db.TagWithCount, error) {
	byID := make(map[int64]*db.TagWithCount)
	for _, tags := range f.tags {
		for _, tag := range tags {
			tc, ok := byID[tag.ID]
			if !ok {
				tc = &db.TagWithCount{Tag: tag}
				byID[tag.ID] = tc
			}
			tc.Count++
		}
	}

	result := make([]*db.TagWithCount, 0, len(byID))
	for _, tc := range byID {
		result = append(result, tc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Tag.Name < result[j].Tag.Name
	})
	return result, nil
}
