// ABOUTME: Source backed by a Dash SQLite library.
// ABOUTME: Delegates to the db package and classifies its errors.

package source

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harper/dash2html/internal/db"
	"github.com/harper/dash2html/internal/models"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(conn *sql.DB) *SQLite {
	return &SQLite{db: conn}
}

// OpenSQLite opens the library at path read-only.
func OpenSQLite(path string) (*SQLite, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return NewSQLite(conn), nil
}

func (s *SQLite) ListSnippets() ([]*models.Snippet, error) {
	snippets, err := db.ListSnippets(s.db)
	if err != nil {
		return nil, queryError("list snippets", err)
	}
	return snippets, nil
}

func (s *SQLite) TagsFor(snippetID int64) ([]*models.Tag, error) {
	tags, err := db.GetSnippetTags(s.db, snippetID)
	if err != nil {
		return nil, queryError(fmt.Sprintf("tags for snippet %d", snippetID), err)
	}
	return tags, nil
}

// Snippet looks up one snippet by id.
func (s *SQLite) Snippet(id int64) (*models.Snippet, error) {
	snippet, err := db.GetSnippetByID(s.db, id)
	if errors.Is(err, db.ErrSnippetNotFound) {
		return nil, fmt.Errorf("get snippet %d: %w", id, ErrSnippetNotFound)
	}
	if err != nil {
		return nil, queryError(fmt.Sprintf("get snippet %d", id), err)
	}
	return snippet, nil
}

func (s *SQLite) TagCounts() ([]*db.TagWithCount, error) {
	tags, err := db.ListAllTags(s.db)
	if err != nil {
		return nil, queryError("list tags", err)
	}
	return tags, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
