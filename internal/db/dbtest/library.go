// ABOUTME: Test helpers for building Dash snippet libraries on disk.
// ABOUTME: Writes the Dash schema and fixture rows with a writable connection.

package dbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/harper/dash2html/internal/db"
	"github.com/harper/dash2html/internal/models"
)

// Entry is one snippet plus the tags to associate with it, in order.
type Entry struct {
	Snippet models.Snippet
	Tags    []models.Tag
}

// NewLibrary creates a library file under t.TempDir() and returns its path.
func NewLibrary(t testing.TB, entries ...Entry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library.dash")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create library: %v", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Exec(db.Schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	for _, e := range entries {
		s := e.Snippet
		if _, err := conn.Exec(
			`INSERT INTO snippets (sid, title, body, syntax, usageCount) VALUES (?, ?, ?, ?, 0)`,
			s.ID, s.Title, s.Body, s.Syntax,
		); err != nil {
			t.Fatalf("failed to insert snippet %d: %v", s.ID, err)
		}
		for _, tag := range e.Tags {
			if _, err := conn.Exec(`INSERT OR IGNORE INTO tags (tid, tag) VALUES (?, ?)`, tag.ID, tag.Name); err != nil {
				t.Fatalf("failed to insert tag %q: %v", tag.Name, err)
			}
			if _, err := conn.Exec(`INSERT INTO tagsIndex (tid, sid) VALUES (?, ?)`, tag.ID, s.ID); err != nil {
				t.Fatalf("failed to associate tag %q: %v", tag.Name, err)
			}
		}
	}

	return path
}

// Exec runs a statement against the library at path with a writable
// connection, for tests that need rows the Entry helper cannot express.
func Exec(t testing.TB, path, query string, args ...any) {
	t.Helper()

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open library: %v", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Exec(query, args...); err != nil {
		t.Fatalf("failed to exec %q: %v", query, err)
	}
}
