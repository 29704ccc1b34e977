// ABOUTME: Read-only connection to a Dash snippet library.
// ABOUTME: Opens the SQLite file through modernc.org/sqlite and verifies it is readable.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Schema is the Dash snippet schema as of Dash 2.2.6. It is never applied by
// Open; tests use it to build fixture libraries.
const Schema = `
CREATE TABLE tagsIndex(tid INTEGER, sid INTEGER);
CREATE TABLE snippets(sid INTEGER PRIMARY KEY, title TEXT, body TEXT, syntax VARCHAR(20), usageCount INTEGER, FOREIGN KEY(sid) REFERENCES tagsIndex(sid) ON DELETE CASCADE ON UPDATE CASCADE);
CREATE TABLE tags(tid INTEGER PRIMARY KEY, tag TEXT UNIQUE, FOREIGN KEY(tid) REFERENCES tagsIndex(tid) ON DELETE CASCADE ON UPDATE CASCADE);
CREATE TABLE smartTags(stid INTEGER PRIMARY KEY, name TEXT, query TEXT);
`

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// Open opens the library at path in read-only mode. The file must already
// exist; nothing is created or migrated.
func Open(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+uriEscaper.Replace(path)+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Force a read so a corrupt or non-SQLite file fails here rather than
	// halfway through an export.
	var n int
	if err := db.QueryRow(`SELECT count(*) FROM sqlite_master`).Scan(&n); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("read database: %w", err)
	}

	return db, nil
}

// DefaultPath returns the location Dash uses for its snippet library.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Application Support", "Dash", "library.dash")
}
