// ABOUTME: Database reads for tags and snippet-tag associations.
// ABOUTME: Resolves the tags attached to a snippet through tagsIndex.

package db

import (
	"database/sql"
	"fmt"

	"github.com/harper/dash2html/internal/models"
)

// GetSnippetTags returns the tags associated with a snippet in the order
// SQLite yields them.
func GetSnippetTags(db *sql.DB, snippetID int64) ([]*models.Tag, error) {
	rows, err := db.Query(
		`SELECT tags.tid, tags.tag FROM tags, tagsIndex
		 WHERE tags.tid = tagsIndex.tid AND tagsIndex.sid = ?`,
		snippetID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tags []*models.Tag
	for rows.Next() {
		var id sql.NullInt64
		var name sql.NullString
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		if !id.Valid || !name.Valid {
			return nil, fmt.Errorf("%w: tag on snippet %d has NULL column", ErrMalformedRow, snippetID)
		}
		tags = append(tags, models.NewTag(id.Int64, name.String))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

type TagWithCount struct {
	Tag   *models.Tag
	Count int
}

// ListAllTags returns every tag with the number of snippets carrying it.
func ListAllTags(db *sql.DB) ([]*TagWithCount, error) {
	rows, err := db.Query(
		`SELECT t.tid, t.tag, COUNT(ti.sid) AS count
		 FROM tags t
		 LEFT JOIN tagsIndex ti ON t.tid = ti.tid
		 GROUP BY t.tid
		 ORDER BY t.tag`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tags []*TagWithCount
	for rows.Next() {
		tc := &TagWithCount{Tag: &models.Tag{}}
		if err := rows.Scan(&tc.Tag.ID, &tc.Tag.Name, &tc.Count); err != nil {
			return nil, err
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
