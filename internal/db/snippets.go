// ABOUTME: Database reads for Dash snippets.
// ABOUTME: Lists snippets by title and looks up a single snippet by id.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harper/dash2html/internal/models"
)

var ErrSnippetNotFound = errors.New("snippet not found")
var ErrMalformedRow = errors.New("malformed row")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnippet(row rowScanner) (*models.Snippet, error) {
	var id sql.NullInt64
	var title, body, syntax sql.NullString
	if err := row.Scan(&id, &title, &body, &syntax); err != nil {
		return nil, err
	}
	if !id.Valid {
		return nil, fmt.Errorf("%w: snippet without sid", ErrMalformedRow)
	}
	switch {
	case !title.Valid:
		return nil, fmt.Errorf("%w: snippet %d has NULL title", ErrMalformedRow, id.Int64)
	case !body.Valid:
		return nil, fmt.Errorf("%w: snippet %d has NULL body", ErrMalformedRow, id.Int64)
	case !syntax.Valid:
		return nil, fmt.Errorf("%w: snippet %d has NULL syntax", ErrMalformedRow, id.Int64)
	}
	return &models.Snippet{
		ID:     id.Int64,
		Title:  title.String,
		Body:   body.String,
		Syntax: syntax.String,
	}, nil
}

// ListSnippets returns every snippet ordered by title.
func ListSnippets(db *sql.DB) ([]*models.Snippet, error) {
	rows, err := db.Query(`SELECT sid, title, body, syntax FROM snippets ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snippets []*models.Snippet
	for rows.Next() {
		snippet, err := scanSnippet(rows)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, snippet)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snippets, nil
}

func GetSnippetByID(db *sql.DB, id int64) (*models.Snippet, error) {
	snippet, err := scanSnippet(db.QueryRow(
		`SELECT sid, title, body, syntax FROM snippets WHERE sid = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnippetNotFound
	}
	if err != nil {
		return nil, err
	}
	return snippet, nil
}
