// ABOUTME: Data source abstraction feeding the report.
// ABOUTME: Defines the Source interface and the fatal error taxonomy.

package source

import (
	"errors"
	"fmt"

	"github.com/harper/dash2html/internal/db"
	"github.com/harper/dash2html/internal/models"
)

// Source supplies snippets and their tags. ListSnippets must return snippets
// ordered by title; TagsFor returns tags in association order.
type Source interface {
	ListSnippets() ([]*models.Snippet, error)
	TagsFor(snippetID int64) ([]*models.Tag, error)
}

// Browser is a Source that also serves single-snippet lookups and tag
// statistics for the terminal commands.
type Browser interface {
	Source
	Snippet(id int64) (*models.Snippet, error)
	TagCounts() ([]*db.TagWithCount, error)
}

var (
	ErrSnippetNotFound   = errors.New("snippet not found")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrQueryFailure      = errors.New("query failed")
	// ErrMalformedRecord wraps ErrQueryFailure so callers that only check
	// for query failures also catch it.
	ErrMalformedRecord = fmt.Errorf("malformed record: %w", ErrQueryFailure)
)

// queryError classifies err as a malformed record or a plain query failure.
func queryError(op string, err error) error {
	if errors.Is(err, db.ErrMalformedRow) {
		return fmt.Errorf("%s: %w: %w", op, ErrMalformedRecord, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrQueryFailure, err)
}
