// ABOUTME: Snippet model representing one Dash snippet row.
// ABOUTME: Snippets are read-only and sourced once per export run.

package models

import "strconv"

type Snippet struct {
	ID     int64
	Title  string
	Body   string
	Syntax string
}

// Anchor returns the element id used to link to the snippet's report row.
func (s *Snippet) Anchor() string {
	return "snippet-" + strconv.FormatInt(s.ID, 10)
}
