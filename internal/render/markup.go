// ABOUTME: Highlights Dash variables and placeholders in escaped snippet bodies.
// ABOUTME: Runs the variable pass, then the placeholder pass over its result.

package render

import "regexp"

var (
	variablePattern    = regexp.MustCompile(`__.*?__`)
	placeholderPattern = regexp.MustCompile(`(?i)@(?:time|clipboard|cursor|date)`)
)

const (
	variableSpan    = `<span class="variable">$0</span>`
	placeholderSpan = `<span class="placeholder">$0</span>`
)

// Annotate wraps __variables__ and @placeholders in marker spans. The input
// must already be escaped; the patterns match the escaped form.
func Annotate(escaped string) string {
	out := variablePattern.ReplaceAllString(escaped, variableSpan)
	return placeholderPattern.ReplaceAllString(out, placeholderSpan)
}
