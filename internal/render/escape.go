// ABOUTME: HTML escaping for snippet titles, bodies, and tag names.
// ABOUTME: Classifies each input character once in a single linear scan.

package render

import "strings"

// Escape returns text made safe for HTML element content. Each of & < > " '
// is replaced exactly once; the output is never rescanned.
func Escape(text string) string {
	if !strings.ContainsAny(text, `&<>"'`) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/8)

	start := 0
	for i := 0; i < len(text); i++ {
		var esc string
		switch text[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		case '\'':
			esc = "&#x27;"
		default:
			continue
		}
		sb.WriteString(text[start:i])
		sb.WriteString(esc)
		start = i + 1
	}
	sb.WriteString(text[start:])

	return sb.String()
}
