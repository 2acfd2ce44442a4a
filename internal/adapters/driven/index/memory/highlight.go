package memory

import "strings"

// maxHighlights caps the number of snippets per result.
const maxHighlights = 3

// highlightWindow is the number of characters kept on each side of a
// matched token.
const highlightWindow = 50

// ellipsis marks a truncated snippet boundary.
const ellipsis = "..."

// extractHighlights collects up to maxHighlights snippets around
// occurrences of the query tokens, scanning tokens in query order and
// occurrences left to right. Snippets from different tokens are not
// deduplicated; overlapping windows each count against the cap.
func extractHighlights(content string, queryTokens []string) []string {
	lower := strings.ToLower(content)

	var highlights []string
	for _, token := range queryTokens {
		pos := 0
		for len(highlights) < maxHighlights {
			i := strings.Index(lower[pos:], token)
			if i < 0 {
				break
			}
			match := pos + i
			highlights = append(highlights, snippet(content, match, len(token)))
			pos = match + len(token)
		}
		if len(highlights) >= maxHighlights {
			break
		}
	}
	return highlights
}

// snippet extracts the window around one match, clamped to content
// bounds, with ellipsis markers on truncated sides.
func snippet(content string, match, length int) string {
	start := match - highlightWindow
	if start < 0 {
		start = 0
	}
	end := match + length + highlightWindow
	if end > len(content) {
		end = len(content)
	}

	out := content[start:end]
	if start > 0 {
		out = ellipsis + out
	}
	if end < len(content) {
		out += ellipsis
	}
	return out
}
