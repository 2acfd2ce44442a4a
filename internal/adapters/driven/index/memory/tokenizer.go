package memory

import (
	"regexp"
	"strings"
)

// minTokenLength is the shortest token kept by the tokeniser.
// Tokens of this length or shorter are discarded.
const minTokenLength = 2

// nonWordPattern matches a run of non-word characters.
var nonWordPattern = regexp.MustCompile(`\W+`)

// tokenize lowercases the text, collapses runs of non-word characters
// into single spaces, splits on whitespace, and discards tokens of
// length <= 2. The same rule is shared by indexing, querying and
// highlighting; recall silently breaks if they ever diverge.
func tokenize(text string) []string {
	normalised := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	var tokens []string
	for _, field := range strings.Fields(normalised) {
		if len(field) > minTokenLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// distinctTokens returns the distinct tokens of the text in
// first-occurrence order.
func distinctTokens(text string) []string {
	seen := make(map[string]struct{})
	var distinct []string
	for _, token := range tokenize(text) {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		distinct = append(distinct, token)
	}
	return distinct
}
