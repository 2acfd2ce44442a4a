package chunking

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

// headerPattern matches a markdown header line: one to six '#'
// characters followed by whitespace.
var headerPattern = regexp.MustCompile(`^#{1,6}\s`)

// paragraphPattern matches a run of two or more newlines.
var paragraphPattern = regexp.MustCompile(`\n{2,}`)

// splitSections splits content into sections using the strategy
// appropriate to the document type.
func splitSections(docType domain.DocumentType, content string) []string {
	switch docType {
	case domain.TypeMarkdown:
		return splitMarkdown(content)
	case domain.TypeCode:
		return splitCode(content)
	default:
		return splitParagraphs(content)
	}
}

// splitMarkdown breaks at header lines and blank-line boundaries.
// A header starts a new section; a blank line following non-blank
// content closes the current section.
func splitMarkdown(content string) []string {
	var sections []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if headerPattern.MatchString(line) {
			flush()
			current = append(current, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return sections
}

// splitCode breaks at blank lines that occur at brace depth zero,
// so a nested block is never split apart.
func splitCode(content string) []string {
	var sections []string
	var current []string
	depth := 0

	flush := func() {
		if len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" && depth == 0 {
			flush()
			continue
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		current = append(current, line)
	}
	flush()

	return sections
}

// splitParagraphs breaks on runs of two or more newlines.
func splitParagraphs(content string) []string {
	parts := paragraphPattern.Split(content, -1)
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sections = append(sections, part)
		}
	}
	return sections
}
