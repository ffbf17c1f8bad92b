package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/width"
)

var stripPolicy = bluemonday.StripTagsPolicy()

// SanitizeContent reduces free-text record content to plain text: tags
// stripped, entities decoded, whitespace collapsed. Record content comes in
// from browser forms and occasionally from pasted rich text.
func SanitizeContent(s string) string {
	s = html.UnescapeString(s)
	s = stripPolicy.Sanitize(s)
	// bluemonday re-escapes entities it keeps
	s = html.UnescapeString(s)

	// Preserve line structure but collapse runs of spaces within lines.
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(s)
}

// NormalizeForSearch lowers case and folds character width so full-width and
// half-width Japanese spellings of the same name match. Used only for search
// matching; stored names and metric grouping keys stay untouched.
func NormalizeForSearch(s string) string {
	return strings.ToLower(width.Fold.String(s))
}
