package utils

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlBreakRe  = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</tr>|</li>`)
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
	trailingWsRe = regexp.MustCompile(`(?m)[ \t]+$`)
)

// CleanEmailText turns an HTML email body into plain text that keeps one
// source line per output line, so line-anchored patterns still work.
func CleanEmailText(text string) string {
	text = normalizeNewlines(text)

	// Line breaks first, then remove the remaining tags
	cleaned := htmlBreakRe.ReplaceAllString(text, "\n")
	cleaned = htmlTagRe.ReplaceAllString(cleaned, "")

	// Named and numeric entities; &nbsp; becomes a plain space
	cleaned = html.UnescapeString(cleaned)
	cleaned = strings.ReplaceAll(cleaned, "\u00a0", " ")

	// Clean up whitespace
	cleaned = trailingWsRe.ReplaceAllString(cleaned, "")
	cleaned = blankLinesRe.ReplaceAllString(cleaned, "\n\n")

	return strings.TrimSpace(cleaned)
}
