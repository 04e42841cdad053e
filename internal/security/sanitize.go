// Package security neutralizes HTML and script injection in free-text
// fields before they enter the ledger.
package security

import (
	"regexp"
	"strings"
)

var (
	// javascript: scheme, with optional whitespace before the colon.
	jsSchemePattern = regexp.MustCompile(`(?i)javascript\s*:`)
	// Inline event handler attributes: on<word>="..." or on<word>='...'.
	eventAttrPattern = regexp.MustCompile(`(?i)\son\w+\s*=\s*["'][^"']*["']`)
)

// htmlEscaper escapes the five HTML-significant characters. A single-pass
// replacer cannot re-escape the entities it introduces, which is the
// ampersand-first guarantee.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Sanitize strips javascript: scheme occurrences and inline event-handler
// attributes, then HTML-escapes the result. The output is safe to embed as
// HTML text content. Deterministic, never fails.
func Sanitize(input string) string {
	s := jsSchemePattern.ReplaceAllString(input, "")
	s = eventAttrPattern.ReplaceAllString(s, "")
	return htmlEscaper.Replace(s)
}
