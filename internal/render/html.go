package render

import "strings"

// htmlEscaper applies the canonical five-entity table. A single left-to-right
// pass means the ampersands produced by earlier substitutions are never
// re-escaped, which is the ordering the escape contract requires.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes text for safe embedding in element content and inside
// double-quoted attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
