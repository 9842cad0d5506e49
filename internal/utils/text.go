package utils

import "strings"

// htmlEscaper replaces all five characters in one pass, so an ampersand
// produced by an earlier replacement is never escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML makes user-authored text safe to place into rendered markup.
// Every title, question and answer must pass through here before display;
// this is the sole XSS defense.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// NormalizeAnswer prepares free text for lenient comparison: lowercased,
// trimmed, inner whitespace runs collapsed to single spaces.
func NormalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRun.ReplaceAllString(s, " ")
}
