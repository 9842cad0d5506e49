package utils

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// idAlphabet matches the base36 suffixes the persisted documents already use.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomSuffix returns n random base36 characters. Collisions are possible
// but accepted; ids are not a security boundary.
func RandomSuffix(n int) string {
	return gonanoid.MustGenerate(idAlphabet, n)
}

// NewID returns prefix joined to a short random suffix, e.g. "c-k3v9x2q".
func NewID(prefix string) string {
	return prefix + "-" + RandomSuffix(7)
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugRun    = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slugify reduces a title to a readable id prefix: lowercased, trimmed,
// whitespace runs become single hyphens, everything outside [a-z0-9-] is
// stripped and repeated hyphens collapse.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonSlugRun.ReplaceAllString(s, "")
	return hyphenRun.ReplaceAllString(s, "-")
}
