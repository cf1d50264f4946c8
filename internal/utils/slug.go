package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a display name: lowercase, diacritics
// stripped (not transliterated), non-alphanumeric runs collapsed to a single
// hyphen, edge hyphens trimmed. Deterministic and pure.
func Slugify(name string) string {
	lowered := strings.ToLower(name)

	// Decompose and drop combining marks so "clásico" becomes "clasico".
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, lowered)
	if err != nil {
		stripped = lowered
	}

	slug := nonAlphaNum.ReplaceAllString(stripped, "-")
	return strings.Trim(slug, "-")
}
