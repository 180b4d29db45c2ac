// Package slug builds URL slugs for public pages.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	suffixLen = 8
	maxLen    = 80
	fallback  = "item"
)

var (
	invalidChars     = regexp.MustCompile(`[^a-z0-9-]`)
	multipleHyphens  = regexp.MustCompile(`-+`)
	validSlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Make lowercases s, strips accents and keeps only [a-z0-9-].
// Tamil text has no Latin transliteration here, so it slugs to "".
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = strings.Join(strings.Fields(result), "-")
	result = invalidChars.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > maxLen {
		result = strings.Trim(result[:maxLen], "-")
	}
	return result
}

// WithID appends the first characters of id so slugs stay unique without a
// lookup: "Road Works Begin" + "3f2a9c1e-..." -> "road-works-begin-3f2a9c1e".
func WithID(title, id string) string {
	base := Make(title)
	if base == "" {
		base = fallback
	}

	suffix := strings.ReplaceAll(strings.ToLower(id), "-", "")
	if len(suffix) > suffixLen {
		suffix = suffix[:suffixLen]
	}
	if suffix == "" {
		return base
	}
	return base + "-" + suffix
}

func IsValid(s string) bool {
	return validSlugPattern.MatchString(s)
}
