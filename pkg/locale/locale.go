// Package locale resolves the reader language and picks bilingual field values.
//
// English is the primary language of every record; Tamil is the optional
// secondary language stored in the sibling "_ta" fields.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	Tamil   Locale = "ta"
)

// Default is used when nothing in the request names a supported language.
const Default = English

// All lists the supported locales, primary first.
var All = []Locale{English, Tamil}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Tamil})

func (l Locale) String() string {
	return string(l)
}

func (l Locale) IsSecondary() bool {
	return l == Tamil
}

// Parse accepts a language code such as "ta", "TA" or "ta-IN".
func Parse(s string) (Locale, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "", false
	}
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Locale(s) {
	case English:
		return English, true
	case Tamil:
		return Tamil, true
	}
	return "", false
}

// Match resolves an Accept-Language header to a supported locale.
func Match(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return All[idx]
}

// Pick returns the secondary value when the locale is Tamil and a
// translation exists, otherwise the primary value.
func Pick(l Locale, primary, secondary string) string {
	if l.IsSecondary() && strings.TrimSpace(secondary) != "" {
		return secondary
	}
	return primary
}
