package usecase

import (
	"strings"

	"hello-madurai/pkg/locale"
)

// localized is the title and body of a notification in one language.
type localized struct {
	lang  locale.Locale
	title string
	body  string
}

// compose builds one message per language that has text. Tamil is present
// when either Tamil field is set; its missing half falls back to English.
func compose(title, titleTa, body, bodyTa string) []localized {
	var out []localized
	if strings.TrimSpace(title) != "" || strings.TrimSpace(body) != "" {
		out = append(out, localized{lang: locale.English, title: title, body: body})
	}
	if strings.TrimSpace(titleTa) != "" || strings.TrimSpace(bodyTa) != "" {
		out = append(out, localized{
			lang:  locale.Tamil,
			title: locale.Pick(locale.Tamil, title, titleTa),
			body:  locale.Pick(locale.Tamil, body, bodyTa),
		})
	}
	return out
}

// pick returns the message for lang, or the first one composed.
func pick(msgs []localized, lang locale.Locale) localized {
	for _, m := range msgs {
		if m.lang == lang {
			return m
		}
	}
	return msgs[0]
}
