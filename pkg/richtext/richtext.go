// Package richtext cleans HTML produced by the admin editor.
package richtext

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer is the editor capability the content service depends on.
type Sanitizer interface {
	Sanitize(html string) string
	PlainText(html string, limit int) string
}

type policySanitizer struct {
	ugc   *bluemonday.Policy
	plain *bluemonday.Policy
}

func NewSanitizer() Sanitizer {
	ugc := bluemonday.UGCPolicy()
	ugc.AddTargetBlankToFullyQualifiedLinks(true)
	ugc.AllowAttrs("class").OnElements("p", "span", "div", "blockquote")
	ugc.AllowAttrs("src", "width", "height", "allowfullscreen", "frameborder").OnElements("iframe")

	return &policySanitizer{
		ugc:   ugc,
		plain: bluemonday.StrictPolicy(),
	}
}

func (s *policySanitizer) Sanitize(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return strings.TrimSpace(s.ugc.Sanitize(input))
}

// PlainText strips all markup and cuts the result to limit runes.
// A limit <= 0 means no limit.
func (s *policySanitizer) PlainText(input string, limit int) string {
	text := html.UnescapeString(s.plain.Sanitize(input))
	text = strings.Join(strings.Fields(text), " ")
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 && utf8.RuneCountInString(cut[:i]) > limit/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "…"
}
