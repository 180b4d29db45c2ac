package middleware

import (
	"hello-madurai/pkg/locale"

	"github.com/gin-gonic/gin"
)

const ContextLocale = "locale"

// Locale resolves the reader language from ?lang first, then Accept-Language.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		loc, ok := locale.Parse(c.Query("lang"))
		if !ok {
			loc = locale.Match(c.GetHeader("Accept-Language"))
		}
		c.Set(ContextLocale, loc)
		c.Header("Content-Language", loc.String())
		c.Next()
	}
}

// LocaleFrom returns the locale stored by Locale, or the default.
func LocaleFrom(c *gin.Context) locale.Locale {
	if v, ok := c.Get(ContextLocale); ok {
		if loc, ok := v.(locale.Locale); ok {
			return loc
		}
	}
	return locale.Default
}
