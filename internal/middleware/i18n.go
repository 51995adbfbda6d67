// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// I18nMiddleware picks the response language from Accept-Language. Korean is the
// default; English is chosen when it is the first preference.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := "ko"

		// Handle cases like "en-US,en;q=0.9,ko;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
			switch strings.ToLower(first) {
			case "en", "en-us", "en-gb":
				lang = "en"
			}
		}

		// Set language in context
		c.Set("lang", lang)
		c.Next()
	}
}
