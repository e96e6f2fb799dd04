// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// resolveLanguage picks the first preference of a header such as
// "es-MX,es;q=0.9,en;q=0.8". Unknown languages fall back to English.
func resolveLanguage(header string) string {
	if header == "" {
		return "en"
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	first = strings.ToLower(strings.ReplaceAll(first, "_", "-"))

	switch {
	case first == "es" || strings.HasPrefix(first, "es-"):
		return "es"
	default:
		return "en"
	}
}
