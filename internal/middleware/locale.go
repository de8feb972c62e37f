package middleware

import (
	"callaudit-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale sets the request language from the "lang" header, falling back to Accept-Language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("lang")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), locale.ParseLang(raw))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
