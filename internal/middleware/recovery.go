package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"callaudit-srv/pkg/discord"
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 and reports it. http.ErrAbortHandler
// is re-raised so the server drops the connection as usual.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			logger.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v\n%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.PanicError(c, rec, discordClient)
			c.Abort()
		}()
		c.Next()
	}
}
