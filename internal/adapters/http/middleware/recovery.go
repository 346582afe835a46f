package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// Recovery turns a panic into the generic 500 envelope and logs it with the
// stack. It must be the first middleware so it covers the whole chain.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()
			logging.FromContext(ctx).ErrorContext(ctx, "panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.AbortWithError(c, http.StatusInternalServerError, dto.MsgInternal)
		}()

		c.Next()
	}
}
