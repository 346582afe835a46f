package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Deadline puts a deadline on the request context. It never writes a
// response itself; handlers and the layers below observe ctx.Done(). A
// non-positive timeout disables it.
func Deadline(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
