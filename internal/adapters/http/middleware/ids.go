// Package middleware provides the gin middleware chain of the HTTP server.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID follows a transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin.Context key holding the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin.Context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// maxIDLength caps caller-supplied IDs before they reach logs and headers.
const maxIDLength = 128

// idHeader describes one propagated identifier.
type idHeader struct {
	header string
	key    string
	tag    func(ctx context.Context, id string) context.Context
}

var (
	requestIDHeader     = idHeader{HeaderRequestID, ContextKeyRequestID, logging.WithRequestID}
	correlationIDHeader = idHeader{HeaderCorrelationID, ContextKeyCorrelationID, logging.WithCorrelationID}
)

// RequestID reuses the caller's X-Request-ID or generates a UUID v4, echoes it
// in the response, and tags the request logger with it.
func RequestID() gin.HandlerFunc {
	return requestIDHeader.middleware()
}

// CorrelationID does the same for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return correlationIDHeader.middleware()
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

func (h idHeader) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(h.header)
		if !acceptableID(id) {
			id = uuid.NewString()
		}

		c.Set(h.key, id)
		c.Header(h.header, id)
		c.Request = c.Request.WithContext(h.tag(c.Request.Context(), id))

		c.Next()
	}
}

// acceptableID rejects empty, oversized and non-printable-ASCII values.
func acceptableID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
