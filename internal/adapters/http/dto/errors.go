// Package dto provides the request and response bodies of the HTTP API.
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
)

// MsgInternal is the only message a 500 response ever carries.
const MsgInternal = "an internal error occurred"

// ErrorResponse is the envelope of every error status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

// NewErrorResponse creates a failed envelope carrying message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// MapDomainError maps err to a status code and envelope. Unknown errors
// become a 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, NewErrorResponse(callerMessage(err))
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(callerMessage(err))
	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(callerMessage(err))
	default:
		return http.StatusInternalServerError, NewErrorResponse(MsgInternal)
	}
}

// HandleError writes the envelope for err. Internal errors are logged with
// full detail since the caller only sees the generic message.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.WithTraceID(TraceID(c))

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(status, resp)
}

// AbortWithError is HandleError for middleware: it stops the chain.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorResponse(message).WithTraceID(TraceID(c)))
}

// TraceID returns the trace ID of the request span, or "".
func TraceID(c *gin.Context) string {
	return telemetry.TraceID(c.Request.Context())
}

// callerMessage drops wrapping context and the field prefix.
func callerMessage(err error) string {
	if msg := domain.Message(err); msg != "" {
		return msg
	}

	return err.Error()
}
