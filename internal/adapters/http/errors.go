package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
)

// Messages for requests that match no handler.
const (
	MsgRouteNotFound    = "route not found"
	MsgMethodNotAllowed = "method not allowed"
)

func notFound(c *gin.Context) {
	dto.AbortWithError(c, http.StatusNotFound, MsgRouteNotFound)
}

func methodNotAllowed(c *gin.Context) {
	dto.AbortWithError(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
