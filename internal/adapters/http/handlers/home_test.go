package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler_Home(t *testing.T) {
	handler, err := NewHomeHandler("https://cautious-bassoon-3001.app.github.dev")
	require.NoError(t, err)

	router := gin.New()
	handler.RegisterHomeRoutes(&router.RouterGroup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `href="https://cautious-bassoon-3001.app.github.dev/random/quotes"`)
	assert.Contains(t, body, `href="https://cautious-bassoon-3001.app.github.dev/random/quotes/random"`)
	assert.Contains(t, body, "fetch(baseUrl + path, options)")
}

func TestNewHomeHandler_EscapesBaseURL(t *testing.T) {
	handler, err := NewHomeHandler(`https://example.com/"><script>alert(1)</script>`)
	require.NoError(t, err)

	assert.NotContains(t, string(handler.page), "<script>alert(1)</script>")
}
