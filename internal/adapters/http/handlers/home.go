package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/home.html.tmpl
var templateFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templateFS, "templates/home.html.tmpl"))

// homePage is the data rendered into the home template.
type homePage struct {
	BaseURL string
}

// HomeHandler renders the browser page that drives the quote API.
type HomeHandler struct {
	page []byte
}

// NewHomeHandler renders the page once for baseURL. The page never changes
// afterwards, so it is served from memory.
func NewHomeHandler(baseURL string) (*HomeHandler, error) {
	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, homePage{BaseURL: baseURL}); err != nil {
		return nil, err
	}

	return &HomeHandler{page: buf.Bytes()}, nil
}

// Home handles GET /.
func (h *HomeHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}

// RegisterHomeRoutes registers GET / on the given router group.
func (h *HomeHandler) RegisterHomeRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Home)
}
