package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/app"
)

// QuoteHandler serves the quote collection endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /random/quotes.
//
// @Summary List all quotes
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.ListQuotesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /random/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListQuotesResponse(quotes))
}

// RandomQuote handles GET /random/quotes/random.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.RandomQuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /random/quotes/random [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	quote, total, err := h.service.RandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRandomQuoteResponse(quote, total))
}

// AddQuote handles POST /random/quotes.
//
// @Summary Append a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body dto.AddQuoteRequest true "Quote to add"
// @Success 201 {object} dto.AddQuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /random/quotes [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	req, err := dto.BindAddQuote(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, total, err := h.service.AddQuote(c.Request.Context(), req.Quote)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAddQuoteResponse(quote, total))
}

// RegisterQuoteRoutes registers the quote routes under /random/quotes.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/random/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.AddQuote)
	quotes.GET("/random", h.RandomQuote)
}
