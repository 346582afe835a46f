package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// Success messages.
const (
	MsgRandomQuote = "random quote retrieved"
	MsgQuoteAdded  = "quote added"
)

// MsgInvalidBody is returned for bodies that are not a JSON object with a
// string "quote" field.
const MsgInvalidBody = `request body must be a JSON object with a string "quote" field`

// AddQuoteRequest is the body of POST /random/quotes. Quote is a pointer so
// an omitted field can be told apart from an empty one.
type AddQuoteRequest struct {
	Quote *string `json:"quote" validate:"required"`
}

// ListQuotesResponse is the body of GET /random/quotes.
type ListQuotesResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Quotes  []string `json:"quotes"`
}

// RandomQuoteResponse is the body of GET /random/quotes/random.
type RandomQuoteResponse struct {
	Success     bool   `json:"success"`
	Quote       string `json:"quote"`
	TotalQuotes int    `json:"totalQuotes"`
	Message     string `json:"message"`
}

// AddQuoteResponse is the body of a successful POST /random/quotes.
type AddQuoteResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	NewQuote    string `json:"newQuote"`
	TotalQuotes int    `json:"totalQuotes"`
	NewQuoteID  int    `json:"newQuoteId"`
}

// BindAddQuote decodes an AddQuoteRequest. Every failure is a domain
// validation error: a malformed body, or a missing or null quote field.
func BindAddQuote(c *gin.Context) (*AddQuoteRequest, error) {
	var req AddQuoteRequest

	err := BindAndValidate(c, &req)
	switch {
	case err == nil:
		return &req, nil
	case failedField(err, domain.QuoteField):
		return nil, domain.NewValidationError(domain.QuoteField, domain.MsgQuoteRequired)
	default:
		return nil, domain.NewValidationError("", MsgInvalidBody)
	}
}

// NewListQuotesResponse builds the list body. Quotes is never null.
func NewListQuotesResponse(quotes []domain.Quote) *ListQuotesResponse {
	texts := make([]string, len(quotes))
	for i, q := range quotes {
		texts[i] = q.Text
	}

	return &ListQuotesResponse{
		Success: true,
		Count:   len(texts),
		Quotes:  texts,
	}
}

// NewRandomQuoteResponse builds the random pick body.
func NewRandomQuoteResponse(quote domain.Quote, total int) *RandomQuoteResponse {
	return &RandomQuoteResponse{
		Success:     true,
		Quote:       quote.Text,
		TotalQuotes: total,
		Message:     MsgRandomQuote,
	}
}

// NewAddQuoteResponse builds the append body.
func NewAddQuoteResponse(quote domain.Quote, total int) *AddQuoteResponse {
	return &AddQuoteResponse{
		Success:     true,
		Message:     MsgQuoteAdded,
		NewQuote:    quote.Text,
		TotalQuotes: total,
		NewQuoteID:  quote.ID,
	}
}
