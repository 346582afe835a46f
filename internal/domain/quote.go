package domain

import "strings"

// QuoteField is the name of the quote text field as callers submit it.
const QuoteField = "quote"

// Caller-facing messages for the quote rules.
const (
	MsgQuoteRequired = `the "quote" field is required`
	MsgQuoteEmpty    = "quote text cannot be empty"
	MsgQuoteExists   = "quote already exists"
	MsgNoQuotes      = "no quotes available"
)

// Quote is one entry of the quote collection.
type Quote struct {
	// ID is assigned at insert time and never reused. Entries are only ever
	// appended, so it also equals the entry's position in the collection.
	ID int

	// Text is the trimmed quote text.
	Text string
}

// NormalizeQuoteText applies the append rules to raw caller input, in order:
// the field must be present and non-empty, and the trimmed text must not be
// empty. It returns the trimmed text.
//
// A nil raw means the field was omitted.
func NormalizeQuoteText(raw *string) (string, error) {
	if raw == nil || *raw == "" {
		return "", NewValidationError(QuoteField, MsgQuoteRequired)
	}

	text := strings.TrimSpace(*raw)
	if text == "" {
		return "", NewValidationError(QuoteField, MsgQuoteEmpty)
	}

	return text, nil
}

// NewQuoteExistsError returns the conflict raised when the text is already stored.
func NewQuoteExistsError() error {
	return NewConflictError(MsgQuoteExists)
}

// NewNoQuotesError returns the not found error raised when the collection is empty.
func NewNoQuotesError() error {
	return NewNotFoundError(MsgNoQuotes)
}
