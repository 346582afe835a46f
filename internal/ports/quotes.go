// Package ports defines the contracts between the application layer and the
// adapters that back it.
//
// Port conventions:
//   - Context is the first parameter
//   - Domain types in, domain types out
//   - Failures use domain error types (ErrNotFound, ErrConflict, ...)
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteStore holds the ordered quote collection.
//
// Implementations must be safe for concurrent use. Each method observes the
// collection atomically: a caller never sees a length that disagrees with the
// entries returned alongside it.
type QuoteStore interface {
	// List returns every quote in insertion order. The returned slice is a
	// copy owned by the caller and is never nil.
	List(ctx context.Context) ([]domain.Quote, error)

	// Random returns one quote chosen uniformly at random together with the
	// collection size at the moment of the pick.
	// Returns domain.ErrNotFound if the collection is empty.
	Random(ctx context.Context) (domain.Quote, int, error)

	// Append adds already-normalized text to the end of the collection and
	// returns the stored quote and the new collection size.
	// Returns domain.ErrConflict if identical text is already stored.
	Append(ctx context.Context, text string) (domain.Quote, int, error)

	// Len returns the current collection size.
	Len(ctx context.Context) int
}
