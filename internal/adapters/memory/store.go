// Package memory provides the process-local QuoteStore.
package memory

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// errEmptyStore is reported by the readiness check.
var errEmptyStore = errors.New("quote store is empty")

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

// Store is a QuoteStore backed by a slice guarded by a single RWMutex.
// The zero value is not usable; call NewStore.
type Store struct {
	mu     sync.RWMutex
	quotes []domain.Quote
	index  map[string]struct{}
	nextID int
	pick   Picker
}

// Option configures a Store.
type Option func(*Store)

// WithPicker replaces the uniform random index source.
func WithPicker(p Picker) Option {
	return func(s *Store) {
		if p != nil {
			s.pick = p
		}
	}
}

// NewStore creates a store holding seed in order. Seed entries are expected
// to be normalized and unique (see ParseSeed); duplicates are dropped.
func NewStore(seed []string, opts ...Option) *Store {
	s := &Store{
		quotes: make([]domain.Quote, 0, len(seed)),
		index:  make(map[string]struct{}, len(seed)),
		pick:   rand.IntN,
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, text := range seed {
		if _, exists := s.index[text]; exists {
			continue
		}

		s.insertLocked(text)
	}

	return s
}

// List returns a copy of every quote in insertion order.
func (s *Store) List(_ context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)

	return out, nil
}

// Random returns a uniformly chosen quote and the collection size.
func (s *Store) Random(_ context.Context) (domain.Quote, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.quotes)
	if n == 0 {
		return domain.Quote{}, 0, domain.NewNoQuotesError()
	}

	return s.quotes[s.pick(n)], n, nil
}

// Append stores text at the end of the collection unless it already exists.
// The duplicate check and the insert happen under one write lock.
func (s *Store) Append(_ context.Context, text string) (domain.Quote, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[text]; exists {
		return domain.Quote{}, len(s.quotes), domain.NewQuoteExistsError()
	}

	q := s.insertLocked(text)

	return q, len(s.quotes), nil
}

// Len returns the collection size.
func (s *Store) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker. An empty store is not ready.
func (s *Store) Check(ctx context.Context) error {
	if s.Len(ctx) == 0 {
		return errEmptyStore
	}

	return nil
}

func (s *Store) insertLocked(text string) domain.Quote {
	q := domain.Quote{ID: s.nextID, Text: text}
	s.nextID++
	s.quotes = append(s.quotes, q)
	s.index[text] = struct{}{}

	return q
}
