// Package app contains the application services that orchestrate use cases.
// Services depend on ports, never on adapters.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen/quote-service/internal/app"

// QuoteService orchestrates the quote collection use cases.
type QuoteService struct {
	store   ports.QuoteStore
	metrics *QuoteMetrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	// Store holds the collection. Required.
	Store ports.QuoteStore

	// Metrics records append outcomes. Optional.
	Metrics *QuoteMetrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewQuoteService creates a quote service. It panics if no store is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteService requires a Store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:   cfg.Store,
		metrics: cfg.Metrics,
		logger:  logger.With(slog.String("component", "app.QuoteService")),
		tracer:  otel.Tracer(tracerName),
	}
}

// ListQuotes returns the whole collection in insertion order.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.ListQuotes")
	defer span.End()

	quotes, err := s.store.List(ctx)
	if err != nil {
		recordError(span, err)
		s.logger.ErrorContext(ctx, "failed to list quotes", slog.Any("error", err))

		return nil, err
	}

	span.SetAttributes(attribute.Int("quotes.total", len(quotes)))
	s.logger.DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// RandomQuote returns one quote chosen uniformly at random and the current
// collection size. It returns a domain not found error when the collection
// is empty.
func (s *QuoteService) RandomQuote(ctx context.Context) (domain.Quote, int, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.RandomQuote")
	defer span.End()

	quote, total, err := s.store.Random(ctx)
	if err != nil {
		recordError(span, err)

		if domain.IsNotFound(err) {
			s.logger.WarnContext(ctx, "no quotes to pick from")
		} else {
			s.logger.ErrorContext(ctx, "failed to pick random quote", slog.Any("error", err))
		}

		return domain.Quote{}, 0, err
	}

	span.SetAttributes(
		attribute.Int("quote.id", quote.ID),
		attribute.Int("quotes.total", total),
	)
	s.logger.DebugContext(ctx, "picked random quote",
		slog.Int("quote_id", quote.ID),
		slog.Int("total", total),
	)

	return quote, total, nil
}

// AddQuote validates raw caller input and appends it to the collection.
// A nil raw means the caller omitted the field. It returns the stored quote
// and the new collection size.
func (s *QuoteService) AddQuote(ctx context.Context, raw *string) (domain.Quote, int, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.AddQuote")
	defer span.End()

	text, err := domain.NormalizeQuoteText(raw)
	if err != nil {
		recordError(span, err)
		s.metrics.rejected(rejectReason(err))
		s.logger.InfoContext(ctx, "rejected quote", slog.String("reason", err.Error()))

		return domain.Quote{}, 0, err
	}

	quote, total, err := s.store.Append(ctx, text)
	if err != nil {
		recordError(span, err)

		if domain.IsConflict(err) {
			s.metrics.rejected(reasonDuplicate)
			s.logger.InfoContext(ctx, "rejected duplicate quote", slog.Int("total", total))
		} else {
			s.logger.ErrorContext(ctx, "failed to append quote", slog.Any("error", err))
		}

		return domain.Quote{}, 0, err
	}

	s.metrics.added()
	span.SetAttributes(
		attribute.Int("quote.id", quote.ID),
		attribute.Int("quotes.total", total),
	)
	s.logger.InfoContext(ctx, "added quote",
		slog.Int("quote_id", quote.ID),
		slog.Int("total", total),
	)

	return quote, total, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
