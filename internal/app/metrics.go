package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// Rejection reasons used as the "reason" label of quotes_rejected_total.
const (
	reasonRequired  = "required"
	reasonEmpty     = "empty"
	reasonDuplicate = "duplicate"
	reasonInvalid   = "invalid"
)

// QuoteMetrics counts append outcomes. A nil *QuoteMetrics records nothing.
type QuoteMetrics struct {
	addedTotal    prometheus.Counter
	rejectedTotal *prometheus.CounterVec
}

// NewQuoteMetrics creates the append counters and registers them with reg.
func NewQuoteMetrics(reg prometheus.Registerer) (*QuoteMetrics, error) {
	m := &QuoteMetrics{
		addedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_added_total",
			Help: "Number of quotes appended since startup.",
		}),
		rejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_rejected_total",
			Help: "Number of append requests rejected, by reason.",
		}, []string{"reason"}),
	}

	for _, c := range []prometheus.Collector{m.addedTotal, m.rejectedTotal} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering quote metrics: %w", err)
		}
	}

	return m, nil
}

func (m *QuoteMetrics) added() {
	if m == nil {
		return
	}

	m.addedTotal.Inc()
}

func (m *QuoteMetrics) rejected(reason string) {
	if m == nil {
		return
	}

	m.rejectedTotal.WithLabelValues(reason).Inc()
}

func rejectReason(err error) string {
	if !domain.IsValidation(err) {
		return reasonInvalid
	}

	switch domain.Message(err) {
	case domain.MsgQuoteRequired:
		return reasonRequired
	case domain.MsgQuoteEmpty:
		return reasonEmpty
	default:
		return reasonInvalid
	}
}
