package memory

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector returns a Prometheus gauge reporting the collection size at
// scrape time.
func (s *Store) Collector() prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "quotes_total",
			Help: "Number of quotes currently held in memory.",
		},
		func() float64 {
			return float64(s.Len(context.Background()))
		},
	)
}
