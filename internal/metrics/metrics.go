// Package metrics exposes Prometheus instrumentation for metered searches.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadscout_searches_total",
			Help: "Settled search submissions by surface and outcome.",
		},
		[]string{"surface", "outcome"},
	)

	amountPaidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadscout_amount_paid_usd_total",
			Help: "Cumulative USD paid for accepted metered searches.",
		},
		[]string{"surface", "provider"},
	)
)

// RecordSearch counts one settled submission. outcome is "success" or an
// error kind.
func RecordSearch(surface domain.Surface, outcome string) {
	searchesTotal.WithLabelValues(string(surface), outcome).Inc()
}

// RecordReceipt adds an accepted receipt's cost to the running total.
// Superseded and failed submissions are never recorded here.
func RecordReceipt(surface domain.Surface, provider string, amountUSD float64) {
	amountPaidTotal.WithLabelValues(string(surface), provider).Add(amountUSD)
}
