// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Eligibility outcomes.
const (
	OutcomeEligible   = "eligible"
	OutcomeIneligible = "ineligible"
	OutcomeRestricted = "restricted"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
)

// Snapshot cache results.
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheError    = "error"
	CacheDisabled = "disabled"
)

var eligibilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "loan_eligibility_checks_total",
	Help: "Eligibility submissions by outcome",
}, []string{"outcome"})

var eligibilityOffers = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "loan_eligibility_offers",
	Help:    "Number of eligible offers per evaluated check",
	Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
})

var snapshotCache = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "loan_reference_snapshot_cache_total",
	Help: "Reference snapshot lookups by cache result",
}, []string{"result"})

// ObserveEligibility records one submission. offers is only observed for
// evaluated submissions.
func ObserveEligibility(outcome string, offers int) {
	eligibilityChecks.WithLabelValues(outcome).Inc()
	if outcome == OutcomeEligible || outcome == OutcomeIneligible {
		eligibilityOffers.Observe(float64(offers))
	}
}

func ObserveSnapshotCache(result string) {
	snapshotCache.WithLabelValues(result).Inc()
}
