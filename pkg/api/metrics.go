package api

import (
	"time"

	foundation "github.com/estafette/estafette-foundation"
	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// UpdateMetrics increments the request counter and records the latency
// for one decorated call
func UpdateMetrics(requestCount metrics.Counter, requestLatency metrics.Histogram, funcName string, begin time.Time) {
	funcName = foundation.ToLowerSnakeCase(funcName)

	requestCount.With("func", funcName).Add(1)
	requestLatency.With("func", funcName).Observe(time.Since(begin).Seconds())
}

var requestCounters = map[string]metrics.Counter{}

// NewRequestCounter returns the prometheus-backed request counter for a
// subsystem, registering it on first use
func NewRequestCounter(subsystem string) metrics.Counter {

	if _, ok := requestCounters[subsystem]; !ok {
		requestCounters[subsystem] = kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: "badge_api",
			Subsystem: subsystem,
			Name:      "request_count",
			Help:      "Number of requests received.",
		}, []string{"func"})
	}

	return requestCounters[subsystem]
}

var requestHistograms = map[string]metrics.Histogram{}

// NewRequestHistogram returns the prometheus-backed request latency
// histogram for a subsystem, registering it on first use
func NewRequestHistogram(subsystem string) metrics.Histogram {

	if _, ok := requestHistograms[subsystem]; !ok {
		requestHistograms[subsystem] = kitprometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: "badge_api",
			Subsystem: subsystem,
			Name:      "request_latency_seconds",
			Help:      "Total duration of requests in seconds.",
		}, []string{"func"})
	}

	return requestHistograms[subsystem]
}
