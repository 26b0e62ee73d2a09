package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomeTransport = "transport"
	OutcomeParse     = "parse"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "witaqua",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Upstream feed requests by feed and outcome.",
	}, []string{"feed", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "witaqua",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Upstream feed request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"feed"})
)

func UpstreamRequest(feed, outcome string) {
	upstreamRequests.WithLabelValues(feed, outcome).Inc()
}

func UpstreamDuration(feed string, d time.Duration) {
	upstreamDuration.WithLabelValues(feed).Observe(d.Seconds())
}
