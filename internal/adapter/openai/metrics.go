package openai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// advisorRequests counts advisor calls.
	// Labels:
	//   - op: "chat", "insights"
	//   - outcome: "success", "error", "circuit_open", "disabled"
	advisorRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsight_advisor_requests_total",
			Help: "Total number of advisor requests by outcome",
		},
		[]string{"op", "outcome"},
	)

	advisorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adsight_advisor_request_duration_seconds",
			Help:    "Latency of completed advisor requests",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"op"},
	)
)
