package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emailwriter_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerationDuration tracks model latency per operation (reply, summarize).
	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emailwriter_generation_duration_seconds",
		Help:    "Time spent waiting for the model.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"operation"})

	// InputChars tracks the distribution of email lengths.
	InputChars = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emailwriter_input_chars",
		Help:    "Number of characters in the submitted email.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"operation"})

	// GatewayErrors counts failed model calls by error kind.
	GatewayErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emailwriter_gateway_errors_total",
		Help: "Model calls that failed, by kind.",
	}, []string{"kind"})

	// FallbackTotal counts responses without candidates returned as raw documents.
	FallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emailwriter_fallback_total",
		Help: "Model responses returned whole because they had no candidates.",
	})

	// ModelAvailable tracks whether the configured model can be called.
	ModelAvailable = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "emailwriter_model_available",
		Help: "Whether the model gateway is configured (1) or not (0).",
	})
)
