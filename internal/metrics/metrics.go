package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarker_auth_attempts_total",
		Help: "Register and login attempts by outcome.",
	}, []string{"operation", "result"})

	BookmarkOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarker_bookmark_operations_total",
		Help: "Bookmark service calls by operation and outcome.",
	}, []string{"operation", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookmarker_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route", "status"})

	GRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarker_grpc_requests_total",
		Help: "gRPC calls by method and status code.",
	}, []string{"method", "code"})
)
