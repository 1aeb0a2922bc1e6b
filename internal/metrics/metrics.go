package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	TenantsProvisioned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tenants_provisioned_total",
			Help: "Total number of tenant schemas provisioned",
		},
	)

	TenantsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tenants_deleted_total",
			Help: "Total number of tenant schemas dropped",
		},
	)
)
