package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkai_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkai_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	GalleryFilterApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkai_gallery_filter_applied_total",
			Help: "Number of filter passes over the gallery, by sort key",
		},
		[]string{"sort_by"},
	)

	GenerationJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkai_generation_jobs_total",
			Help: "Generation jobs by terminal status",
		},
		[]string{"status"},
	)
)
