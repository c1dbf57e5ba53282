package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Extraction requests by source (http, cli) and cache result (hit, miss).
	ExtractRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_extract_requests_total",
			Help: "Total number of extraction requests",
		},
		[]string{"source", "cache"},
	)

	// Tasks produced by the extraction pipeline.
	TasksExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasks_extracted_total",
			Help: "Total number of tasks extracted, by category and priority",
		},
		[]string{"category", "priority"},
	)

	// Pipeline latency in seconds, cache misses only.
	ExtractDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "task_extract_duration_seconds",
			Help:    "Extraction pipeline duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
	)

	// Calendar event creation by status (created, failed).
	CalendarEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_events_total",
			Help: "Total number of calendar event creation attempts",
		},
		[]string{"status"},
	)

	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)
)
