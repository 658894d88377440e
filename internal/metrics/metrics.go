package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Show source metrics
var (
	SourceLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvshowinfo_source_lookups_total",
			Help: "Total number of top match lookups per show source.",
		},
		[]string{"source", "result"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvshowinfo_http_requests_total",
			Help: "Total number of outbound HTTP requests by host and status code.",
		},
		[]string{"host", "code"},
	)
)

// Notification metrics
var (
	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvshowinfo_webhook_deliveries_total",
			Help: "Total number of webhook delivery attempts.",
		},
		[]string{"status"},
	)
)

// Lookup results
const (
	ResultMatch   = "match"
	ResultNoMatch = "no_match"
	ResultError   = "error"
)

// Delivery statuses
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

func init() {
	prometheus.MustRegister(
		SourceLookupsTotal,
		HTTPRequestsTotal,
		WebhookDeliveriesTotal,
	)
}
