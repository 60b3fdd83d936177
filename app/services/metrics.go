package services

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	forwardCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskboard_proxy_forwards_total",
			Help: "Total number of calls forwarded to the record-storage service",
		},
		[]string{"operation", "outcome"},
	)

	forwardDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskboard_proxy_forward_duration_seconds",
			Help:    "Duration of forwarded calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// observeForward records one forwarded call. Outcomes are "success",
// "rejected" (storage answered non-2xx) and "failed" (no usable answer).
func observeForward(operation string, start time.Time, err error) {
	forwardDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	outcome := "success"
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		outcome = "rejected"
		if upstream.Err != nil {
			outcome = "failed"
		}
	} else if err != nil {
		outcome = "failed"
	}
	forwardCount.WithLabelValues(operation, outcome).Inc()
}
