package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emprecords_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emprecords_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StorageUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emprecords_storage_uploads_total",
			Help: "File uploads by storage backend and result",
		},
		[]string{"backend", "result"},
	)

	LeaveEventsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emprecords_leave_events_recorded_total",
			Help: "Leave events recorded by leave type",
		},
		[]string{"leave_type"},
	)

	OutboxEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emprecords_outbox_events_published_total",
			Help: "Outbox events relayed to Kafka by topic and result",
		},
		[]string{"topic", "result"},
	)
)

// RecordHTTPRequest uses the matched route template, never the raw path, to
// keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordStorageUpload(backend string, err error) {
	StorageUploadsTotal.WithLabelValues(backend, result(err)).Inc()
}

func RecordLeaveEvent(leaveType string) {
	LeaveEventsRecorded.WithLabelValues(leaveType).Inc()
}

func RecordOutboxPublish(topic string, err error) {
	OutboxEventsPublished.WithLabelValues(topic, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
