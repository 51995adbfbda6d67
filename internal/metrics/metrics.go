// Package metrics exposes HTTP and scan-ingestion metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "circularlabs"

// Metrics holds every collector the service records into.
type Metrics struct {
	gatherer prometheus.Gatherer

	// RequestCounter counts all HTTP requests with labels
	RequestCounter *prometheus.CounterVec
	// RequestDuration records request duration in seconds
	RequestDuration *prometheus.HistogramVec
	// StatusCategoryCounter counts responses by 2xx/4xx/5xx
	StatusCategoryCounter *prometheus.CounterVec

	// ScannedChips counts chips reported by devices, by scan status and outcome.
	ScannedChips *prometheus.CounterVec
	// ScanBatches counts scan requests by status.
	ScanBatches *prometheus.CounterVec
	// DeviceCacheLookups counts device lookups by cache outcome.
	DeviceCacheLookups *prometheus.CounterVec
}

// New registers the collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		StatusCategoryCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_status_category_total",
				Help:      "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"category", "method", "path"},
		),
		ScannedChips: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rfid_chips_scanned_total",
				Help:      "Total number of RFID chips reported by devices",
			},
			[]string{"status", "result"},
		),
		ScanBatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rfid_scan_batches_total",
				Help:      "Total number of scan batches accepted",
			},
			[]string{"status"},
		),
		DeviceCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "device_lookups_total",
				Help:      "Total number of device lookups by cache outcome",
			},
			[]string{"outcome"},
		),
	}
}

// ObserveScan records the outcome of one scan batch.
func (m *Metrics) ObserveScan(status string, accepted, rejected int) {
	if m == nil {
		return
	}
	m.ScanBatches.WithLabelValues(status).Inc()
	m.ScannedChips.WithLabelValues(status, "accepted").Add(float64(accepted))
	m.ScannedChips.WithLabelValues(status, "rejected").Add(float64(rejected))
}

// ObserveDeviceLookup records a cache hit or miss.
func (m *Metrics) ObserveDeviceLookup(hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.DeviceCacheLookups.WithLabelValues(outcome).Inc()
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

// Middleware records request count, duration and status category per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Unmatched routes share one label to keep cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		m.RequestCounter.WithLabelValues(method, path, statusStr).Inc()
		if category := statusCategory(status); category != "" {
			m.StatusCategoryCounter.WithLabelValues(category, method, path).Inc()
		}
		m.RequestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
