// Package metrics exposes Prometheus counters for console traffic and backend calls.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "admin_console"

// Metrics owns a private registry so tests and multiple fx apps never collide on the global one.
type Metrics struct {
	enabled  bool
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	statusCategory  *prometheus.CounterVec
	backendCalls    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	decisions       *prometheus.CounterVec
}

// New builds the collectors described by the metrics section.
func New(cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	enabled := true
	if cfg != nil && cfg.Metrics != nil {
		enabled = cfg.Metrics.Enabled
		if cfg.Metrics.Namespace != "" {
			namespace = cfg.Metrics.Namespace
		}
	}

	m := &Metrics{
		enabled:  enabled,
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		statusCategory: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_status_category_total",
			Help:      "Total number of responses by status category (2xx, 3xx, 4xx, 5xx)",
		}, []string{"category"}),
		backendCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Total number of calls to the Miorish REST API",
		}, []string{"method", "endpoint", "outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of calls to the Miorish REST API in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_decisions_total",
			Help:      "Total number of approval desk decisions",
		}, []string{"subject", "action", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.statusCategory,
		m.backendCalls,
		m.backendDuration,
		m.decisions,
	)

	return m
}

// Enabled reports whether /metrics should be mounted.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.Enabled() {
				return next(c)
			}

			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the real status is observed.
				c.Error(err)
			}

			status := c.Response().Status
			method := c.Request().Method
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			statusStr := strconv.Itoa(status)

			m.requests.WithLabelValues(method, path, statusStr).Inc()
			m.requestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())
			if category := statusCategory(status); category != "" {
				m.statusCategory.WithLabelValues(category).Inc()
			}

			return nil
		}
	}
}

// ObserveBackendCall records one call to the REST API.
func (m *Metrics) ObserveBackendCall(method, endpoint string, status int, err error, elapsed time.Duration) {
	if !m.Enabled() {
		return
	}

	outcome := statusCategory(status)
	if err != nil && status == 0 {
		outcome = "transport_error"
	}
	if outcome == "" {
		outcome = "unknown"
	}

	m.backendCalls.WithLabelValues(method, endpoint, outcome).Inc()
	m.backendDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// ObserveDecision records an approval desk outcome.
func (m *Metrics) ObserveDecision(subject, action string, err error) {
	if !m.Enabled() {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	m.decisions.WithLabelValues(subject, action, outcome).Inc()
}

// RegisterDBStats exports the connection pool of db under the db_name label.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) {
	if !m.Enabled() {
		return
	}

	m.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

// Handler exposes the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	default:
		return ""
	}
}
