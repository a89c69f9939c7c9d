package preview

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "htmlsmith"
	metricsSubsystem = "preview"
)

// Metrics holds the Prometheus metrics for the preview server. Each server
// registers into its own registry so multiple servers can coexist in one
// process.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
	responseBytes   prometheus.Counter
	reloadsTotal    *prometheus.CounterVec
	watchChanges    *prometheus.CounterVec
}

// NewMetrics creates the preview server metrics. clientCount feeds the
// connected-browsers gauge and may be nil.
func NewMetrics(clientCount func() int) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served",
		}, []string{"method", "code"}),

		requestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		responseBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "response_bytes_total",
			Help:      "Total number of response body bytes written",
		}),

		reloadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "reloads_sent_total",
			Help:      "Total number of reload notifications sent to browsers",
		}, []string{"type"}),

		watchChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "watch_changes_total",
			Help:      "Total number of file changes detected by the watcher",
		}, []string{"type"}),
	}

	if clientCount != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "connected_browsers",
			Help:      "Number of browsers connected for live reload",
		}, func() float64 { return float64(clientCount()) })
	}

	return m
}

// Registry returns the registry holding the preview metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordReload records a reload notification.
func (m *Metrics) RecordReload(typ ReloadMessageType) {
	m.reloadsTotal.WithLabelValues(string(typ)).Inc()
}

// RecordChange records a detected file change.
func (m *Metrics) RecordChange(typ ChangeType) {
	m.watchChanges.WithLabelValues(changeLabel(typ)).Inc()
}

// Middleware instruments an HTTP handler with request metrics.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		m.requestDuration.Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(sw.Status())).Inc()
		m.responseBytes.Add(float64(sw.bytes))
	})
}

func changeLabel(typ ChangeType) string {
	switch typ {
	case ChangeMarkup:
		return "markup"
	case ChangeCSS:
		return "css"
	default:
		return "asset"
	}
}

// statusWriter captures the response status code and body size for metrics
// and tracing.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Status returns the recorded status code, defaulting to 200.
func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
