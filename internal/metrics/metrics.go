package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg     *prometheus.Registry
	handler http.Handler

	inflight    prometheus.Gauge
	reqTotal    *prometheus.CounterVec
	reqDur      *prometheus.HistogramVec
	storeTotal  *prometheus.CounterVec
	storeDur    *prometheus.HistogramVec
	pageTotal   *prometheus.CounterVec
	redirects   *prometheus.CounterVec
	rateLimited prometheus.Counter
}

// New returns a fresh registry with the Go and process collectors and the
// site's own series. Labels are bounded: route names, never raw paths.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Current number of in-flight HTTP requests",
		}),
		reqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route, and status",
		}, []string{"method", "route", "status"}),
		reqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request latency by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		storeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cms_queries_total",
			Help: "CMS GraphQL queries by operation and outcome",
		}, []string{"operation", "outcome"}),
		storeDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cms_query_duration_seconds",
			Help:    "CMS GraphQL query latency by operation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15},
		}, []string{"operation"}),
		pageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "page_resolutions_total",
			Help: "Catch-all page requests by outcome",
		}, []string{"outcome"}),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redirect_lookups_total",
			Help: "Redirect registry lookups by outcome",
		}, []string{"outcome"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Total requests rejected by rate limiter",
		}),
	}
	reg.MustRegister(
		m.inflight,
		m.reqTotal,
		m.reqDur,
		m.storeTotal,
		m.storeDur,
		m.pageTotal,
		m.redirects,
		m.rateLimited,
	)

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	m.reg = reg
	return m
}

func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

func (m *Metrics) ObserveStoreQuery(operation string, outcome string, elapsed time.Duration) {
	m.storeTotal.WithLabelValues(operation, outcome).Inc()
	m.storeDur.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) IncPageResolution(outcome string) {
	m.pageTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncRedirectLookup(outcome string) {
	m.redirects.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncRateLimitDenied(string) {
	m.rateLimited.Inc()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(p)
}

// Instrument records count and latency of next under the given route name.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.inflight.Inc()
		defer m.inflight.Dec()

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}

		m.reqTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.reqDur.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
