package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements every hook interface with Prometheus collectors kept
// on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	rendersTotal    *prometheus.CounterVec
	renderErrors    *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	renderBytes     *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	cacheWrites     *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them, along with the Go
// runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_renders_total",
				Help: "Number of completed renders by kind and format.",
			},
			[]string{"kind", "format"},
		),
		renderErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_render_errors_total",
				Help: "Number of failed renders by kind and format.",
			},
			[]string{"kind", "format"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_render_duration_seconds",
				Help:    "Time taken to render an artifact.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind", "format"},
		),
		renderBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_render_bytes_total",
				Help: "Bytes of rendered output by kind and format.",
			},
			[]string{"kind", "format"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_cache_lookups_total",
				Help: "Cache lookups by key type and result.",
			},
			[]string{"key_type", "result"},
		),
		cacheWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_cache_writes_total",
				Help: "Cache writes by key type.",
			},
			[]string{"key_type"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_http_requests_total",
				Help: "Preview server requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_http_request_duration_seconds",
				Help:    "Time taken to serve a preview request.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.rendersTotal,
		m.renderErrors,
		m.renderDuration,
		m.renderBytes,
		m.cacheLookups,
		m.cacheWrites,
		m.requestsTotal,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) OnRenderStart(context.Context, string, string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, kind, format string, size int, d time.Duration, err error) {
	m.renderDuration.WithLabelValues(kind, format).Observe(d.Seconds())
	if err != nil {
		m.renderErrors.WithLabelValues(kind, format).Inc()
		return
	}
	m.rendersTotal.WithLabelValues(kind, format).Inc()
	m.renderBytes.WithLabelValues(kind, format).Add(float64(size))
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheLookups.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheLookups.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, _ int) {
	m.cacheWrites.WithLabelValues(keyType).Inc()
}

func (m *Metrics) OnRequestServed(_ context.Context, method, route string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ RenderHooks = (*Metrics)(nil)
	_ CacheHooks  = (*Metrics)(nil)
	_ HTTPHooks   = (*Metrics)(nil)
)
