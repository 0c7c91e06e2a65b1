package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "asciidag"

// PrometheusHooks implements every hook interface by recording Prometheus
// metrics.
type PrometheusHooks struct {
	loads          *prometheus.CounterVec
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	graphNodes     prometheus.Histogram
	cacheEvents    *prometheus.CounterVec
	cacheBytes     prometheus.Counter
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPrometheusHooks creates the metrics and registers them with reg.
// It panics if a metric with the same name is already registered.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	f := promauto.With(reg)
	return &PrometheusHooks{
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_loads_total",
			Help:      "Graph definitions loaded, by outcome.",
		}, []string{"outcome"}),
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render calls, by output format and outcome.",
		}, []string{"format", "outcome"}),
		renderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one output format.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"format"}),
		graphNodes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Node count of rendered graphs.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		cacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Cache lookups and writes, by format and event.",
		}, []string{"format", "event"}),
		cacheBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the artifact cache.",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP responses, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		requestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (h *PrometheusHooks) OnLoadStart(context.Context, string) {}

func (h *PrometheusHooks) OnLoadComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.loads.WithLabelValues(outcome(err)).Inc()
}

func (h *PrometheusHooks) OnRenderStart(_ context.Context, _ string, nodeCount int) {
	h.graphNodes.Observe(float64(nodeCount))
}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	h.renders.WithLabelValues(format, outcome(err)).Inc()
	h.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, format string) {
	h.cacheEvents.WithLabelValues(format, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, format string) {
	h.cacheEvents.WithLabelValues(format, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.cacheEvents.WithLabelValues(format, "set").Inc()
	h.cacheBytes.Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.requestLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
	_ HTTPHooks     = (*PrometheusHooks)(nil)
)
