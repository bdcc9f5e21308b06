package metrics

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Option configures a Collector.
type Option func(*Collector)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(c *Collector) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// WithRegistry sets the registry metrics are registered on and pushed from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Collector) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// Collector holds the run metrics. It implements api.RequestObserver and the
// dataset and snapshot recorders.
type Collector struct {
	namespace string
	registry  *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rows            *prometheus.CounterVec
	skipped         *prometheus.CounterVec
	discovered      prometheus.Gauge
	runDuration     prometheus.Gauge
	lastSuccess     prometheus.Gauge
}

// New creates a Collector on a fresh registry unless WithRegistry is given.
func New(opts ...Option) *Collector {
	c := &Collector{
		namespace: "kalshi_calibration",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	auto := promauto.With(c.registry)

	c.requests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "api_requests_total",
		Help:      "Exchange API requests by endpoint and status code (0 for transport errors)",
	}, []string{"endpoint", "status"})

	c.requestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Exchange API request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	c.rows = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "rows_built_total",
		Help:      "Rows built by price source",
	}, []string{"source"})

	c.skipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "markets_skipped_total",
		Help:      "Markets that produced no row, by stage",
	}, []string{"stage"})

	c.discovered = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Name:      "markets_discovered",
		Help:      "Settled markets selected for the last run",
	})

	c.runDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of the last run",
	})

	c.lastSuccess = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time the last run finished writing its output",
	})

	return c
}

// Registry returns the registry metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveRequest records one HTTP attempt.
func (c *Collector) ObserveRequest(endpoint string, status int, duration time.Duration, err error) {
	label := endpointLabel(endpoint)
	c.requests.WithLabelValues(label, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// RowBuilt counts a row by price source.
func (c *Collector) RowBuilt(source string) {
	c.rows.WithLabelValues(source).Inc()
}

// MarketSkipped counts a dropped market by stage.
func (c *Collector) MarketSkipped(stage string) {
	c.skipped.WithLabelValues(stage).Inc()
}

// MarketsDiscovered sets the number of markets selected for the run.
func (c *Collector) MarketsDiscovered(n int) {
	c.discovered.Set(float64(n))
}

// RunFinished records the run duration and, when ok, the success time.
func (c *Collector) RunFinished(d time.Duration, ok bool) {
	c.runDuration.Set(d.Seconds())
	if ok {
		c.lastSuccess.SetToCurrentTime()
	}
}

// Push sends all metrics to the Pushgateway at url under job.
func (c *Collector) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(c.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}

// endpointLabel replaces ticker path segments so label cardinality stays
// bounded: /markets/X/orderbook becomes /markets/:ticker/orderbook.
func endpointLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return path
	}
	switch parts[0] {
	case "markets":
		if parts[1] == "trades" {
			return path
		}
		parts[1] = ":ticker"
	case "events", "series":
		parts[1] = ":ticker"
	default:
		return path
	}
	return "/" + strings.Join(parts, "/")
}
