package singleton

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the process-wide Prometheus metrics collector.
//
// Prometheus collectors may only be registered once per registry, which is
// why a metrics handle is the textbook case for a singleton: a second
// registration of the same counter panics. GetMetrics hides that constraint
// behind a sync.Once.
//
// Metrics exposed (all namespaced "patterns_"):
//   - vehicles_built_total (counter, label: kind)
//   - payments_total (counter, labels: method, status)
//   - beverage_steps_total (counter, label: step)
//   - beverage_prepare_seconds (histogram)
//
// Expose for scraping with:
//
//	m := singleton.GetMetrics()
//	http.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
type Metrics struct {
	// VehiclesBuilt counts factory products by kind.
	VehiclesBuilt *prometheus.CounterVec

	// Payments counts checkout attempts by method and outcome.
	Payments *prometheus.CounterVec

	// BeverageSteps counts template-method steps by name.
	BeverageSteps *prometheus.CounterVec

	// PrepareDuration observes full beverage preparation times.
	PrepareDuration prometheus.Histogram

	registry *prometheus.Registry
}

var (
	metricsMu   sync.Mutex
	metricsOnce = new(sync.Once)
	metrics     *Metrics
)

// GetMetrics returns the process-wide metrics collector, creating and
// registering it on first use.
//
// Safe for concurrent use: every caller observes the same instance, and
// registration runs exactly once.
func GetMetrics() *Metrics {
	metricsMu.Lock()
	once := metricsOnce
	metricsMu.Unlock()

	once.Do(func() {
		m := newMetrics()
		metricsMu.Lock()
		metrics = m
		metricsMu.Unlock()
	})

	metricsMu.Lock()
	defer metricsMu.Unlock()
	return metrics
}

// ResetMetrics discards the singleton so the next GetMetrics builds a
// fresh registry. Test helper only.
func ResetMetrics() {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	metricsOnce = new(sync.Once)
	metrics = nil
}

// Registry returns the registry holding all of this collector's metrics,
// for wiring up a scrape handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func newMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		VehiclesBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "patterns",
			Name:      "vehicles_built_total",
			Help:      "Vehicles constructed by the factory demos, by kind",
		}, []string{"kind"}),

		Payments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "patterns",
			Name:      "payments_total",
			Help:      "Checkout payment attempts, by method and outcome",
		}, []string{"method", "status"}), // status: accepted, declined

		BeverageSteps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "patterns",
			Name:      "beverage_steps_total",
			Help:      "Template-method steps executed while preparing beverages",
		}, []string{"step"}),

		PrepareDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "patterns",
			Name:      "beverage_prepare_seconds",
			Help:      "Full beverage preparation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		registry: registry,
	}
}
