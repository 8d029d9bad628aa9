package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the accident pipeline.
type Metrics struct {
	YearsLoaded      prometheus.Counter
	YearLoadFailures prometheus.Counter
	RecordsLoaded    prometheus.Counter
	LoadDuration     prometheus.Histogram

	// Parsed-table cache lookups.
	TableCache *prometheus.CounterVec // labels: result={hit,miss}

	// State map rendering.
	MapPointsPlotted   prometheus.Gauge
	MapPointsSanitized prometheus.Counter
}

// NewMetrics creates all pipeline metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.YearsLoaded,
		m.YearLoadFailures,
		m.RecordsLoaded,
		m.LoadDuration,
		m.TableCache,
		m.MapPointsPlotted,
		m.MapPointsSanitized,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		YearsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "years_loaded_total",
			Help:      "Year files loaded and reduced successfully.",
		}),
		YearLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "year_load_failures_total",
			Help:      "Years skipped in a batch because they could not be coerced or loaded.",
		}),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "records_loaded_total",
			Help:      "Accident rows parsed from year files.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "load_duration_seconds",
			Help:      "Time to serve one year file load, cache hits included.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		TableCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "table_cache_total",
			Help:      "Parsed table cache lookups by result.",
		}, []string{"result"}),
		MapPointsPlotted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fars",
			Name:      "map_points_plotted",
			Help:      "Points drawn on the most recent state map.",
		}),
		MapPointsSanitized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "map_points_sanitized_total",
			Help:      "Records left off a state map because of sentinel coordinates.",
		}),
	}
}
