// Package pmetrics wires the printer's runtime behavior into Prometheus.
// A Collector takes a prometheus.Registerer at construction time and
// registers its own metrics against it.
package pmetrics

import "github.com/prometheus/client_golang/prometheus"

// Collector records printer runtime metrics. It satisfies the
// printer.metricsRecorder interface structurally, so pkg/printer never
// imports Prometheus directly.
type Collector struct {
	printDuration prometheus.Histogram
	rewinds       prometheus.Counter
	measurements  *prometheus.CounterVec
	lines         prometheus.Counter
}

// New constructs a Collector and registers its metrics against reg. Passing
// a nil Registerer is valid and simply skips registration, which is
// convenient for tests that don't care about scraping.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		printDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "irprint_print_duration_seconds",
			Help:    "Time spent in a single Print call.",
			Buckets: prometheus.DefBuckets,
		}),
		rewinds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "irprint_rewinds_total",
			Help: "Number of deferred conditions that flipped to true and were rewound.",
		}),
		measurements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "irprint_measurements_total",
			Help: "Newline-group fit measurements, partitioned by outcome.",
		}, []string{"outcome"}),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "irprint_lines_total",
			Help: "Total number of output lines produced across all prints.",
		}),
	}
	c.measurements.WithLabelValues("fit")
	c.measurements.WithLabelValues("overflow")

	if reg != nil {
		reg.MustRegister(c.printDuration, c.rewinds, c.measurements, c.lines)
	}

	return c
}

// ObservePrintDuration records the wall-clock duration of one Print call.
func (c *Collector) ObservePrintDuration(seconds float64) {
	c.printDuration.Observe(seconds)
}

// IncRewinds increments the rewind counter by one.
func (c *Collector) IncRewinds() {
	c.rewinds.Inc()
}

// IncMeasurement records one newline-group fit measurement's outcome.
func (c *Collector) IncMeasurement(fits bool) {
	if fits {
		c.measurements.WithLabelValues("fit").Inc()
	} else {
		c.measurements.WithLabelValues("overflow").Inc()
	}
}

// ObserveLines adds n to the total line count.
func (c *Collector) ObserveLines(n int) {
	c.lines.Add(float64(n))
}
