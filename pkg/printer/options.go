package printer

import "github.com/go-kit/log"

// metricsRecorder is the subset of pkg/pmetrics.Collector the printer core
// touches. Kept as a small local interface so the core never imports
// Prometheus directly — pkg/pmetrics is the only package that does.
type metricsRecorder interface {
	ObservePrintDuration(seconds float64)
	IncRewinds()
	IncMeasurement(fits bool)
	ObserveLines(n int)
}

// Option configures an individual Print call.
type Option func(*evalOptions)

type evalOptions struct {
	logger     log.Logger
	metrics    metricsRecorder
	sourceText string
}

// WithLogger attaches a go-kit logger used to trace deferred conditions,
// rewinds, and overflow decisions at debug level, and fatal errors at
// error level. A nil logger (the default) is a no-op.
func WithLogger(l log.Logger) Option {
	return func(o *evalOptions) { o.logger = l }
}

// WithMetrics attaches a Prometheus-backed recorder (see pkg/pmetrics) that
// observes print duration, rewind counts, and measurement fit/overflow
// counts for this invocation.
func WithMetrics(m metricsRecorder) Option {
	return func(o *evalOptions) { o.metrics = m }
}

// WithSourceText supplies the original source text consulted by the
// "auto" NewLineKind to infer CRLF vs LF. Ignored for any other
// NewLineKind.
func WithSourceText(text string) Option {
	return func(o *evalOptions) { o.sourceText = text }
}
