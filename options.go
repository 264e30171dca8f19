package desbordante

import (
	"log/slog"

	"github.com/BUYT-1/Desbordante/resource"
)

type options struct {
	equalNulls       bool
	maxLhs           int
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

// Option configures a Miner or Verifier constructor.
type Option func(*options)

// WithEqualNulls sets the equal_nulls policy: if true, two null cells
// agree; if false, a null cell never agrees with anything, including
// another null.
func WithEqualNulls(equalNulls bool) Option {
	return func(o *options) {
		o.equalNulls = equalNulls
	}
}

// WithMaxLHS caps the LHS size of emitted FDs during mining. A value <= 0
// means unbounded (the spec.md default).
func WithMaxLHS(maxLhs int) Option {
	return func(o *options) {
		o.maxLhs = maxLhs
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// mining/verification operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations. Pass nil to
// disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets
// it. Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController attaches a resource.Controller-backed budget
// for background concurrency across multiple independent Execute calls
// (see resource.Controller).
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.resources = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxLhs:           0,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
