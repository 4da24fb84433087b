package genalloc

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	freeListCapacity int
	strictRetire     bool
}

// Option configures allocator construction.
type Option func(*options)

// WithLogger sets the logger used for per-operation debug logging.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector invoked after each
// operation. If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithFreeListCapacity pre-allocates capacity for the retired-index free
// list. Useful when the expected churn (live handles retired per frame or
// per tick) is known up front, to avoid append growth in steady state.
func WithFreeListCapacity(n int) Option {
	return func(o *options) {
		o.freeListCapacity = n
	}
}

// WithStrictRetire toggles retire validation.
//
// When enabled, the allocator tracks the live generation of every issued
// slot and Retire rejects double retirement and foreign indices with typed
// errors (ErrNotLive, ErrStaleGeneration) instead of silently making the
// pair reusable. This is stricter than the default contract; it costs one
// membership update per operation and additional memory proportional to the
// number of live handles.
func WithStrictRetire(strict bool) Option {
	return func(o *options) {
		o.strictRetire = strict
	}
}
