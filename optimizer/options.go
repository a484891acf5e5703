package optimizer

import "log"

// Option customizes a FitCurve call. As a rule, option constructors
// never panic and ignore nil inputs.
type Option func(o *fitOptions)

// fitOptions holds the configurable extras of a FitCurve call beyond
// the samples and config.FitConfig: currently just the diagnostics sink.
type fitOptions struct {
	warn func(string)
}

// newFitOptions returns fitOptions whose default warning sink writes
// each line to stderr via the standard log package, then applies each
// opt in order; later options override earlier ones.
func newFitOptions(opts ...Option) *fitOptions {
	o := &fitOptions{warn: func(msg string) { log.Printf("optimizer: %s", msg) }}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithWarningFunc injects the single textual warning channel: it is
// called with a human-readable line when the ε-fallback activates, and
// when a backtrack step cannot find its cached segment. If fn is nil,
// this option is a no-op.
func WithWarningFunc(fn func(string)) Option {
	return func(o *fitOptions) {
		if fn != nil {
			o.warn = fn
		}
	}
}
