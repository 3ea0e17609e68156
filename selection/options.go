// File: options.go
// Role: Functional options shared by both policies. Invalid combinations
//       are recorded and surfaced as ErrOptionViolation at construction.

package selection

import (
	"log/slog"

	"github.com/netknit/netknit/record"
)

// defaultSeed keeps the Stochastic policy deterministic unless WithSeed is
// supplied.
const defaultSeed uint64 = 1

// Option configures policy construction via functional arguments. Options
// that only make sense for one policy are rejected by the other's
// constructor with ErrOptionViolation.
type Option func(*policyOptions)

// policyOptions holds the folded option state for a constructor.
type policyOptions struct {
	limits    Limits
	sink      record.Sink
	log       *slog.Logger
	seed      uint64
	seedSet   bool
	weightKey string
	keySet    bool
	step      StepFunc
	stepSet   bool
}

// defaultOptions returns the option state both constructors start from:
// DefaultLimits, a counting Discard sink, a silent logger, seed 1.
func defaultOptions() policyOptions {
	return policyOptions{
		limits: DefaultLimits(),
		sink:   record.NewDiscard(),
		log:    slog.New(slog.DiscardHandler),
		seed:   defaultSeed,
	}
}

// WithLimits replaces the tunables block. Negative values surface as
// ErrLimitViolation from the constructor.
func WithLimits(l Limits) Option {
	return func(o *policyOptions) {
		o.limits = l
	}
}

// WithSink directs recorded solutions to s. A nil sink keeps the default.
func WithSink(s record.Sink) Option {
	return func(o *policyOptions) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithLogger enables debug logging of selection decisions. A nil logger
// keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *policyOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSeed fixes the Stochastic policy's random stream. Exhaustive
// constructors reject it.
func WithSeed(seed uint64) Option {
	return func(o *policyOptions) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithWeightKey names the section attribute holding selection weights for
// the Stochastic policy. The empty key means uniform weights. Exhaustive
// constructors reject it.
func WithWeightKey(key string) Option {
	return func(o *policyOptions) {
		o.weightKey = key
		o.keySet = true
	}
}

// WithStepFunc installs a growth cutoff consulted by the Stochastic
// policy's Step hook. A nil func keeps the default (always continue).
// Exhaustive constructors reject it.
func WithStepFunc(fn StepFunc) Option {
	return func(o *policyOptions) {
		if fn != nil {
			o.step = fn
			o.stepSet = true
		}
	}
}
