package montecarlo

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidTrials indicates a non-positive trial count.
	ErrInvalidTrials = errors.New("montecarlo: trials must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")
)

// confidence95 is the z-score of a two-sided 95% interval.
const confidence95 = 1.96

// Option configures Run.
type Option func(*Options)

// Options holds tunables for Run.
type Options struct {
	// Workers bounds the number of trials running at once.
	Workers int

	// Seed is the base seed; trial i uses Seed+i.
	Seed int64

	// OnTrial, if non-nil, is called after each trial with its index and
	// threshold. Calls may arrive concurrently and out of order.
	OnTrial func(trial int, threshold float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Workers=GOMAXPROCS, Seed=1 and no hook.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Seed:    1,
		OnTrial: nil,
	}
}

// WithWorkers bounds concurrency. w ≤ 0 → ErrOptionViolation.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOnTrial installs a per-trial callback.
func WithOnTrial(fn func(trial int, threshold float64)) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}

// Result summarises a threshold experiment.
type Result struct {
	Side   int
	Trials int

	// Thresholds[i] is the open fraction at which trial i first percolated.
	Thresholds []float64

	Mean   float64
	StdDev float64 // NaN when Trials == 1

	ConfidenceLow  float64 // NaN when Trials == 1
	ConfidenceHigh float64 // NaN when Trials == 1
}
