// Package montecarlo estimates the percolation threshold p* of an n×n lattice.
//
// Each trial starts from an all-blocked percolation.Model, opens uniformly
// random blocked sites until the lattice percolates, and records the fraction
// of open sites. Over T trials the package reports the sample mean, the sample
// standard deviation and a 95% confidence interval mean ± 1.96·s/√T.
//
// Trials are independent and run on a bounded worker pool (errgroup with a
// limit). Trial i draws from its own rand.Rand seeded with Seed+i, so the
// result depends only on (n, T, Seed), never on scheduling.
//
// Options:
//
//   - WithWorkers(w): maximum concurrent trials (default GOMAXPROCS).
//   - WithSeed(s):    base seed (default 1).
//   - WithOnTrial(fn): callback after each completed trial.
//
// Errors:
//
//   - ErrInvalidTrials: T ≤ 0.
//   - ErrOptionViolation: an invalid option value.
//   - percolation.ErrInvalidSize: n ≤ 0.
//   - ctx.Err(): the context was cancelled before all trials finished.
package montecarlo
