package montecarlo

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/percolation"
)

// Run performs trials independent experiments on n×n lattices and
// summarises their percolation thresholds.
func Run(ctx context.Context, n, trials int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if trials <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	if n <= 0 {
		return Result{}, fmt.Errorf("montecarlo: %w: got %d", percolation.ErrInvalidSize, n)
	}

	thresholds := make([]float64, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < trials; i++ {
		i := i
		g.Go(func() error {
			p, err := Trial(gctx, n, rand.New(rand.NewSource(o.Seed+int64(i))))
			if err != nil {
				return fmt.Errorf("montecarlo: trial %d: %w", i, err)
			}
			// each goroutine owns its slot
			thresholds[i] = p
			if o.OnTrial != nil {
				o.OnTrial(i, p)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return summarise(n, thresholds), nil
}

// Trial opens random sites of a fresh n×n model until it percolates and
// returns the open fraction. ctx is polled once per opened row's worth of sites.
func Trial(ctx context.Context, n int, r *rand.Rand) (float64, error) {
	m, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for step := 0; !m.Percolates(); step++ {
		if step%n == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		_, _, ok, err := m.OpenRandom(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			// A fully open lattice always percolates.
			break
		}
	}

	return float64(m.OpenSiteCount()) / float64(m.TotalSites()), nil
}

// summarise computes sample statistics over thresholds.
func summarise(n int, thresholds []float64) Result {
	t := float64(len(thresholds))
	var sum float64
	for _, x := range thresholds {
		sum += x
	}
	mean := sum / t

	res := Result{
		Side:           n,
		Trials:         len(thresholds),
		Thresholds:     thresholds,
		Mean:           mean,
		StdDev:         math.NaN(),
		ConfidenceLow:  math.NaN(),
		ConfidenceHigh: math.NaN(),
	}
	if len(thresholds) < 2 {
		return res
	}

	var sq float64
	for _, x := range thresholds {
		sq += (x - mean) * (x - mean)
	}
	res.StdDev = math.Sqrt(sq / (t - 1))
	half := confidence95 * res.StdDev / math.Sqrt(t)
	res.ConfidenceLow = mean - half
	res.ConfidenceHigh = mean + half

	return res
}
