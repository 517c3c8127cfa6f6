package montecarlo_test

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/katalvlaran/percolate/percolation"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestRun_InvalidInput covers trial count, side length and option validation.
func TestRun_InvalidInput(t *testing.T) {
	ctx := context.Background()

	_, err := montecarlo.Run(ctx, 5, 0)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidTrials)

	_, err = montecarlo.Run(ctx, 0, 3)
	assert.ErrorIs(t, err, percolation.ErrInvalidSize)

	_, err = montecarlo.Run(ctx, 5, 3, montecarlo.WithWorkers(0))
	assert.ErrorIs(t, err, montecarlo.ErrOptionViolation)
}

// TestRun_Deterministic verifies results depend on the seed, not on scheduling.
func TestRun_Deterministic(t *testing.T) {
	ctx := context.Background()
	serial, err := montecarlo.Run(ctx, 10, 24, montecarlo.WithSeed(7), montecarlo.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := montecarlo.Run(ctx, 10, 24, montecarlo.WithSeed(7), montecarlo.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, serial.Thresholds, parallel.Thresholds)
	assert.Equal(t, serial.Mean, parallel.Mean)

	other, err := montecarlo.Run(ctx, 10, 24, montecarlo.WithSeed(1000))
	require.NoError(t, err)
	assert.NotEqual(t, serial.Thresholds, other.Thresholds)
}

// TestRun_Statistics checks the summary is consistent with the raw thresholds
// and lands near the known 2D site threshold (≈0.593).
func TestRun_Statistics(t *testing.T) {
	res, err := montecarlo.Run(context.Background(), 20, 200, montecarlo.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, res.Thresholds, 200)
	assert.Equal(t, 20, res.Side)
	assert.Equal(t, 200, res.Trials)

	var sum float64
	for _, p := range res.Thresholds {
		require.Greater(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, sum/200, res.Mean, 1e-12)
	assert.InDelta(t, 0.593, res.Mean, 0.05)
	assert.Greater(t, res.StdDev, 0.0)
	assert.Less(t, res.ConfidenceLow, res.Mean)
	assert.Greater(t, res.ConfidenceHigh, res.Mean)
	assert.InDelta(t, 2*1.96*res.StdDev/math.Sqrt(200), res.ConfidenceHigh-res.ConfidenceLow, 1e-12)
}

// TestRun_SingleTrial verifies the spread statistics are undefined for T=1.
func TestRun_SingleTrial(t *testing.T) {
	res, err := montecarlo.Run(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Mean)
	assert.True(t, math.IsNaN(res.StdDev))
	assert.True(t, math.IsNaN(res.ConfidenceLow))
	assert.True(t, math.IsNaN(res.ConfidenceHigh))
}

// TestRun_OnTrial verifies the hook sees every trial exactly once.
func TestRun_OnTrial(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = make(map[int]float64)
	)
	res, err := montecarlo.Run(context.Background(), 6, 30, montecarlo.WithWorkers(4),
		montecarlo.WithOnTrial(func(i int, p float64) {
			mu.Lock()
			seen[i] = p
			mu.Unlock()
		}))
	require.NoError(t, err)
	require.Len(t, seen, 30)
	for i, p := range res.Thresholds {
		assert.Equal(t, p, seen[i])
	}
}

// TestRun_Cancelled verifies a cancelled context aborts the run.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := montecarlo.Run(ctx, 50, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestTrial_MatchesModel replays a trial by hand with the same seed.
func TestTrial_MatchesModel(t *testing.T) {
	const n = 8
	got, err := montecarlo.Trial(context.Background(), n, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	m, err := percolation.New(n)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(5))
	for !m.Percolates() {
		_, _, _, err := m.OpenRandom(r)
		require.NoError(t, err)
	}
	assert.Equal(t, float64(m.OpenSiteCount())/float64(n*n), got)
}
