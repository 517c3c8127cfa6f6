package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolate/montecarlo"
)

func runStats(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.String("run_id", uuid.NewString()))
	opts := []montecarlo.Option{
		montecarlo.WithSeed(cfg.Seed),
		montecarlo.WithOnTrial(func(trial int, threshold float64) {
			log.Debug("trial finished", zap.Int("trial", trial), zap.Float64("threshold", threshold))
		}),
	}
	if cfg.Stats.Workers > 0 {
		opts = append(opts, montecarlo.WithWorkers(cfg.Stats.Workers))
	}

	log.Info("estimating threshold",
		zap.Int("size", cfg.Size),
		zap.Int("trials", cfg.Stats.Trials),
		zap.Int("workers", cfg.Stats.Workers),
		zap.Int64("seed", cfg.Seed))
	start := time.Now()
	res, err := montecarlo.Run(commandContext(cmd), cfg.Size, cfg.Stats.Trials, opts...)
	if err != nil {
		log.Error("estimation failed", zap.Error(err))
		return err
	}
	log.Info("estimation finished",
		zap.Float64("mean", res.Mean),
		zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mean                    = %.6f\n", res.Mean)
	fmt.Fprintf(out, "stddev                  = %.6f\n", res.StdDev)
	fmt.Fprintf(out, "95%% confidence interval = [%.6f, %.6f]\n", res.ConfidenceLow, res.ConfidenceHigh)

	return nil
}
