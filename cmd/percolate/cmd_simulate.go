package main

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/render"
)

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	log := logger.With(zap.String("run_id", uuid.NewString()), zap.Int("size", cfg.Size))

	m, err := percolation.New(cfg.Size, percolation.WithOnOpen(func(e percolation.OpenEvent) {
		log.Debug("site opened",
			zap.Int("row", e.Row),
			zap.Int("col", e.Col),
			zap.Bool("full", e.Full),
			zap.Int("open_sites", e.OpenSites))
		if e.Percolates {
			log.Debug("lattice percolates", zap.Int("open_sites", e.OpenSites))
		}
	}))
	if err != nil {
		return err
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	for !m.Percolates() {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, ok, err := m.OpenRandom(r)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	threshold := float64(m.OpenSiteCount()) / float64(m.TotalSites())
	log.Info("simulation finished",
		zap.Int64("seed", cfg.Seed),
		zap.Int("open_sites", m.OpenSiteCount()),
		zap.Float64("threshold", threshold))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Frame(m.Snapshot(), styles(), nil))
	fmt.Fprintf(out, "threshold %.4f\n", threshold)

	return nil
}
