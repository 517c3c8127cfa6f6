// Command percolate drives percolation models from the terminal.
//
//	percolate simulate --size 20 --seed 7
//	percolate stats --size 200 --trials 100
//	percolate play --size 8
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/render"
)

var (
	// Global flags
	configPath string
	verbose    bool
	logFormat  string
	noColor    bool

	// Command flags, applied over the config file when set.
	flagSize    int
	flagSeed    int64
	flagTrials  int
	flagWorkers int

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "percolate",
	Short: "Site percolation on an n×n lattice",
	Long: `percolate opens sites of an n×n lattice and tracks which open sites are
connected to the top row (full) and whether the top row reaches the bottom
row (percolates).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if err := applyFlags(cmd); err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.Int("size", cfg.Size),
			zap.Int64("seed", cfg.Seed))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// simulateCmd opens random sites until the lattice percolates.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Open random sites until the lattice percolates",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

// statsCmd estimates the percolation threshold.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Estimate the percolation threshold by Monte Carlo simulation",
	Long: `Runs independent trials; each opens random sites on a fresh lattice until
it percolates and records the open fraction. Prints the sample mean, the
sample standard deviation and a 95% confidence interval.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

// playCmd starts the interactive controller.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open sites interactively",
	Long: `Move the cursor with the arrow keys or h/j/k/l, open the site under the
cursor with space or enter, quit with q.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "percolate.yaml", "path to YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&logFormat, "log-format", "", "log encoding: json or console")
	pf.BoolVar(&noColor, "no-color", false, "disable coloured output")

	for _, c := range []*cobra.Command{simulateCmd, statsCmd, playCmd} {
		c.Flags().IntVarP(&flagSize, "size", "n", 0, "lattice side length")
	}
	for _, c := range []*cobra.Command{simulateCmd, statsCmd} {
		c.Flags().Int64Var(&flagSeed, "seed", 0, "random seed")
	}
	statsCmd.Flags().IntVarP(&flagTrials, "trials", "t", 0, "number of trials")
	statsCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "concurrent trials (0 = GOMAXPROCS)")

	rootCmd.AddCommand(simulateCmd, statsCmd, playCmd)
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = flagSize
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("trials") {
		cfg.Stats.Trials = flagTrials
	}
	if flags.Changed("workers") {
		cfg.Stats.Workers = flagWorkers
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if noColor {
		cfg.Render.Color = false
	}

	return cfg.Validate()
}

// newLogger builds a zap logger from lc; verbose forces debug level.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// styles picks the render palette for the current config.
func styles() render.Styles {
	if cfg.Render.Color {
		return render.DefaultStyles()
	}
	return render.PlainStyles()
}

// commandContext returns cmd's context, or Background when run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
