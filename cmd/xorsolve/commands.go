// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/xorsolve/builder"
	"github.com/katalvlaran/xorsolve/minweight"
	"github.com/katalvlaran/xorsolve/parse"
	"github.com/katalvlaran/xorsolve/toggle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("prefix", "main")

var (
	configPath      string
	logLevel        string
	workers         int
	exhaustiveLimit int
	strategyName    string
	metricsTextfile string
	verbose         bool

	genCount    int
	genBits     int
	genOps      int
	genSeed     int64
	genDensity  float64
	genFree     int
	genSolvable bool

	cfg Config
)

// newRootCmd builds the command tree. Binding the flags resets every flag
// variable to its default, so each tree starts from a clean state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "xorsolve",
		Short:         "Minimum toggle-operation solver over GF(2)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve every instance in file (stdin when omitted) and print the total",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Print random instances in the input format",
		Args:  cobra.NoArgs,
		RunE:  runGen,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.IntVar(&workers, "workers", 0, "instances solved concurrently")
	pf.IntVar(&exhaustiveLimit, "exhaustive-limit", -1, "largest free-variable count searched exhaustively")
	pf.StringVar(&strategyName, "strategy", "", "search strategy (auto, exhaustive, meet_in_the_middle)")
	pf.StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file")

	solveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each instance's weight and selection")

	gf := genCmd.Flags()
	gf.IntVar(&genCount, "count", 10, "number of instances")
	gf.IntVar(&genBits, "bits", 8, "target bits per instance")
	gf.IntVar(&genOps, "ops", 8, "operations per instance")
	gf.Int64Var(&genSeed, "seed", 1, "RNG seed")
	gf.Float64Var(&genDensity, "density", 0.3, "probability an operation flips a bit")
	gf.IntVar(&genFree, "dependent", 0, "extra operations built from earlier ones")
	gf.BoolVar(&genSolvable, "solvable", true, "make every target reachable")

	rootCmd.AddCommand(solveCmd, genCmd)
	return rootCmd
}

// setup loads the config file, applies flag overrides and configures logging.
func setup(cmd *cobra.Command) error {
	c, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if flags.Changed("workers") {
		c.Batch.Workers = workers
	}
	if flags.Changed("exhaustive-limit") {
		c.Search.ExhaustiveLimit = exhaustiveLimit
	}
	if flags.Changed("strategy") {
		c.Search.Strategy = strategyName
	}
	if flags.Changed("metrics-textfile") {
		c.Metrics.Textfile = metricsTextfile
	}
	if err := c.Validate(); err != nil {
		return err
	}

	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	if c.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(cmd.ErrOrStderr())

	cfg = c
	return nil
}

// newSolver builds a Solver from cfg, registering metrics on reg.
func newSolver(c Config, reg prometheus.Registerer) (*toggle.Solver, error) {
	strategy, err := minweight.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return nil, err
	}
	return toggle.NewSolver(
		toggle.WithWorkers(c.Batch.Workers),
		toggle.WithMetrics(toggle.NewMetrics(reg)),
		toggle.WithLogger(log.WithField("component", "solver")),
		toggle.WithSearchOptions(
			minweight.WithExhaustiveLimit(c.Search.ExhaustiveLimit),
			minweight.WithStrategy(strategy),
		),
	), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	instances, err := parse.Parse(in)
	if err != nil {
		return err
	}
	log.WithField("instances", len(instances)).Info("input parsed")

	reg := prometheus.NewRegistry()
	solver, err := newSolver(cfg, reg)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	if verbose {
		results, err := solver.SolveAll(cmd.Context(), instances)
		if err != nil {
			return err
		}
		total := 0
		for i, r := range results {
			if !r.Feasible {
				fmt.Fprintf(out, "%d\tinfeasible\n", i)
				return fmt.Errorf("instance %d: %w", i, toggle.ErrInfeasibleInstance)
			}
			fmt.Fprintf(out, "%d\t%d\t%v\t%s\n", i, r.Weight, r.Selection, r.Strategy)
			total += r.Weight
		}
		fmt.Fprintln(out, total)
		return writeMetrics(reg)
	}

	total, err := solver.Total(cmd.Context(), instances)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, total)
	return writeMetrics(reg)
}

func writeMetrics(reg *prometheus.Registry) error {
	if cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	log.WithField("path", cfg.Metrics.Textfile).Debug("metrics written")
	return nil
}

func runGen(cmd *cobra.Command, _ []string) error {
	if genFree < 0 {
		return fmt.Errorf("--dependent=%d must be >= 0", genFree)
	}
	opts := []builder.Option{
		builder.WithSeed(genSeed),
		builder.WithDensity(genDensity),
		builder.WithDependentOps(genFree),
	}
	if genSolvable {
		opts = append(opts, builder.WithFeasible())
	}
	batch, err := builder.RandomBatch(genCount, genBits, genOps, opts...)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	for _, inst := range batch {
		fmt.Fprintln(out, parse.Format(inst))
	}
	return nil
}
