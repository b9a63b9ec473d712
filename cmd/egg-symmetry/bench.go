package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ironsheep/egg-symmetry/internal/logging"
	"github.com/ironsheep/egg-symmetry/internal/symmetry"
)

func newBenchCmd(a *app) *cobra.Command {
	var maxRows, maxCols int
	var result bool

	cmd := &cobra.Command{
		Use:   "bench [ROWS COLS]",
		Short: "Time the counter on one grid or on a range of grids",
		Args: func(cmd *cobra.Command, args []string) error {
			if maxRows > 0 {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := symmetry.ParseAlgorithm(a.cfg.Algorithm)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			report := func(t symmetry.Timing) {
				a.log.Debug("timed",
					logging.Int("rows", t.Rows),
					logging.Int("cols", t.Cols),
					logging.String("algorithm", string(t.Algorithm)),
					logging.Duration("elapsed", t.Elapsed),
				)
				fmt.Fprintf(out, "%d %d took %.3f seconds\n", t.Rows, t.Cols, t.Elapsed.Seconds())
			}

			if maxRows > 0 {
				return symmetry.BenchmarkRange(maxRows, maxCols, algo, report)
			}

			rows, cols, err := parseDims(args)
			if err != nil {
				return err
			}
			t, err := symmetry.Benchmark(rows, cols, algo)
			if err != nil {
				return err
			}
			if result {
				printDistribution(out, t.Result)
			}
			report(t)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxRows, "range", 0, "time every grid with rows below N and cols from rows up to --max-cols")
	cmd.Flags().IntVar(&maxCols, "max-cols", 0, "upper bound (exclusive) on cols for --range; defaults to --range")
	cmd.Flags().BoolVar(&result, "result", false, "also print the distribution")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var maxDim, workers int
	var a1, a2 string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check two algorithms on every grid up to --max x --max",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := symmetry.ParseAlgorithm(a1)
			if err != nil {
				return err
			}
			second, err := symmetry.ParseAlgorithm(a2)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			n, err := symmetry.VerifyRange(ctx, maxDim, first, second, workers)
			if err != nil {
				if ctx.Err() == context.Canceled {
					a.log.Warn("verification interrupted")
				}
				return err
			}
			a.log.Info("verified",
				logging.Int("grids", n),
				logging.String("a1", string(first)),
				logging.String("a2", string(second)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%d grids agree\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDim, "max", 6, "largest rows and cols to check")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "grids checked in parallel")
	cmd.Flags().StringVar(&a1, "a1", string(symmetry.AlgorithmOptimized), "first algorithm")
	cmd.Flags().StringVar(&a2, "a2", string(symmetry.AlgorithmBruteForce), "second algorithm")
	return cmd
}
