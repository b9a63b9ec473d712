package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/egg-symmetry/internal/symmetry"
)

// parseDims reads ROWS and COLS. Values are parsed as numbers first so that
// "2.5" is reported as a type mismatch rather than a syntax error.
func parseDims(args []string) (int, int, error) {
	dims := make([]int, 2)
	for i, name := range []string{"rows", "cols"} {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %s is %q", symmetry.ErrTypeMismatch, name, args[i])
		}
		if dims[i], err = symmetry.CheckInteger(name, v); err != nil {
			return 0, 0, err
		}
	}
	if err := symmetry.CheckDimensions(dims[0], dims[1]); err != nil {
		return 0, 0, err
	}
	return dims[0], dims[1], nil
}

func printDistribution(w io.Writer, d symmetry.Distribution) {
	fmt.Fprintf(w, "[%s]\n", strings.Join(d.Strings(), ", "))
}

func newCountCmd(a *app) *cobra.Command {
	var info, asJSON bool

	cmd := &cobra.Command{
		Use:   "count ROWS COLS",
		Short: "Print the number of symmetric layouts for each egg count",
		Long: `Print the number of symmetric layouts for each egg count.

ROWS and COLS must be positive integers and the grid may hold at most
32768 cells. Put -- before the values to pass a negative number, which
is otherwise read as a flag.`,
		Example: "  egg-symmetry count 3 5\n  egg-symmetry count -- 3 -2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := parseDims(args)
			if err != nil {
				return err
			}
			algo, err := symmetry.ParseAlgorithm(a.cfg.Algorithm)
			if err != nil {
				return err
			}

			dist, err := symmetry.GetSymmetries(rows, cols,
				symmetry.WithAlgorithm(algo),
				symmetry.WithInfo(info),
				symmetry.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				p := symmetry.Decompose(rows, cols)
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"partition":        p,
					"total_symmetries": dist.Sum().String(),
					"distribution":     dist.Strings(),
				})
			}
			printDistribution(out, dist)
			return nil
		},
	}
	cmd.Flags().BoolVar(&info, "info", false, "log the quadrant breakdown and totals")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print partition and distribution as JSON")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var a1, a2 string

	cmd := &cobra.Command{
		Use:   "compare ROWS COLS",
		Short: "Count with two algorithms and check that they agree",
		Example: "  egg-symmetry compare 6 6 --a2 bruteforce\n  egg-symmetry compare -- -1 4",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := parseDims(args)
			if err != nil {
				return err
			}
			first, err := symmetry.ParseAlgorithm(a1)
			if err != nil {
				return err
			}
			second, err := symmetry.ParseAlgorithm(a2)
			if err != nil {
				return err
			}

			d1, d2, err := symmetry.Compare(rows, cols, first, second)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ", first)
			printDistribution(out, d1)
			fmt.Fprintf(out, "%s: ", second)
			printDistribution(out, d2)

			if !d1.Equal(d2) {
				return &symmetry.MismatchError{Rows: rows, Cols: cols, A1: first, A2: second, D1: d1, D2: d2}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&a1, "a1", string(symmetry.AlgorithmOptimized), "first algorithm")
	cmd.Flags().StringVar(&a2, "a2", string(symmetry.AlgorithmBruteForce), "second algorithm")
	return cmd
}
