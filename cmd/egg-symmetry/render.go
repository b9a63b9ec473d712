package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ironsheep/egg-symmetry/internal/grid"
	"github.com/ironsheep/egg-symmetry/internal/imaging"
	"github.com/ironsheep/egg-symmetry/internal/logging"
)

func newRenderCmd(a *app) *cobra.Command {
	var cells []int
	var on, limit int
	var out string

	cmd := &cobra.Command{
		Use:   "render ROWS COLS",
		Short: "Draw a layout, or every symmetric layout with --on eggs, to image files",
		Long: `Draw a layout to an image file. Eggs are discs, empty cells are crosses.

Give the layout row-major with --cells (1 = egg, 0 = cross, 2 = blank), or
pass --on K to render the symmetric layouts with exactly K eggs as BASE-1,
BASE-2 and so on.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := parseDims(args)
			if err != nil {
				return err
			}
			hasCells := cmd.Flags().Changed("cells")
			hasOn := cmd.Flags().Changed("on")
			if hasCells == hasOn {
				return fmt.Errorf("exactly one of --cells or --on is required")
			}
			format, err := imaging.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("eggs-%dx%d", rows, cols)
			}
			base := out
			if !filepath.IsAbs(base) {
				base = filepath.Join(a.cfg.OutputDir, base)
			}
			opts := imaging.SaveOptions{
				Format:   format,
				CellSize: a.cfg.CellSize,
				Palette:  a.cfg.Palette(),
			}

			save := func(l grid.Layout, name string) error {
				opts.BaseName = name
				res, err := imaging.SaveLayout(l, opts)
				if err != nil {
					return err
				}
				a.log.Info("layout saved",
					logging.String("path", res.Path),
					logging.Int("width", res.Width),
					logging.Int("height", res.Height),
				)
				fmt.Fprintln(cmd.OutOrStdout(), res.Path)
				return nil
			}

			if hasCells {
				l, err := grid.FromInts(rows, cols, cells)
				if err != nil {
					return err
				}
				if !l.IsSymmetric() {
					a.log.Warn("layout is not symmetric", logging.String("grid", l.String()))
				}
				return save(l, base)
			}

			var saveErr error
			i := 0
			n, err := grid.Enumerate(rows, cols, on, limit, func(l grid.Layout) bool {
				i++
				saveErr = save(l, fmt.Sprintf("%s-%d", base, i))
				return saveErr == nil
			})
			if err != nil {
				return err
			}
			if saveErr != nil {
				return saveErr
			}
			if n == 0 {
				a.log.Warn("no symmetric layouts", logging.Int("on", on))
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&cells, "cells", nil, "row-major markers, e.g. 1,0,1,0,1,...")
	cmd.Flags().IntVar(&on, "on", 0, "render every symmetric layout with this many eggs")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum layouts to render with --on (0 for all)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output base name without extension (default eggs-RxC)")
	return cmd
}
