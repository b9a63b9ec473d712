package symmetry

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Timing is the result of one timed GetSymmetries call.
type Timing struct {
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Algorithm Algorithm     `json:"algorithm"`
	Elapsed   time.Duration `json:"elapsed"`
	Result    Distribution  `json:"-"`
}

// Benchmark times a single GetSymmetries call.
func Benchmark(rows, cols int, a Algorithm) (Timing, error) {
	start := time.Now()
	dist, err := GetSymmetries(rows, cols, WithAlgorithm(a))
	if err != nil {
		return Timing{}, err
	}
	return Timing{
		Rows:      rows,
		Cols:      cols,
		Algorithm: a,
		Elapsed:   time.Since(start),
		Result:    dist,
	}, nil
}

// BenchmarkRange times every grid with 1 <= rows < maxRows and
// rows <= cols < maxCols, calling fn after each one. maxCols of 0 means
// maxRows. Grids are timed one after another so the timings do not interfere.
func BenchmarkRange(maxRows, maxCols int, a Algorithm, fn func(Timing)) error {
	if maxCols == 0 {
		maxCols = maxRows
	}
	for r := 1; r < maxRows; r++ {
		for c := r; c < maxCols; c++ {
			t, err := Benchmark(r, c, a)
			if err != nil {
				return err
			}
			fn(t)
		}
	}
	return nil
}

// Compare computes the distribution of one grid with two algorithms.
func Compare(rows, cols int, a1, a2 Algorithm) (Distribution, Distribution, error) {
	d1, err := GetSymmetries(rows, cols, WithAlgorithm(a1))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", a1, err)
	}
	d2, err := GetSymmetries(rows, cols, WithAlgorithm(a2))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", a2, err)
	}
	return d1, d2, nil
}

// MismatchError reports a grid on which two algorithms disagree.
type MismatchError struct {
	Rows, Cols int
	A1, A2     Algorithm
	D1, D2     Distribution
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%dx%d: %s gives %v, %s gives %v", e.Rows, e.Cols, e.A1, e.D1.Strings(), e.A2, e.D2.Strings())
}

// VerifyRange cross-checks two algorithms on every grid up to maxDim×maxDim.
// Each grid is an independent call, so they run on up to workers goroutines.
// It returns the number of grids checked, or the first mismatch or error.
func VerifyRange(ctx context.Context, maxDim int, a1, a2 Algorithm, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	checked := 0
	for r := 1; r <= maxDim; r++ {
		for c := 1; c <= maxDim; c++ {
			if gctx.Err() != nil {
				break
			}
			r, c := r, c
			checked++
			g.Go(func() error {
				d1, d2, err := Compare(r, c, a1, a2)
				if err != nil {
					return err
				}
				if !d1.Equal(d2) {
					return &MismatchError{Rows: r, Cols: c, A1: a1, A2: a2, D1: d1, D2: d2}
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return checked, nil
}
