package symmetry

import (
	"fmt"
	"math"

	"github.com/ironsheep/egg-symmetry/internal/logging"
)

type options struct {
	algorithm Algorithm
	info      bool
	logger    logging.Logger
}

// Option configures GetSymmetries.
type Option func(*options)

// WithAlgorithm selects the counting algorithm. Default is AlgorithmOptimized.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithInfo enables the diagnostic breakdown: dimensions, quadrant partition,
// total symmetries and the full distribution. It is emitted at info level.
func WithInfo(info bool) Option {
	return func(o *options) { o.info = info }
}

// WithLogger sets where diagnostics go. Without it they are discarded.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// MaxCells bounds rows*cols. The distribution holds rows*cols+1 counts of up
// to rows*cols/4 bits each, so memory grows with the square of the cell count;
// at this bound it stays in the tens of megabytes.
const MaxCells = 1 << 15

// CheckDimensions validates a grid size before anything is allocated for it.
//
// Errors:
//   - ErrInvalidDimensions if rows < 1, cols < 1 or rows*cols > MaxCells
func CheckDimensions(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: rows and cols must be positive, got %d and %d", ErrInvalidDimensions, rows, cols)
	}
	if rows > MaxCells || cols > MaxCells || rows*cols > MaxCells {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, rows, cols, MaxCells)
	}
	return nil
}

// GetSymmetries returns, for every on-cell count k in 0..rows*cols, how many
// configurations of a rows×cols grid are invariant under both flips and the
// 180° rotation and have exactly k cells on.
//
// Errors:
//   - ErrInvalidDimensions if rows < 1, cols < 1 or rows*cols > MaxCells
//   - ErrUnsupportedAlgorithm for an unknown or unimplemented algorithm
//   - ErrQuadrantTooLarge if brute force is asked for a huge grid
func GetSymmetries(rows, cols int, opts ...Option) (Distribution, error) {
	o := options{
		algorithm: DefaultAlgorithm,
		logger:    logging.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := CheckDimensions(rows, cols); err != nil {
		return nil, err
	}
	counter, err := CounterFor(o.algorithm)
	if err != nil {
		return nil, err
	}

	if o.info {
		o.logger.Info("grid", logging.Int("rows", rows), logging.Int("cols", cols))
	}

	p := Decompose(rows, cols)
	if o.info {
		o.logger.Info("quadrant",
			logging.Int("eggs_in_quadrant", p.EggsInQuadrant()),
			logging.Int("quadrant_rows", p.QuadrantRows),
			logging.Int("quadrant_cols", p.QuadrantCols),
			logging.Int("corners", p.Corners),
			logging.Int("edges", p.Edges),
			logging.Int("edge_row", p.EdgeRow),
			logging.Int("edge_col", p.EdgeCol),
			logging.Int("center", p.Center),
		)
	}

	dist, err := counter.Count(p)
	if err != nil {
		return nil, err
	}

	if o.info {
		o.logger.Info("symmetries",
			logging.String("total", fmt.Sprintf("2^%d=%s", p.EggsInQuadrant(), p.TotalSymmetries())),
			logging.Strings("by_egg_number", dist.Strings()),
		)
	}
	return dist, nil
}

// CheckInteger converts a dimension received as a generic number, such as a
// decoded JSON value, to an int. It checks representability only; callers
// still apply CheckDimensions.
//
// Errors:
//   - ErrTypeMismatch for fractional, NaN or infinite values
//   - ErrInvalidDimensions for integral values outside the int32 range
func CheckInteger(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s is %v", ErrTypeMismatch, name, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s is out of range (%v)", ErrInvalidDimensions, name, v)
	}
	return int(v), nil
}
