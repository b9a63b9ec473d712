package symmetry

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// Algorithm selects how a Distribution is computed.
type Algorithm string

const (
	// AlgorithmOptimized sums binomial coefficients over the quadrant.
	AlgorithmOptimized Algorithm = "optimized"

	// AlgorithmBruteForce enumerates every quadrant assignment.
	AlgorithmBruteForce Algorithm = "bruteforce"

	// AlgorithmDP is reserved for a dynamic-programming counter. It is not
	// implemented and cannot be selected.
	AlgorithmDP Algorithm = "dp"
)

// DefaultAlgorithm is used when no algorithm is given.
const DefaultAlgorithm = AlgorithmOptimized

// maxBruteForceCells bounds the assignment mask so that 1<<n stays in a uint64.
const maxBruteForceCells = 62

// ParseAlgorithm validates an algorithm name. The empty string selects
// DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case "":
		return DefaultAlgorithm, nil
	case AlgorithmOptimized, AlgorithmBruteForce:
		return a, nil
	case AlgorithmDP:
		return "", fmt.Errorf("%w: %q is not implemented yet", ErrUnsupportedAlgorithm, name)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Counter computes the on-cell distribution of a partition.
type Counter interface {
	Count(p Partition) (Distribution, error)
}

// CounterFor returns the Counter implementing a.
func CounterFor(a Algorithm) (Counter, error) {
	parsed, err := ParseAlgorithm(string(a))
	if err != nil {
		return nil, err
	}
	switch parsed {
	case AlgorithmBruteForce:
		return BruteForce{}, nil
	default:
		return Optimized{}, nil
	}
}

// CountDistribution computes the distribution of p with algorithm a.
func CountDistribution(p Partition, a Algorithm) (Distribution, error) {
	c, err := CounterFor(a)
	if err != nil {
		return nil, err
	}
	return c.Count(p)
}

// BruteForce enumerates all 2^EggsInQuadrant assignments of the quadrant.
// It is exponential and intended for small grids and as a test oracle.
type BruteForce struct{}

// Count implements Counter.
func (BruteForce) Count(p Partition) (Distribution, error) {
	n := p.EggsInQuadrant()
	if n > maxBruteForceCells {
		return nil, fmt.Errorf("%w: %d cells (max %d)", ErrQuadrantTooLarge, n, maxBruteForceCells)
	}

	// Bit layout of an assignment: corners first, then edges, then the centre.
	cornerMask := uint64(1)<<p.Corners - 1
	edgeMask := (uint64(1)<<p.Edges - 1) << p.Corners
	centerMask := uint64(p.Center) << (p.Corners + p.Edges)

	counts := make([]uint64, p.TotalEggs()+1)
	for a := uint64(0); a < uint64(1)<<n; a++ {
		eggs := 4*bits.OnesCount64(a&cornerMask) + 2*bits.OnesCount64(a&edgeMask)
		if a&centerMask != 0 {
			eggs++
		}
		counts[eggs]++
	}

	d := newDistribution(p.TotalEggs())
	for i, c := range counts {
		d[i].SetUint64(c)
	}
	return d, nil
}

// Optimized adds C(corners, cor) * C(edges, ed) to bucket 4*cor + 2*ed for
// every feasible pair, walking the pairs by prepicked = cor + ed.
type Optimized struct{}

// Count implements Counter.
func (Optimized) Count(p Partition) (Distribution, error) {
	total := p.TotalEggs()
	d := newDistribution(total)

	c := binomialRow(p.Corners)
	e := binomialRow(p.Edges)

	term := new(big.Int)
	for prepicked := 0; prepicked <= p.Corners+p.Edges; prepicked++ {
		maxCor := min(prepicked, p.Corners)
		minCor := max(0, prepicked-p.Edges)
		for cor := maxCor; cor >= minCor; cor-- {
			ed := prepicked - cor
			term.Mul(c[cor], e[ed])
			d[4*cor+2*ed].Add(d[4*cor+2*ed], term)
		}
	}

	// The centre cell is independent and adds exactly one when on, so every
	// even bucket reappears one index higher.
	if p.Center == 1 {
		for i := 0; i < total; i += 2 {
			d[i+1].Set(d[i])
		}
	}
	return d, nil
}

// binomialRow returns C(n, 0..n).
func binomialRow(n int) []*big.Int {
	row := make([]*big.Int, n+1)
	row[0] = big.NewInt(1)
	for k := 1; k <= n; k++ {
		v := new(big.Int).Mul(row[k-1], big.NewInt(int64(n-k+1)))
		row[k] = v.Quo(v, big.NewInt(int64(k)))
	}
	return row
}
