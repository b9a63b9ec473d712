package symmetry

import "math/big"

// Distribution maps an on-cell count (the index) to the number of symmetric
// configurations with exactly that many cells on.
type Distribution []*big.Int

func newDistribution(totalEggs int) Distribution {
	d := make(Distribution, totalEggs+1)
	for i := range d {
		d[i] = new(big.Int)
	}
	return d
}

// Sum adds up every bucket.
func (d Distribution) Sum() *big.Int {
	sum := new(big.Int)
	for _, v := range d {
		sum.Add(sum, v)
	}
	return sum
}

// Strings returns the buckets as decimal strings. JSON consumers get exact
// values this way even when counts exceed 2^53.
func (d Distribution) Strings() []string {
	out := make([]string, len(d))
	for i, v := range d {
		out[i] = v.String()
	}
	return out
}

// Equal reports whether both distributions have the same length and buckets.
func (d Distribution) Equal(other Distribution) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i].Cmp(other[i]) != 0 {
			return false
		}
	}
	return true
}
