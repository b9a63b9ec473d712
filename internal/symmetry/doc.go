// Package symmetry counts the binary grid configurations that are invariant
// under the symmetries of a rectangle.
//
// The symmetry group considered is the horizontal flip, the vertical flip and
// the 180° rotation. 90° rotations are excluded because rows and cols differ
// in general.
//
// # Quadrant Folding
//
// A configuration invariant under both flips is fully determined by one
// quadrant of the grid. Every quadrant cell belongs to an orbit:
//   - corner: 4 grid cells (one per quadrant copy)
//   - edge: 2 grid cells (on the central row or column, not the centre)
//   - center: 1 grid cell (only when both rows and cols are odd)
//
// Decompose computes how many quadrant cells fall in each orbit class. A
// Counter then turns that Partition into a Distribution: for each on-cell
// count k, the number of symmetric configurations with exactly k cells on.
//
// # Algorithms
//
//   - optimized (default): closed-form binomial sum over the quadrant
//   - bruteforce: enumerates all 2^(quadrant cells) assignments; kept as an
//     oracle for tests and small inputs
//   - dp: reserved name, not implemented; selecting it fails
//
// # Usage
//
//	dist, err := symmetry.GetSymmetries(3, 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist.Strings()) // [1 1 3 3 5 5 7 7 7 7 5 5 3 3 1 1]
//
// Everything in this package is a pure computation. Calls share no state and
// are safe to make from multiple goroutines.
package symmetry
