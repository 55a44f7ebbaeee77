// Package matrix derives adjacency and power matrices from a weighted
// adjacency matrix.
//
// A weighted adjacency matrix is a square grid where entry (i, j) is the
// weight of the edge between node i and node j and 0 means "no edge". From
// it the package derives:
//
//   - [ToAdjacency]: the boolean adjacency matrix (1 iff weight > 0)
//   - [Power]: the k-th ordinary integer matrix power (W·W, W·W·W, ...)
//   - [Derive]: adjacency, second and third power in a single call
//
// All derivations are pure functions: they never mutate their input, keep
// no state between calls and return either a complete result or an error
// with no partial output. Ragged or non-square input fails with
// [ErrInvalidShape].
//
// # Caller Helpers
//
// Table-backed callers (the terminal editor, the HTTP service) hand the
// core text cells rather than integers. [ParseCells] sanitizes those cells
// (non-numeric text becomes 0, the diagonal is forced to 0) and [Format]
// turns a result back into decimal text. [Random] fills a matrix the way
// the editor's "random weights" action does.
//
// # Example
//
//	w := matrix.Matrix{{0, 2, 0}, {2, 0, 3}, {0, 3, 0}}
//	d, err := matrix.Derive(w)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Power2) // [[4 0 6] [0 13 0] [6 0 9]]
package matrix
