package matrix

// Edge is an undirected weighted edge between nodes From < To.
type Edge struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

// ToAdjacency returns the boolean adjacency matrix of w: entry (i, j) is 1
// if w[i][j] > 0 and 0 otherwise. Negative weights count as "no edge".
//
// Returns ErrInvalidShape for ragged or non-square input.
// Complexity: O(n²).
func ToAdjacency(w Matrix) (Matrix, error) {
	n, err := Validate(w)
	if err != nil {
		return nil, err
	}
	out := Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if w[i][j] > 0 {
				out[i][j] = 1
			}
		}
	}
	return out, nil
}

// Edges lists one undirected edge per pair i < j with w[i][j] > 0, reading
// only the upper triangle. Edges are ordered by (From, To).
//
// Returns ErrInvalidShape for ragged or non-square input.
func Edges(w Matrix) ([]Edge, error) {
	n, err := Validate(w)
	if err != nil {
		return nil, err
	}
	var edges []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w[i][j] > 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: w[i][j]})
			}
		}
	}
	return edges, nil
}
