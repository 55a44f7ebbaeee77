// Package scene models the drawable form of a weighted adjacency matrix:
// one node per matrix row placed at a random position on a canvas, and one
// undirected, weight-labelled edge per non-zero entry above the diagonal.
//
// # Arena Layout
//
// Nodes and edges live in two slices and refer to each other by index.
// An [Edge] stores the indices of its endpoints, never pointers, and the
// scene keeps a per-node list of incident edge indices. Moving a node is a
// two-step affair: the node's position changes, then the geometry of every
// incident edge (its line and label position) is recomputed from the
// current node positions. [Scene.Update] runs that recomputation for the
// whole scene.
//
// # Selection
//
// [Scene.SelectEdge] highlights an edge together with its two endpoints and
// clears any previous highlight. Renderers draw highlighted items in red.
//
// # Determinism
//
// Placement uses the *rand.Rand handed to [Build]; the same seed (see
// matrix.NewRand) yields the same layout.
package scene
