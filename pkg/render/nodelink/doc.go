// Package nodelink renders a [scene.Scene] as a node-and-edge diagram using
// Graphviz.
//
// # Architecture
//
// Node positions are decided by the scene (random placement), not by
// Graphviz. The scene is converted to DOT with every node pinned at its
// scene position, and the neato engine is used only to draw:
//
//	Scene → ToDOT() → DOT → RenderSVG()/RenderPNG() → bytes
//
// The DOT string is the intermediate representation, so a scene can be
// re-rendered in another format without rebuilding it.
//
// # Drawing Conventions
//
//   - Nodes are light-blue circles labelled "Node i"
//   - Edges are undirected lines labelled with their weight
//   - Highlighted items (a selected edge and its endpoints) are red, pen width 3
//
// # Usage
//
//	s, _ := scene.Build(w, scene.Options{}, matrix.NewRand(42))
//	dot := nodelink.ToDOT(s, nodelink.Options{})
//	svg, _ := nodelink.RenderSVG(dot)
package nodelink
