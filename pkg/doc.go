// Package pkg provides the libraries behind kgraph.
//
// # Overview
//
// kgraph reads a weighted adjacency matrix, draws it as a graph and derives
// its binary adjacency matrix and its 2nd and 3rd ordinary matrix powers.
// The pkg directory is organized by concern:
//
//  1. [matrix] - The derivation core: adjacency, matrix powers, validation
//  2. [scene] - The graph drawing model: node positions, edge geometry, selection
//  3. [render] - Output of a scene as Graphviz DOT, SVG or PNG
//  4. [io] - Reading and writing matrix files (JSON and plain text)
//  5. [errors] - Coded errors shared by the CLI and the HTTP service
//
// # Data Flow
//
//	matrix file / editor / HTTP body
//	         ↓
//	    io.ReadMatrix → matrix.Matrix
//	         ↓
//	   ┌─────┴──────────────┐
//	   ↓                    ↓
//	matrix.Derive       scene.Build
//	(adjacency, k², k³) (random layout)
//	                        ↓
//	                 nodelink.ToDOT → SVG / PNG
//
// The matrix package is pure: no I/O, no hidden state, no caching. Every
// call recomputes its outputs from the weights it is given.
//
// [matrix]: github.com/matzehuels/kgraph/pkg/matrix
// [scene]: github.com/matzehuels/kgraph/pkg/scene
// [render]: github.com/matzehuels/kgraph/pkg/render
// [io]: github.com/matzehuels/kgraph/pkg/io
// [errors]: github.com/matzehuels/kgraph/pkg/errors
package pkg
