// Package render groups the output backends for graph scenes.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage draws a [scene.Scene] the way it is laid out:
// circles pinned at their scene positions, straight undirected edges
// labelled with their weights, and the selected edge with its endpoints in
// red. Rendering goes through Graphviz's neato engine, which honours pinned
// positions.
//
//	dot := nodelink.ToDOT(s, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// [nodelink]: github.com/matzehuels/kgraph/pkg/render/nodelink
// [scene.Scene]: github.com/matzehuels/kgraph/pkg/scene#Scene
package render
