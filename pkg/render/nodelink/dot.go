package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/kgraph/pkg/scene"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each node's canvas coordinates to its label.
	Detailed bool
}

const (
	colorNode      = "lightblue"
	colorHighlight = "red"
	penHighlight   = 3
)

// ToDOT converts a scene to an undirected Graphviz graph with every node
// pinned at its scene position. The scene's top-left origin is flipped to
// Graphviz's bottom-left origin.
func ToDOT(s *scene.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=line;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%s, color=black, fixedsize=true, width=%s, fontsize=10];\n",
		colorNode, fmtFloat(2*s.Radius/72))
	buf.WriteString("  edge [color=black, fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
			fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(n.Pos.X), fmtFloat(s.Height-n.Pos.Y)),
		}
		if n.Highlighted {
			attrs = append(attrs, fmt.Sprintf("color=%s", colorHighlight), fmt.Sprintf("penwidth=%d", penHighlight))
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(n.Index), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range s.Edges {
		attrs := []string{fmt.Sprintf("label=\"%d\"", e.Weight)}
		if e.Highlighted {
			attrs = append(attrs, fmt.Sprintf("color=%s", colorHighlight), fmt.Sprintf("penwidth=%d", penHighlight))
		}
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", nodeID(e.From), nodeID(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return "n" + strconv.Itoa(i)
}

func fmtLabel(n scene.Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\n(%s, %s)", n.Label, fmtFloat(n.Pos.X), fmtFloat(n.Pos.Y))
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato engine.
func RenderSVG(dot string) ([]byte, error) {
	out, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using the Graphviz neato engine.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root <svg> tag so the viewBox starts at the
// origin and explicit width/height match it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
