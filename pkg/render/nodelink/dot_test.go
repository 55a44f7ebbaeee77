package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/kgraph/pkg/scene"
)

func testScene() *scene.Scene {
	s := &scene.Scene{
		Width:    200,
		Height:   100,
		Radius:   20,
		Selected: -1,
		Nodes: []scene.Node{
			{Index: 0, Label: "Node 1", Pos: scene.Point{X: 50, Y: 20}},
			{Index: 1, Label: "Node 2", Pos: scene.Point{X: 150, Y: 80}},
			{Index: 2, Label: "Node 3", Pos: scene.Point{X: 100, Y: 50}},
		},
		Edges: []scene.Edge{
			{From: 0, To: 1, Weight: 7},
			{From: 1, To: 2, Weight: 12},
		},
	}
	s.Update()
	return s
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testScene(), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing undirected graph declaration")
	}
	if !strings.Contains(dot, `n0 [label="Node 1", pos="50,80!"]`) {
		t.Errorf("ToDOT() node 0 not pinned with flipped y:\n%s", dot)
	}
	if !strings.Contains(dot, `n1 [label="Node 2", pos="150,20!"]`) {
		t.Errorf("ToDOT() node 1 not pinned with flipped y:\n%s", dot)
	}
	if !strings.Contains(dot, `n0 -- n1 [label="7"]`) {
		t.Error("ToDOT() output missing weighted edge 0-1")
	}
	if !strings.Contains(dot, `n1 -- n2 [label="12"]`) {
		t.Error("ToDOT() output missing weighted edge 1-2")
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() edges must be undirected")
	}
	if strings.Contains(dot, colorHighlight) {
		t.Error("ToDOT() nothing is selected, nothing should be red")
	}
}

func TestToDOT_Highlight(t *testing.T) {
	s := testScene()
	if err := s.SelectEdge(1); err != nil {
		t.Fatalf("SelectEdge() error: %v", err)
	}
	dot := ToDOT(s, Options{})

	if !strings.Contains(dot, `n1 -- n2 [label="12", color=red, penwidth=3]`) {
		t.Errorf("ToDOT() selected edge not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `pos="150,20!", color=red, penwidth=3`) {
		t.Error("ToDOT() endpoint node 1 not highlighted")
	}
	if strings.Contains(dot, `pos="50,80!", color=red`) {
		t.Error("ToDOT() node 0 is not an endpoint and should not be highlighted")
	}
	if strings.Contains(dot, `n0 -- n1 [label="7", color=red`) {
		t.Error("ToDOT() unselected edge should not be highlighted")
	}
}

func TestFmtLabel(t *testing.T) {
	n := scene.Node{Label: "Node 4", Pos: scene.Point{X: 12.5, Y: 30}}

	if got := fmtLabel(n, false); got != "Node 4" {
		t.Errorf("fmtLabel() simple = %q, want %q", got, "Node 4")
	}
	if got := fmtLabel(n, true); got != "Node 4\n(12.5, 30)" {
		t.Errorf("fmtLabel() detailed = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(testScene(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
	if !strings.Contains(string(svg), "Node 3") {
		t.Error("RenderSVG() output missing node label")
	}
}

func TestRenderPNG(t *testing.T) {
	png, err := RenderPNG(ToDOT(testScene(), Options{}))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("RenderPNG() output is not a PNG")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG("graph G { n0 -- "); err == nil {
		t.Error("RenderSVG() should fail on invalid DOT")
	}
}
