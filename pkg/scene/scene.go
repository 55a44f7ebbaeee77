package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/kgraph/pkg/matrix"
)

var (
	// ErrUnknownNode is returned for a node index outside the scene.
	ErrUnknownNode = errors.New("scene: unknown node")

	// ErrUnknownEdge is returned for an edge index outside the scene or a
	// node pair with no edge between them.
	ErrUnknownEdge = errors.New("scene: unknown edge")

	// ErrInvalidEdgeRef is returned by ParseEdgeRef for malformed input.
	ErrInvalidEdgeRef = errors.New("scene: invalid edge reference")
)

// Default canvas geometry, in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultMargin = 50
	DefaultRadius = 20
)

// Point is a canvas position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a straight line between two points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Midpoint returns the point halfway along s.
func (s Segment) Midpoint() Point {
	return Point{X: (s.From.X + s.To.X) / 2, Y: (s.From.Y + s.To.Y) / 2}
}

// Node is a drawable graph node.
type Node struct {
	Index       int    `json:"index"`
	Label       string `json:"label"`
	Pos         Point  `json:"pos"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

// Edge is a drawable undirected edge. From and To index into Scene.Nodes.
type Edge struct {
	From        int     `json:"from"`
	To          int     `json:"to"`
	Weight      int64   `json:"weight"`
	Line        Segment `json:"line"`
	LabelPos    Point   `json:"label_pos"`
	Highlighted bool    `json:"highlighted,omitempty"`
}

// Options configures Build. Zero fields take the Default* values.
type Options struct {
	Width  float64
	Height float64
	Margin float64
	Radius float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	return o
}

// Scene is the node/edge arena for one weight matrix.
type Scene struct {
	ID       string  `json:"id"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Radius   float64 `json:"radius"`
	Nodes    []Node  `json:"nodes"`
	Edges    []Edge  `json:"edges"`
	Selected int     `json:"selected"` // edge index, -1 when nothing is selected

	incident [][]int // node index -> incident edge indices
}

// Build lays out w: node i gets label "Node i+1" and a uniform random
// position inside the canvas margins; an edge is added for every i < j
// with w[i][j] > 0, labelled with that weight. A nil rng uses a time-seeded
// source.
//
// Returns matrix.ErrInvalidShape for ragged or non-square input.
func Build(w matrix.Matrix, opts Options, rng *rand.Rand) (*Scene, error) {
	edges, err := matrix.Edges(w)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	opts = opts.withDefaults()

	s := &Scene{
		ID:       uuid.New().String(),
		Width:    opts.Width,
		Height:   opts.Height,
		Radius:   opts.Radius,
		Nodes:    make([]Node, len(w)),
		Edges:    make([]Edge, len(edges)),
		Selected: -1,
		incident: make([][]int, len(w)),
	}

	for i := range s.Nodes {
		s.Nodes[i] = Node{
			Index: i,
			Label: fmt.Sprintf("Node %d", i+1),
			Pos: Point{
				X: uniform(rng, opts.Margin, opts.Width-opts.Margin),
				Y: uniform(rng, opts.Margin, opts.Height-opts.Margin),
			},
		}
	}
	for k, e := range edges {
		s.Edges[k] = Edge{From: e.From, To: e.To, Weight: e.Weight}
		s.incident[e.From] = append(s.incident[e.From], k)
		s.incident[e.To] = append(s.incident[e.To], k)
	}
	s.Update()
	return s, nil
}

// uniform draws from [lo, hi], collapsing to lo when the range is empty.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return math.Round(lo + rng.Float64()*(hi-lo))
}

// Update recomputes the geometry of every edge from current node positions.
func (s *Scene) Update() {
	for k := range s.Edges {
		s.updateEdge(k)
	}
}

func (s *Scene) updateEdge(k int) {
	e := &s.Edges[k]
	e.Line = Segment{From: s.Nodes[e.From].Pos, To: s.Nodes[e.To].Pos}
	e.LabelPos = e.Line.Midpoint()
}

// MoveNode repositions node i and refreshes the edges incident to it.
func (s *Scene) MoveNode(i int, p Point) error {
	if i < 0 || i >= len(s.Nodes) {
		return fmt.Errorf("node %d: %w", i, ErrUnknownNode)
	}
	s.Nodes[i].Pos = p
	for _, k := range s.Incident(i) {
		s.updateEdge(k)
	}
	return nil
}

// Incident returns the indices of edges touching node i.
func (s *Scene) Incident(i int) []int {
	if len(s.incident) != len(s.Nodes) {
		s.reindex()
	}
	if i < 0 || i >= len(s.incident) {
		return nil
	}
	return s.incident[i]
}

// reindex rebuilds the incidence lists, e.g. after a scene was decoded
// from JSON.
func (s *Scene) reindex() {
	s.incident = make([][]int, len(s.Nodes))
	for k, e := range s.Edges {
		s.incident[e.From] = append(s.incident[e.From], k)
		s.incident[e.To] = append(s.incident[e.To], k)
	}
}

// NodeAt returns the topmost node whose disc of radius s.Radius contains p.
func (s *Scene) NodeAt(p Point) (int, bool) {
	for i := len(s.Nodes) - 1; i >= 0; i-- {
		n := s.Nodes[i].Pos
		if math.Hypot(p.X-n.X, p.Y-n.Y) <= s.Radius {
			return i, true
		}
	}
	return -1, false
}

// EdgeBetween returns the index of the edge joining nodes a and b in either
// order, or ErrUnknownEdge.
func (s *Scene) EdgeBetween(a, b int) (int, error) {
	for _, k := range s.Incident(a) {
		e := s.Edges[k]
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return k, nil
		}
	}
	return -1, fmt.Errorf("edge %d-%d: %w", a, b, ErrUnknownEdge)
}

// SelectEdge highlights edge k and both of its endpoints, clearing any
// previous selection.
func (s *Scene) SelectEdge(k int) error {
	if k < 0 || k >= len(s.Edges) {
		return fmt.Errorf("edge %d: %w", k, ErrUnknownEdge)
	}
	s.ClearSelection()
	e := &s.Edges[k]
	e.Highlighted = true
	s.Nodes[e.From].Highlighted = true
	s.Nodes[e.To].Highlighted = true
	s.Selected = k
	return nil
}

// ClearSelection removes every highlight.
func (s *Scene) ClearSelection() {
	for i := range s.Nodes {
		s.Nodes[i].Highlighted = false
	}
	for k := range s.Edges {
		s.Edges[k].Highlighted = false
	}
	s.Selected = -1
}

// ParseEdgeRef parses an edge written as "i-j" with 1-based node numbers,
// the way nodes are labelled, and returns 0-based indices.
func ParseEdgeRef(ref string) (int, int, error) {
	a, b, ok := strings.Cut(ref, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%q (want i-j): %w", ref, ErrInvalidEdgeRef)
	}
	i, err1 := strconv.Atoi(strings.TrimSpace(a))
	j, err2 := strconv.Atoi(strings.TrimSpace(b))
	if err1 != nil || err2 != nil || i < 1 || j < 1 {
		return 0, 0, fmt.Errorf("%q (want node numbers from 1): %w", ref, ErrInvalidEdgeRef)
	}
	return i - 1, j - 1, nil
}

// SelectRef selects the edge named by ref (see ParseEdgeRef) and returns
// its index.
func (s *Scene) SelectRef(ref string) (int, error) {
	a, b, err := ParseEdgeRef(ref)
	if err != nil {
		return -1, err
	}
	k, err := s.EdgeBetween(a, b)
	if err != nil {
		return -1, err
	}
	return k, s.SelectEdge(k)
}
