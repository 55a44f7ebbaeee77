package cli

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/kgraph/pkg/matrix"
	"github.com/matzehuels/kgraph/pkg/scene"
)

// editorView selects what the editor shows.
type editorView int

const (
	viewWeights editorView = iota
	viewAdjacency
	viewPower2
	viewPower3
	viewGraph
)

var viewTitles = map[editorView]string{
	viewWeights:   "Weights",
	viewAdjacency: "Adjacency",
	viewPower2:    "k²",
	viewPower3:    "k³",
	viewGraph:     "Graph",
}

// moveStep is how far one arrow key press drags a node, in pixels.
const moveStep = 10

var (
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	statusStyle = lipgloss.NewStyle().Foreground(colorGray)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	tabStyle    = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	activeTab   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Underline(true).Padding(0, 1)
)

// =============================================================================
// EditorModel - Interactive matrix editor
// =============================================================================

// EditorOptions configures NewEditorModel.
type EditorOptions struct {
	Random matrix.RandomOptions
	Scene  scene.Options
	Rand   *rand.Rand

	// Save persists the weight matrix; nil disables saving.
	Save func(path string, m matrix.Matrix) error
}

// EditorModel is the bubbletea model for the matrix editor. Cells hold the
// raw text typed by the user; derived views and the graph are rebuilt from
// the sanitized matrix whenever they are opened.
type EditorModel struct {
	Cells  [][]string
	Cursor cursor
	Mode   editorView
	Path   string
	Status string
	Err    error
	Dirty  bool

	derived *matrix.Derivation
	scene   *scene.Scene
	focus   int // focused node in the graph view
	opts    EditorOptions
}

// NewEditorModel creates an editor for m. An empty m starts as a 1×1 matrix.
func NewEditorModel(m matrix.Matrix, path string, opts EditorOptions) EditorModel {
	if len(m) == 0 {
		m = matrix.Zeros(1)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return EditorModel{
		Cells:  matrix.Format(matrix.ParseCells(matrix.Format(m))),
		Cursor: cursor{row: 0, col: min(1, len(m)-1)},
		Path:   path,
		opts:   opts,
	}
}

// Weights returns the sanitized weight matrix behind the editor.
func (m EditorModel) Weights() matrix.Matrix {
	return matrix.ParseCells(m.Cells)
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.Err = nil

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.Mode == viewWeights {
			return m, tea.Quit
		}
		m.Mode = viewWeights
		return m, nil
	case "ctrl+s":
		m.save()
		return m, nil
	case "r":
		m.randomFill()
		return m, nil
	case "+":
		m.resize(len(m.Cells) + 1)
		return m, nil
	case "-":
		m.resize(len(m.Cells) - 1)
		return m, nil
	case "e":
		m.Mode = viewWeights
		return m, nil
	case "a":
		m.showDerived(viewAdjacency)
		return m, nil
	case "p":
		m.showDerived(viewPower2)
		return m, nil
	case "c":
		m.showDerived(viewPower3)
		return m, nil
	case "g":
		m.showGraph(false)
		return m, nil
	}

	switch m.Mode {
	case viewWeights:
		m.editKey(key)
	case viewGraph:
		m.graphKey(key)
	}
	return m, nil
}

// editKey handles cursor movement and cell editing in the weights view.
func (m *EditorModel) editKey(key tea.KeyMsg) {
	n := len(m.Cells)
	switch key.String() {
	case "up":
		m.Cursor.row = max(0, m.Cursor.row-1)
	case "down":
		m.Cursor.row = min(n-1, m.Cursor.row+1)
	case "left":
		m.Cursor.col = max(0, m.Cursor.col-1)
	case "right":
		m.Cursor.col = min(n-1, m.Cursor.col+1)
	case "backspace":
		m.setCell(func(s string) string {
			if len(s) <= 1 {
				return "0"
			}
			return s[:len(s)-1]
		})
	case "delete", "x":
		m.setCell(func(string) string { return "0" })
	default:
		if r := key.Runes; key.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '0' && r[0] <= '9' {
			m.setCell(func(s string) string {
				if s == "0" {
					s = ""
				}
				if len(s) >= 18 {
					return s
				}
				return s + string(r[0])
			})
		}
	}
}

func (m *EditorModel) setCell(edit func(string) string) {
	i, j := m.Cursor.row, m.Cursor.col
	if i == j {
		m.Status = "the diagonal is fixed at 0 (no self-loops)"
		return
	}
	m.Cells[i][j] = edit(m.Cells[i][j])
	m.Dirty = true
	m.Status = ""
}

// graphKey handles node focus, dragging and edge selection in the graph view.
func (m *EditorModel) graphKey(key tea.KeyMsg) {
	s := m.scene
	if s == nil || len(s.Nodes) == 0 {
		return
	}
	switch key.String() {
	case "tab":
		m.focus = (m.focus + 1) % len(s.Nodes)
	case "shift+tab":
		m.focus = (m.focus + len(s.Nodes) - 1) % len(s.Nodes)
	case "up", "down", "left", "right":
		p := s.Nodes[m.focus].Pos
		switch key.String() {
		case "up":
			p.Y -= moveStep
		case "down":
			p.Y += moveStep
		case "left":
			p.X -= moveStep
		case "right":
			p.X += moveStep
		}
		if err := s.MoveNode(m.focus, p); err != nil {
			m.Err = err
		}
	case "n":
		if len(s.Edges) == 0 {
			m.Status = "graph has no edges"
			return
		}
		next := (s.Selected + 1) % len(s.Edges)
		if err := s.SelectEdge(next); err != nil {
			m.Err = err
			return
		}
		e := s.Edges[next]
		m.Status = fmt.Sprintf("selected edge %d-%d (weight %d)", e.From+1, e.To+1, e.Weight)
	case "s":
		s.ClearSelection()
		m.Status = ""
	case "l":
		m.showGraph(true)
	}
}

func (m *EditorModel) randomFill() {
	w, err := matrix.Random(len(m.Cells), m.opts.Random, m.opts.Rand)
	if err != nil {
		m.Err = err
		return
	}
	m.Cells = matrix.Format(w)
	m.Dirty = true
	m.Status = "filled with random weights"
	m.refresh()
}

// resize grows or shrinks the matrix, keeping existing cells.
func (m *EditorModel) resize(n int) {
	if n < 1 {
		return
	}
	cells := make([][]string, n)
	for i := range cells {
		cells[i] = make([]string, n)
		for j := range cells[i] {
			cells[i][j] = "0"
			if i < len(m.Cells) && j < len(m.Cells[i]) {
				cells[i][j] = m.Cells[i][j]
			}
		}
	}
	m.Cells = cells
	m.Cursor.row = min(m.Cursor.row, n-1)
	m.Cursor.col = min(m.Cursor.col, n-1)
	m.Dirty = true
	m.refresh()
}

// refresh recomputes whatever the current view shows after an edit.
func (m *EditorModel) refresh() {
	switch m.Mode {
	case viewAdjacency, viewPower2, viewPower3:
		m.showDerived(m.Mode)
	case viewGraph:
		m.showGraph(true)
	}
}

func (m *EditorModel) showDerived(v editorView) {
	d, err := matrix.Derive(m.Weights())
	if err != nil {
		m.Err = err
		return
	}
	m.derived = d
	m.Mode = v
}

// showGraph opens the graph view, building a fresh layout when relayout is
// set or the matrix changed size.
func (m *EditorModel) showGraph(relayout bool) {
	w := m.Weights()
	if !relayout && m.scene != nil && len(m.scene.Nodes) == len(w) {
		m.rebuildEdges(w)
		m.Mode = viewGraph
		return
	}
	s, err := scene.Build(w, m.opts.Scene, m.opts.Rand)
	if err != nil {
		m.Err = err
		return
	}
	m.scene = s
	m.focus = 0
	m.Mode = viewGraph
}

// rebuildEdges refreshes edges from w while keeping node positions.
func (m *EditorModel) rebuildEdges(w matrix.Matrix) {
	s, err := scene.Build(w, m.opts.Scene, m.opts.Rand)
	if err != nil {
		m.Err = err
		return
	}
	for i := range s.Nodes {
		s.Nodes[i].Pos = m.scene.Nodes[i].Pos
	}
	s.ID = m.scene.ID
	s.Update()
	m.scene = s
}

func (m *EditorModel) save() {
	if m.opts.Save == nil || m.Path == "" {
		m.Status = "no output file; start the editor with a file argument to save"
		return
	}
	if err := m.opts.Save(m.Path, m.Weights()); err != nil {
		m.Err = err
		return
	}
	m.Dirty = false
	m.Status = "saved " + m.Path
}

// =============================================================================
// Rendering
// =============================================================================

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("kgraph editor"))
	if m.Path != "" {
		b.WriteString(" " + StyleDim.Render(m.Path))
		if m.Dirty {
			b.WriteString(StyleWarning.Render(" *"))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	switch m.Mode {
	case viewWeights:
		b.WriteString(cellTable(m.Cells, m.Cursor))
	case viewAdjacency:
		b.WriteString(matrixTable(m.derived.Adjacency, noCursor))
	case viewPower2:
		b.WriteString(matrixTable(m.derived.Power2, noCursor))
	case viewPower3:
		b.WriteString(matrixTable(m.derived.Power3, noCursor))
	case viewGraph:
		b.WriteString(m.graphView())
	}
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(errorStyle.Render(m.Err.Error()))
	case m.Status != "":
		b.WriteString(statusStyle.Render(m.Status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m EditorModel) tabs() string {
	views := []editorView{viewWeights, viewAdjacency, viewPower2, viewPower3, viewGraph}
	keys := []string{"e", "a", "p", "c", "g"}
	parts := make([]string, len(views))
	for i, v := range views {
		label := keys[i] + " " + viewTitles[v]
		if v == m.Mode {
			parts[i] = activeTab.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m EditorModel) help() string {
	if m.Mode == viewGraph {
		return "tab focus node  ←↑→↓ drag  n select edge  s clear  l re-layout  esc back  q quit"
	}
	return "←↑→↓ move  0-9 type  ⌫ delete  r random  +/- size  ctrl+s save  q quit"
}

// graphView lists node positions and edge geometry side by side.
func (m EditorModel) graphView() string {
	s := m.scene
	if s == nil {
		return ""
	}

	nodeRows := make([][]string, len(s.Nodes))
	for i, n := range s.Nodes {
		mark := "  "
		if i == m.focus {
			mark = "▸ "
		}
		nodeRows[i] = []string{mark + n.Label, fmtCoord(n.Pos.X), fmtCoord(n.Pos.Y)}
	}
	nodes := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "x", "y").
		Rows(nodeRows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row < len(s.Nodes) && s.Nodes[row].Highlighted {
				return styleSelected.Padding(0, 1)
			}
			return styleCell
		})

	edgeRows := make([][]string, len(s.Edges))
	for k, e := range s.Edges {
		edgeRows[k] = []string{
			fmt.Sprintf("%d—%d", e.From+1, e.To+1),
			strconv.FormatInt(e.Weight, 10),
			fmt.Sprintf("(%s, %s)", fmtCoord(e.LabelPos.X), fmtCoord(e.LabelPos.Y)),
		}
	}
	edges := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Edge", "Weight", "Label at").
		Rows(edgeRows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row < len(s.Edges) && s.Edges[row].Highlighted {
				return styleSelected.Padding(0, 1)
			}
			return styleCell
		})

	return lipgloss.JoinHorizontal(lipgloss.Top, nodes.Render(), "  ", edges.Render())
}

func fmtCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
