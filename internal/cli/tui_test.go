package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/kgraph/pkg/matrix"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m EditorModel, keys ...tea.KeyMsg) EditorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		if m, ok = next.(EditorModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func newTestEditor(w matrix.Matrix) EditorModel {
	return NewEditorModel(w, "", EditorOptions{Rand: matrix.NewRand(1)})
}

func TestEditorTyping(t *testing.T) {
	m := newTestEditor(matrix.Zeros(3))
	if m.Cursor != (cursor{row: 0, col: 1}) {
		t.Fatalf("initial cursor = %+v, want first off-diagonal cell", m.Cursor)
	}

	m = press(t, m, runes("1"), runes("2"))
	if got := m.Cells[0][1]; got != "12" {
		t.Errorf("cell = %q, want 12", got)
	}
	if !m.Dirty {
		t.Error("editing should mark the matrix dirty")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Cells[0][1]; got != "1" {
		t.Errorf("after backspace cell = %q, want 1", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Cells[0][1]; got != "0" {
		t.Errorf("clearing the last digit should leave 0, got %q", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight}, runes("7"))
	if got := m.Weights()[1][2]; got != 7 {
		t.Errorf("W[1][2] = %d, want 7", got)
	}
	m = press(t, m, runes("x"))
	if got := m.Cells[1][2]; got != "0" {
		t.Errorf("x should clear the cell, got %q", got)
	}
}

func TestEditorDiagonalIsFixed(t *testing.T) {
	m := newTestEditor(matrix.Zeros(2))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("5"))
	if m.Cells[0][0] != "0" {
		t.Errorf("diagonal cell = %q, want 0", m.Cells[0][0])
	}
	if !strings.Contains(m.Status, "diagonal") {
		t.Errorf("status = %q", m.Status)
	}
}

func TestEditorCursorStaysInside(t *testing.T) {
	m := newTestEditor(matrix.Zeros(2))
	for range 5 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.Cursor != (cursor{row: 1, col: 1}) {
		t.Errorf("cursor = %+v, want bottom-right", m.Cursor)
	}
	for range 5 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Cursor != (cursor{row: 0, col: 0}) {
		t.Errorf("cursor = %+v, want top-left", m.Cursor)
	}
}

func TestEditorResize(t *testing.T) {
	m := newTestEditor(matrix.Matrix{{0, 4}, {4, 0}})
	m = press(t, m, runes("+"))
	if len(m.Cells) != 3 || m.Cells[0][1] != "4" || m.Cells[2][2] != "0" {
		t.Errorf("grow: cells = %v", m.Cells)
	}

	m = press(t, m, runes("-"), runes("-"), runes("-"))
	if len(m.Cells) != 1 {
		t.Errorf("shrink stops at 1×1, got %d", len(m.Cells))
	}
	if m.Cursor != (cursor{row: 0, col: 0}) {
		t.Errorf("cursor = %+v after shrinking", m.Cursor)
	}
}

func TestEditorRandomFill(t *testing.T) {
	m := newTestEditor(matrix.Zeros(4))
	m = press(t, m, runes("r"))

	w := m.Weights()
	for i := range w {
		for j, v := range w[i] {
			if i == j && v != 0 {
				t.Errorf("diagonal [%d][%d] = %d", i, j, v)
			}
			if i != j && (v < matrix.DefaultMinWeight || v > matrix.DefaultMaxWeight) {
				t.Errorf("[%d][%d] = %d out of range", i, j, v)
			}
		}
	}
}

func TestEditorDerivedViews(t *testing.T) {
	m := newTestEditor(matrix.Matrix{{0, 2, 0}, {2, 0, 3}, {0, 3, 0}})

	m = press(t, m, runes("a"))
	if m.Mode != viewAdjacency {
		t.Fatalf("view = %v, want adjacency", m.Mode)
	}
	if !matrix.Equal(m.derived.Adjacency, matrix.Matrix{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}) {
		t.Errorf("adjacency = %v", m.derived.Adjacency)
	}

	m = press(t, m, runes("p"))
	if m.Mode != viewPower2 || !strings.Contains(m.View(), "13") {
		t.Errorf("k² view should show 13:\n%s", m.View())
	}

	m = press(t, m, runes("c"))
	if m.Mode != viewPower3 || !strings.Contains(m.View(), "39") {
		t.Errorf("k³ view should show 39:\n%s", m.View())
	}

	// Digits are ignored outside the weights view.
	m = press(t, m, runes("9"))
	if m.Cells[0][1] != "2" {
		t.Errorf("cell changed in a derived view: %q", m.Cells[0][1])
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Mode != viewWeights {
		t.Errorf("esc should return to the weights view, got %v", m.Mode)
	}
}

func TestEditorGraphView(t *testing.T) {
	m := newTestEditor(matrix.Matrix{{0, 2, 0}, {2, 0, 3}, {0, 3, 0}})
	m = press(t, m, runes("g"))
	if m.Mode != viewGraph || m.scene == nil {
		t.Fatal("g should open the graph view")
	}
	if len(m.scene.Nodes) != 3 || len(m.scene.Edges) != 2 {
		t.Fatalf("scene has %d nodes, %d edges", len(m.scene.Nodes), len(m.scene.Edges))
	}

	m = press(t, m, runes("n"))
	if m.scene.Selected != 0 || !m.scene.Edges[0].Highlighted {
		t.Errorf("n should select the first edge, selected = %d", m.scene.Selected)
	}
	m = press(t, m, runes("n"), runes("n"))
	if m.scene.Selected != 0 {
		t.Errorf("selection should wrap around, selected = %d", m.scene.Selected)
	}

	// Drag Node 2, which both edges touch.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	before := m.scene.Nodes[1].Pos
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	after := m.scene.Nodes[1].Pos
	if after.X != before.X+moveStep || after.Y != before.Y+moveStep {
		t.Errorf("node moved from %+v to %+v", before, after)
	}
	if m.scene.Edges[0].Line.To != after || m.scene.Edges[1].Line.From != after {
		t.Error("edges should follow the dragged node")
	}

	m = press(t, m, runes("s"))
	if m.scene.Selected != -1 {
		t.Error("s should clear the selection")
	}

	// Returning to the graph keeps the layout when the size is unchanged.
	m = press(t, m, runes("e"), runes("g"))
	if m.scene.Nodes[1].Pos != after {
		t.Error("layout should survive switching views")
	}
}

func TestEditorSave(t *testing.T) {
	var saved matrix.Matrix
	var savedPath string
	m := NewEditorModel(matrix.Zeros(2), "w.txt", EditorOptions{
		Rand: matrix.NewRand(1),
		Save: func(path string, w matrix.Matrix) error {
			savedPath, saved = path, w
			return nil
		},
	})

	m = press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if savedPath != "w.txt" || !matrix.Equal(saved, matrix.Matrix{{0, 3}, {0, 0}}) {
		t.Errorf("saved %v to %q", saved, savedPath)
	}
	if m.Dirty {
		t.Error("saving should clear the dirty flag")
	}

	m.opts.Save = func(string, matrix.Matrix) error { return errors.New("disk full") }
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Err == nil {
		t.Error("save failure should be reported")
	}
}

func TestEditorSaveWithoutPath(t *testing.T) {
	m := newTestEditor(matrix.Zeros(2))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(m.Status, "no output file") {
		t.Errorf("status = %q", m.Status)
	}
}

func TestEditorQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := newTestEditor(matrix.Zeros(2)).Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestEditorEmptyMatrix(t *testing.T) {
	m := newTestEditor(nil)
	if len(m.Cells) != 1 {
		t.Fatalf("empty input should start as 1×1, got %d", len(m.Cells))
	}
	if !strings.Contains(m.View(), "Weights") {
		t.Errorf("view missing tabs:\n%s", m.View())
	}
}

func TestEditorOverflow(t *testing.T) {
	m := newTestEditor(matrix.Zeros(3))
	var nines []tea.KeyMsg
	for range 18 {
		nines = append(nines, runes("9"))
	}
	m = press(t, m, nines...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, nines...)
	if got := m.Weights()[1][0]; got != 999999999999999999 {
		t.Fatalf("W[1][0] = %d", got)
	}

	m = press(t, m, runes("p"))
	if !errors.Is(m.Err, matrix.ErrOverflow) {
		t.Errorf("Err = %v, want overflow", m.Err)
	}
	if m.Mode != viewWeights {
		t.Errorf("mode = %v, want to stay on the weights view", m.Mode)
	}
}
