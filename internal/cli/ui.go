package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/kgraph/pkg/matrix"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors, selection
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell     = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1).Align(lipgloss.Right)
	styleZero     = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1).Align(lipgloss.Right)
	styleCursor   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Reverse(true).Padding(0, 1).Align(lipgloss.Right)
	styleSelected = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, nodeCount, edgeCount int, seed uint64) {
	sep := StyleDim.Render(" · ")
	fmt.Fprintln(w, "  "+
		StyleDim.Render(fmt.Sprintf("%d nodes", nodeCount))+sep+
		StyleDim.Render(fmt.Sprintf("%d edges", edgeCount))+sep+
		StyleDim.Render(fmt.Sprintf("seed %d", seed)))
}

// =============================================================================
// Matrix Tables
// =============================================================================

// cursor marks one cell of a matrix table; a negative row means none.
type cursor struct {
	row, col int
}

var noCursor = cursor{row: -1, col: -1}

// matrixTable renders m as a bordered table with 1-based row and column
// headers, dimming zero entries and highlighting the cell at cur.
func matrixTable(m matrix.Matrix, cur cursor) string {
	return cellTable(matrix.Format(m), cur)
}

// cellTable renders raw cell text (as typed in the editor) the same way.
func cellTable(cells [][]string, cur cursor) string {
	headers := make([]string, len(cells)+1)
	for j := range cells {
		headers[j+1] = strconv.Itoa(j + 1)
	}

	rows := make([][]string, len(cells))
	for i, row := range cells {
		rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return styleHeader
			}
			if row == cur.row && col-1 == cur.col {
				return styleCursor
			}
			if row < len(cells) && col-1 < len(cells[row]) {
				if v := cells[row][col-1]; v == "0" || v == "" {
					return styleZero
				}
			}
			return styleCell
		})

	return t.Render()
}

// printMatrix prints a titled matrix table.
func printMatrix(w io.Writer, title string, m matrix.Matrix) {
	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, matrixTable(m, noCursor))
}
