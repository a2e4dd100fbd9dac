package display

import (
	"fmt"
	"strings"
)

// rowStyle selects how a data row is rendered.
type rowStyle int

const (
	rowPlain rowStyle = iota
	rowAccent
	rowDim
)

// Table renders an aligned text table with optional color support.
// Rows can be individually accented (e.g. today, the next prayer) or
// dimmed (e.g. already passed).
type Table struct {
	headers []string
	rows    [][]string
	styles  []rowStyle
}

// NewTable creates a new table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a plain row. The number of values should match the headers.
func (t *Table) AddRow(values []string) {
	t.addRow(values, rowPlain)
}

// AddAccentRow appends a highlighted row.
func (t *Table) AddAccentRow(values []string) {
	t.addRow(values, rowAccent)
}

// AddDimRow appends a dimmed row.
func (t *Table) AddDimRow(values []string) {
	t.addRow(values, rowDim)
}

func (t *Table) addRow(values []string, style rowStyle) {
	t.rows = append(t.rows, values)
	t.styles = append(t.styles, style)
}

// Render produces the formatted table string with leading indent.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Column widths from headers and cells.
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	sb.WriteString("  " + Bold(formatRow(t.headers, widths)) + "\n")

	// Separator row using Unicode box-drawing dashes.
	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = strings.Repeat("─", w)
	}
	sb.WriteString(Dim("  "+strings.Join(sepParts, "  ")) + "\n")

	for i, row := range t.rows {
		line := formatRow(row, widths)
		switch t.styles[i] {
		case rowAccent:
			sb.WriteString("  " + Accent(line) + "\n")
		case rowDim:
			sb.WriteString("  " + Dim(line) + "\n")
		default:
			sb.WriteString("  " + line + "\n")
		}
	}

	return sb.String()
}

// formatRow formats a row of cells using the given column widths.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, cell)
	}
	return strings.Join(parts, "  ")
}
