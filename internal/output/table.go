package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
)

// Table collects rows and renders them as a rounded lipgloss table.
type Table struct {
	headers []string
	rows    [][]string

	// widths maps a column index to the maximum number of runes a cell in
	// that column may show.
	widths map[int]int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, widths: make(map[int]int)}
}

// Row appends a row.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Truncate limits cells in column col to width runes. Longer cells are
// cut and end in an ellipsis. Headers are never truncated.
func (t *Table) Truncate(col, width int) *Table {
	if width > 0 {
		t.widths[col] = width
	}
	return t
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(t.headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = truncateCell(cell, t.widths[i])
		}
		tbl.Row(cells...)
	}
	return tbl.String()
}

func truncateCell(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
