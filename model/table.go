package model

import (
	"strconv"
	"strings"
)

// Table represents a table as rows of cells
type Table struct {
	Rows []TableRow
}

func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) element()          {}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// GetCell returns the cell at the given row and column (0-indexed)
func (t *Table) GetCell(row, col int) *TableColumn {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row].Columns) {
		return nil
	}
	return &t.Rows[row].Columns[col]
}

// GetText returns the table text, cells separated by tabs and rows by newlines.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, col := range row.Columns {
			for k, p := range col.Paragraphs {
				if k > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(p.GetText())
			}
			if j < len(row.Columns)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// TableRow is a single row of a table.
type TableRow struct {
	Columns []TableColumn
}

// TableColumn is a single cell of a table row.
type TableColumn struct {
	Paragraphs []*Paragraph
	Border     Border
}

// Border holds the optional borders of a table cell.
type Border struct {
	Top    *BorderSide
	Bottom *BorderSide
	Left   *BorderSide
	Right  *BorderSide
}

// BorderSide describes a single border line.
type BorderSide struct {
	Style string  // CSS border-style keyword: solid, double, dotted, dashed, none
	Width float64 // points
	Color string  // CSS color, e.g. #000000
}

// IsSet reports whether at least one side is present.
func (b Border) IsSet() bool {
	return b.Top != nil || b.Bottom != nil || b.Left != nil || b.Right != nil
}

// CSS returns inline CSS declarations for the present sides, in
// top, right, bottom, left order.
func (b Border) CSS() string {
	var sb strings.Builder
	sides := []struct {
		name string
		side *BorderSide
	}{
		{"top", b.Top},
		{"right", b.Right},
		{"bottom", b.Bottom},
		{"left", b.Left},
	}
	for _, s := range sides {
		if s.side == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("border-")
		sb.WriteString(s.name)
		sb.WriteString(": ")
		sb.WriteString(s.side.css())
		sb.WriteString(";")
	}
	return sb.String()
}

func (s *BorderSide) css() string {
	if s.Style == "none" {
		return "none"
	}
	return strconv.FormatFloat(s.Width, 'f', -1, 64) + "pt " + s.Style + " " + s.Color
}
