package convert

import (
	"strings"

	"github.com/tsawler/docunit/docx"
	"github.com/tsawler/docunit/model"
)

// defaultBorderSize is the border width in eighths of a point when w:sz is
// missing.
const defaultBorderSize = 4

func (c *converter) table(loc path, t *docx.Table) (*model.Table, error) {
	table := &model.Table{}
	for i, child := range t.Children {
		row, ok := child.(*docx.TableRow)
		if !ok {
			name := nodeName(child)
			c.diagnose(UnrecognizedElement, loc.child(name, i), name)
			continue
		}
		built, err := c.row(loc.child("tr", i), row)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, built)
	}
	return table, nil
}

func (c *converter) row(loc path, r *docx.TableRow) (model.TableRow, error) {
	var row model.TableRow
	for i, child := range r.Children {
		cell, ok := child.(*docx.TableCell)
		if !ok {
			name := nodeName(child)
			c.diagnose(UnrecognizedElement, loc.child(name, i), name)
			continue
		}
		col, err := c.cell(loc.child("tc", i), cell)
		if err != nil {
			return model.TableRow{}, err
		}
		row.Columns = append(row.Columns, col)
	}
	return row, nil
}

// cell converts the paragraphs of a cell. Cell paragraphs are always
// ordinary paragraphs; nested tables are not supported.
func (c *converter) cell(loc path, tc *docx.TableCell) (model.TableColumn, error) {
	col := model.TableColumn{Border: border(tc.Properties.Borders)}
	for i, child := range tc.Children {
		p, ok := child.(*docx.Paragraph)
		if !ok {
			name := nodeName(child)
			c.diagnose(UnrecognizedElement, loc.child(name, i), name)
			continue
		}
		para, err := c.paragraph(loc.child("p", i), p)
		if err != nil {
			return model.TableColumn{}, err
		}
		col.Paragraphs = append(col.Paragraphs, para)
	}
	return col, nil
}

func border(b docx.CellBorders) model.Border {
	return model.Border{
		Top:    borderSide(b.Top),
		Bottom: borderSide(b.Bottom),
		Left:   borderSide(b.Left),
		Right:  borderSide(b.Right),
	}
}

func borderSide(spec *docx.BorderSpec) *model.BorderSide {
	if spec == nil {
		return nil
	}
	size := spec.Size
	if size == 0 {
		size = defaultBorderSize
	}
	return &model.BorderSide{
		Style: borderStyle(spec.Val),
		Width: float64(size) / 8,
		Color: borderColor(spec.Color),
	}
}

// borderStyle maps a w:val border type to a CSS border-style.
func borderStyle(val string) string {
	switch val {
	case "nil", "none":
		return "none"
	case "double":
		return "double"
	case "dotted":
		return "dotted"
	case "dashed", "dashSmallGap", "dotDash":
		return "dashed"
	default:
		return "solid"
	}
}

// borderColor maps a w:color value to a CSS color. "auto" and anything
// that is not six hex digits render black.
func borderColor(val string) string {
	if len(val) != 6 || strings.Trim(val, "0123456789abcdefABCDEF") != "" {
		return "#000000"
	}
	return "#" + strings.ToUpper(val)
}
