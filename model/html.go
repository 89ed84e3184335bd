package model

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// BorderNumberClass is the class attribute of rendered border numbers.
const BorderNumberClass = "border-number"

// RenderHTML renders a sequence of elements to a single HTML fragment.
func RenderHTML(elements []Element) string {
	var sb strings.Builder
	for _, el := range elements {
		sb.WriteString(el.HTML())
	}
	return sb.String()
}

// HTML renders the paragraph as a <p> element.
func (p *Paragraph) HTML() string {
	var sb strings.Builder
	sb.WriteString("<p")
	if p.Alignment == AlignCenter {
		sb.WriteString(` style="text-align:center"`)
	}
	sb.WriteString(">")
	for _, r := range p.Runs {
		sb.WriteString(r.HTML())
	}
	sb.WriteString("</p>")
	return sb.String()
}

// HTML renders escaped text wrapped, from inside out, in <u>, <s>, <strong>
// and a font-size span as the style requires.
func (t *TextRun) HTML() string {
	out := html.EscapeString(t.Text)
	if t.Style.Underline == UnderlineSingle {
		out = "<u>" + out + "</u>"
	}
	if t.Style.Strike {
		out = "<s>" + out + "</s>"
	}
	if t.Style.Bold {
		out = "<strong>" + out + "</strong>"
	}
	if t.Style.Size > 0 {
		out = `<span style="font-size:` + halfPoints(t.Style.Size) + `pt">` + out + "</span>"
	}
	return out
}

// HTML renders the image as an <img> element with a data URI.
func (i *ImageRun) HTML() string {
	return `<img src="data:` + html.EscapeString(i.ContentType) + ";base64," + i.Base64 + `">`
}

// HTML renders the border number as a marker span.
func (b *BorderNumber) HTML() string {
	return `<span class="` + BorderNumberClass + `">` + html.EscapeString(b.Number()) + "</span>"
}

// HTML renders a red diagnostic block naming the unrecognized element.
func (u *Unrecognized) HTML() string {
	return `<div style="color: #FF0000;">` + html.EscapeString(u.Name) + "</div>"
}

// HTML renders the table with its rows and cells.
func (t *Table) HTML() string {
	var sb strings.Builder
	sb.WriteString("<table>")
	for _, row := range t.Rows {
		sb.WriteString(row.HTML())
	}
	sb.WriteString("</table>")
	return sb.String()
}

// HTML renders the row as a <tr> element.
func (r TableRow) HTML() string {
	var sb strings.Builder
	sb.WriteString("<tr>")
	for _, col := range r.Columns {
		sb.WriteString(col.HTML())
	}
	sb.WriteString("</tr>")
	return sb.String()
}

// HTML renders the cell as a <td> element, with border CSS if set.
func (c TableColumn) HTML() string {
	var sb strings.Builder
	sb.WriteString("<td")
	if c.Border.IsSet() {
		sb.WriteString(` style="`)
		sb.WriteString(c.Border.CSS())
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	for _, p := range c.Paragraphs {
		sb.WriteString(p.HTML())
	}
	sb.WriteString("</td>")
	return sb.String()
}

// halfPoints formats a half-point size as points, e.g. 21 -> "10.5".
func halfPoints(size int) string {
	return strconv.FormatFloat(float64(size)/2, 'f', -1, 64)
}
