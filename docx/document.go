package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"golang.org/x/text/unicode/norm"
)

// nsR is the officeDocument relationships namespace.
const nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// markup holds elements that only mark positions and carry no content.
// They are dropped wherever they appear between content elements.
var markup = map[string]bool{
	"bookmarkStart":      true,
	"bookmarkEnd":        true,
	"proofErr":           true,
	"permStart":          true,
	"permEnd":            true,
	"commentRangeStart":  true,
	"commentRangeEnd":    true,
	"moveFromRangeStart": true,
	"moveFromRangeEnd":   true,
	"moveToRangeStart":   true,
	"moveToRangeEnd":     true,
}

// runContainers wrap runs inside a paragraph without changing their
// meaning. Their runs are flattened in source order.
var runContainers = map[string]bool{
	"hyperlink": true,
	"ins":       true,
	"moveTo":    true,
	"smartTag":  true,
	"fldSimple": true,
	"customXml": true,
	"dir":       true,
	"bdo":       true,
}

// paragraphSkipped holds paragraph children that carry no visible text:
// properties and text removed by tracked changes.
var paragraphSkipped = map[string]bool{
	"pPr":         true,
	"customXmlPr": true,
	"smartTagPr":  true,
	"del":         true,
	"moveFrom":    true,
	"fldData":     true,
}

// parseBody parses word/document.xml into body elements, in source order.
func parseBody(data []byte) ([]BodyElement, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing document.xml: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "document" {
		return nil, fmt.Errorf("document.xml: missing w:document root")
	}

	body := root.SelectElement("body")
	if body == nil {
		return nil, fmt.Errorf("document.xml: missing w:body")
	}

	var elements []BodyElement
	for _, child := range body.ChildElements() {
		switch {
		case child.Tag == "p":
			elements = append(elements, parseParagraph(child))
		case child.Tag == "tbl":
			elements = append(elements, parseTable(child))
		case child.Tag == "sectPr", markup[child.Tag]:
			// section properties and position markers are not content
		default:
			elements = append(elements, unknown(child))
		}
	}

	return elements, nil
}

func unknown(el *etree.Element) *Unknown {
	return &Unknown{Name: el.FullTag()}
}

// parseParagraph parses a <w:p> element. Runs nested in hyperlinks,
// insertions, content controls and the other runContainers are flattened in
// source order.
func parseParagraph(el *etree.Element) *Paragraph {
	p := &Paragraph{}
	if pPr := el.SelectElement("pPr"); pPr != nil {
		p.Properties = parseParagraphProperties(pPr)
	}
	p.Runs = collectRuns(el, nil)
	return p
}

func collectRuns(el *etree.Element, runs []Run) []Run {
	for _, child := range el.ChildElements() {
		switch {
		case child.Tag == "r":
			runs = append(runs, parseRun(child))
		case runContainers[child.Tag]:
			runs = collectRuns(child, runs)
		case child.Tag == "sdt":
			if content := child.SelectElement("sdtContent"); content != nil {
				runs = collectRuns(content, runs)
			}
		case paragraphSkipped[child.Tag], markup[child.Tag]:
		default:
			// reported by the converter as an unrecognized run child
			runs = append(runs, Run{Children: []RunChild{unknown(child)}})
		}
	}
	return runs
}

func parseParagraphProperties(el *etree.Element) ParagraphProperties {
	var props ParagraphProperties
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "pStyle":
			props.StyleID = child.SelectAttrValue("val", "")
		case "jc":
			props.Justification = child.SelectAttrValue("val", "")
		case "rPr":
			props.RunProperties = parseRunProperties(child)
		}
	}
	return props
}

func parseRunProperties(el *etree.Element) RunProperties {
	var props RunProperties
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "rStyle":
			props.StyleID = child.SelectAttrValue("val", "")
		case "b":
			props.Bold = onOff(child)
		case "strike":
			props.Strike = onOff(child)
		case "u":
			props.Underline = child.SelectAttrValue("val", "")
		case "sz":
			props.Size = positiveInt(child.SelectAttrValue("val", ""))
		}
	}
	return props
}

// onOff evaluates an OOXML on/off property. A missing val means on.
func onOff(el *etree.Element) bool {
	switch el.SelectAttrValue("val", "true") {
	case "false", "0", "off":
		return false
	default:
		return true
	}
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseRun(el *etree.Element) Run {
	var run Run
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "rPr":
			run.Properties = parseRunProperties(child)
		case "t":
			run.Children = append(run.Children, &Text{Value: norm.NFC.String(child.Text())})
		case "tab":
			run.Children = append(run.Children, &Text{Value: "\t", Tab: true})
		case "drawing":
			run.Children = append(run.Children, parseDrawing(child))
		case "lastRenderedPageBreak":
			// layout hint left by the last application that saved the file
		default:
			run.Children = append(run.Children, unknown(child))
		}
	}
	return run
}

func parseDrawing(el *etree.Element) *Drawing {
	d := &Drawing{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case PlacementInline, PlacementAnchor:
			d.Graphics = append(d.Graphics, parseGraphic(child))
		}
	}
	return d
}

// parseGraphic parses <wp:inline> or <wp:anchor>.
func parseGraphic(el *etree.Element) Graphic {
	g := Graphic{Placement: el.Tag}

	data := el.FindElement("./graphic/graphicData")
	if data == nil {
		return g
	}
	pic := data.SelectElement("pic")
	if pic == nil {
		return g
	}

	g.Picture = &Picture{}
	if blip := pic.FindElement("./blipFill/blip"); blip != nil {
		g.Picture.EmbedID = blip.SelectAttrValue("embed", "")
	}
	if docPr := el.SelectElement("docPr"); docPr != nil {
		g.Picture.Name = docPr.SelectAttrValue("name", "")
		g.Picture.Descr = docPr.SelectAttrValue("descr", "")
	}
	return g
}

func parseTable(el *etree.Element) *Table {
	t := &Table{}
	for _, child := range el.ChildElements() {
		switch {
		case child.Tag == "tr":
			t.Children = append(t.Children, parseRow(child))
		case child.Tag == "tblPr", child.Tag == "tblGrid", markup[child.Tag]:
		default:
			t.Children = append(t.Children, unknown(child))
		}
	}
	return t
}

func parseRow(el *etree.Element) *TableRow {
	row := &TableRow{}
	for _, child := range el.ChildElements() {
		switch {
		case child.Tag == "tc":
			row.Children = append(row.Children, parseCell(child))
		case child.Tag == "trPr", child.Tag == "tblPrEx", markup[child.Tag]:
		default:
			row.Children = append(row.Children, unknown(child))
		}
	}
	return row
}

func parseCell(el *etree.Element) *TableCell {
	cell := &TableCell{}
	for _, child := range el.ChildElements() {
		switch {
		case child.Tag == "tcPr":
			cell.Properties = parseCellProperties(child)
		case child.Tag == "p":
			cell.Children = append(cell.Children, parseParagraph(child))
		case child.Tag == "tbl":
			cell.Children = append(cell.Children, parseTable(child))
		case markup[child.Tag]:
		default:
			cell.Children = append(cell.Children, unknown(child))
		}
	}
	return cell
}

func parseCellProperties(el *etree.Element) CellProperties {
	var props CellProperties
	borders := el.SelectElement("tcBorders")
	if borders == nil {
		return props
	}
	props.Borders = CellBorders{
		Top:    parseBorder(borders.SelectElement("top")),
		Bottom: parseBorder(borders.SelectElement("bottom")),
		Left:   parseBorder(borders.SelectElement("left")),
		Right:  parseBorder(borders.SelectElement("right")),
	}
	// start/end are the bidi-aware names for left/right
	if props.Borders.Left == nil {
		props.Borders.Left = parseBorder(borders.SelectElement("start"))
	}
	if props.Borders.Right == nil {
		props.Borders.Right = parseBorder(borders.SelectElement("end"))
	}
	return props
}

func parseBorder(el *etree.Element) *BorderSpec {
	if el == nil {
		return nil
	}
	return &BorderSpec{
		Val:   el.SelectAttrValue("val", ""),
		Size:  positiveInt(el.SelectAttrValue("sz", "")),
		Color: el.SelectAttrValue("color", ""),
	}
}
