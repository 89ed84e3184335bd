package docx

// NodeKind identifies the shape of a parsed document node.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindParagraph
	KindTable
	KindTableRow
	KindTableCell
	KindText
	KindDrawing
)

func (k NodeKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindTableRow:
		return "row"
	case KindTableCell:
		return "cell"
	case KindText:
		return "text"
	case KindDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// Node is implemented by every parsed node.
type Node interface {
	Kind() NodeKind
}

// BodyElement is a top-level element of the document body:
// *Paragraph, *Table or *Unknown.
type BodyElement interface {
	Node
	bodyElement()
}

// TableChild is a child of a table: *TableRow or *Unknown.
type TableChild interface {
	Node
	tableChild()
}

// RowChild is a child of a table row: *TableCell or *Unknown.
type RowChild interface {
	Node
	rowChild()
}

// CellChild is a child of a table cell: *Paragraph, *Table or *Unknown.
type CellChild interface {
	Node
	cellChild()
}

// RunChild is a child of a run: *Text, *Drawing or *Unknown.
type RunChild interface {
	Node
	runChild()
}

// Paragraph represents a paragraph element (<w:p>).
type Paragraph struct {
	Properties ParagraphProperties
	Runs       []Run
}

func (*Paragraph) Kind() NodeKind { return KindParagraph }
func (*Paragraph) bodyElement()   {}
func (*Paragraph) cellChild()     {}

// ParagraphProperties represents paragraph properties (<w:pPr>).
type ParagraphProperties struct {
	StyleID       string // w:pStyle
	Justification string // w:jc, empty if not set
	// RunProperties are the paragraph-level run properties (<w:pPr><w:rPr>).
	RunProperties RunProperties
}

// RunProperties represents run properties (<w:rPr>). Zero values mean
// "not specified at this level".
type RunProperties struct {
	StyleID   string // w:rStyle
	Bold      bool
	Strike    bool
	Underline string // w:u value, empty if not set
	Size      int    // w:sz in half-points, 0 if not set
}

// Run represents a text run (<w:r>).
type Run struct {
	Properties RunProperties
	Children   []RunChild
}

// HasText reports whether the run contains at least one <w:t> text child.
// Tabs do not count.
func (r Run) HasText() bool {
	for _, c := range r.Children {
		if t, ok := c.(*Text); ok && !t.Tab {
			return true
		}
	}
	return false
}

// Text represents text content (<w:t>, <w:tab>).
type Text struct {
	Value string
	// Tab is set for text produced by <w:tab>.
	Tab bool
}

func (*Text) Kind() NodeKind { return KindText }
func (*Text) runChild()      {}

// Drawing represents an embedded drawing (<w:drawing>).
type Drawing struct {
	Graphics []Graphic
}

func (*Drawing) Kind() NodeKind { return KindDrawing }
func (*Drawing) runChild()      {}

// Placement of a positioned graphic.
const (
	PlacementInline = "inline"
	PlacementAnchor = "anchor"
)

// Graphic is a positioned graphic (<wp:inline> or <wp:anchor>).
type Graphic struct {
	Placement string
	// Picture is nil when the graphic has no graphic data or is not a picture.
	Picture *Picture
}

// Picture is a picture graphic (<pic:pic>).
type Picture struct {
	EmbedID string // a:blip r:embed, relationship ID
	Name    string // wp:docPr name
	Descr   string // wp:docPr descr, alt text
}

// Table represents a table (<w:tbl>).
type Table struct {
	Children []TableChild
}

func (*Table) Kind() NodeKind { return KindTable }
func (*Table) bodyElement()   {}
func (*Table) cellChild()     {}

// TableRow represents a table row (<w:tr>).
type TableRow struct {
	Children []RowChild
}

func (*TableRow) Kind() NodeKind { return KindTableRow }
func (*TableRow) tableChild()    {}

// TableCell represents a table cell (<w:tc>).
type TableCell struct {
	Properties CellProperties
	Children   []CellChild
}

func (*TableCell) Kind() NodeKind { return KindTableCell }
func (*TableCell) rowChild()      {}

// CellProperties represents cell properties (<w:tcPr>).
type CellProperties struct {
	Borders CellBorders
}

// CellBorders represents cell borders (<w:tcBorders>).
// A nil side is not specified.
type CellBorders struct {
	Top    *BorderSpec
	Bottom *BorderSpec
	Left   *BorderSpec
	Right  *BorderSpec
}

// BorderSpec represents a single border as written in the document.
type BorderSpec struct {
	Val   string // border style: single, double, nil, ...
	Size  int    // eighths of a point, 0 if not set
	Color string // hex color or "auto"
}

// Unknown is any element whose shape is not modelled. Name is the
// qualified element name, e.g. "w:sdt".
type Unknown struct {
	Name string
}

func (*Unknown) Kind() NodeKind { return KindUnknown }
func (*Unknown) bodyElement()   {}
func (*Unknown) tableChild()    {}
func (*Unknown) rowChild()      {}
func (*Unknown) cellChild()     {}
func (*Unknown) runChild()      {}
