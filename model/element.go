package model

import "strings"

// ElementType represents the type of document element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeTable
	ElementTypeBorderNumber
	ElementTypeUnrecognized
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeTable:
		return "Table"
	case ElementTypeBorderNumber:
		return "BorderNumber"
	case ElementTypeUnrecognized:
		return "Unrecognized"
	default:
		return "Unknown"
	}
}

// Element is the interface for all top-level document elements.
// The set of implementations is closed: *Paragraph, *Table, *BorderNumber
// and *Unrecognized.
type Element interface {
	Type() ElementType
	HTML() string
	element()
}

// RunElement is the interface for inline content of a paragraph.
// Implementations are *TextRun and *ImageRun.
type RunElement interface {
	HTML() string
	runElement()
}

// Paragraph represents a paragraph of runs
type Paragraph struct {
	Runs      []RunElement
	Alignment Alignment
	// Style is the resolved paragraph-level style (named style plus
	// paragraph run properties). HTML rendering ignores it and uses the
	// style of each run; Headings reads it.
	Style TextStyle
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) element()          {}

// GetText returns the text of all text runs, images are skipped.
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		if t, ok := r.(*TextRun); ok {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

// TextRun is a span of text sharing one resolved style.
type TextRun struct {
	Text  string
	Style TextStyle
}

func (t *TextRun) runElement() {}

// ImageRun is an inline image embedded as base64 data.
type ImageRun struct {
	Base64      string
	ContentType string
}

func (i *ImageRun) runElement() {}

// BorderNumber represents a margin number annotation ("Randnummer").
type BorderNumber struct {
	Parts []string
}

func (b *BorderNumber) Type() ElementType { return ElementTypeBorderNumber }
func (b *BorderNumber) element()          {}

// Number returns the concatenated parts of the border number.
func (b *BorderNumber) Number() string {
	return strings.Join(b.Parts, "")
}

// Unrecognized is a placeholder for a body element that could not be
// converted. Name holds the source element type.
type Unrecognized struct {
	Name string
}

func (u *Unrecognized) Type() ElementType { return ElementTypeUnrecognized }
func (u *Unrecognized) element()          {}
