package model

import (
	"strings"
	"time"
)

// Document represents a converted document with its metadata
type Document struct {
	Metadata Metadata
	Elements []Element
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	CreationDate time.Time
	ModDate      time.Time
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Elements: make([]Element, 0),
	}
}

// AddElement appends an element to the document body
func (d *Document) AddElement(el Element) {
	d.Elements = append(d.Elements, el)
}

// HTML renders the document body
func (d *Document) HTML() string {
	return RenderHTML(d.Elements)
}

// ExtractText returns the text of paragraphs, border numbers and tables,
// one element per line
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for _, el := range d.Elements {
		switch e := el.(type) {
		case *Paragraph:
			sb.WriteString(e.GetText())
		case *BorderNumber:
			sb.WriteString(e.Number())
		case *Table:
			sb.WriteString(strings.TrimSuffix(e.GetText(), "\n"))
		default:
			continue
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Tables returns all top-level tables
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range d.Elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Headings returns the text of paragraphs whose paragraph-level style is
// bold, the way court decisions mark section titles
func (d *Document) Headings() []string {
	var headings []string
	for _, el := range d.Elements {
		if p, ok := el.(*Paragraph); ok && p.Style.Bold {
			if text := strings.TrimSpace(p.GetText()); text != "" {
				headings = append(headings, text)
			}
		}
	}
	return headings
}

// BorderNumbers returns all border numbers in document order
func (d *Document) BorderNumbers() []string {
	var numbers []string
	for _, el := range d.Elements {
		if b, ok := el.(*BorderNumber); ok {
			numbers = append(numbers, b.Number())
		}
	}
	return numbers
}
