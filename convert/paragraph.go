package convert

import (
	"encoding/base64"
	"fmt"

	"github.com/tsawler/docunit/docx"
	"github.com/tsawler/docunit/model"
)

// BorderNumberStyle is the paragraph style ID of margin numbers.
const BorderNumberStyle = "RandNummer"

// IsBorderNumber reports whether a body paragraph is a margin number: it
// has the BorderNumberStyle style and at least one run with text.
func IsBorderNumber(p *docx.Paragraph) bool {
	if p.Properties.StyleID != BorderNumberStyle {
		return false
	}
	for _, run := range p.Runs {
		if run.HasText() {
			return true
		}
	}
	return false
}

// borderNumber collects the <w:t> text of every run. Tabs and drawings are
// dropped.
func borderNumber(p *docx.Paragraph) *model.BorderNumber {
	bn := &model.BorderNumber{}
	for _, run := range p.Runs {
		for _, child := range run.Children {
			if t, ok := child.(*docx.Text); ok && !t.Tab {
				bn.Parts = append(bn.Parts, t.Value)
			}
		}
	}
	return bn
}

func (c *converter) paragraph(loc path, p *docx.Paragraph) (*model.Paragraph, error) {
	runs, err := c.runElements(loc, p)
	if err != nil {
		return nil, err
	}
	return &model.Paragraph{
		Runs:      runs,
		Alignment: ResolveAlignment(c.styles, p.Properties),
		Style:     ResolveParagraphStyle(c.styles, p.Properties),
	}, nil
}

// runElements converts the children of every run in order. Empty text is
// dropped and unsupported children are skipped with a diagnostic.
func (c *converter) runElements(loc path, p *docx.Paragraph) ([]model.RunElement, error) {
	var elements []model.RunElement
	for i, run := range p.Runs {
		runLoc := loc.child("r", i)
		style := ResolveStyle(c.styles, p.Properties, run.Properties)

		for j, child := range run.Children {
			switch child := child.(type) {
			case *docx.Text:
				if child.Value == "" {
					continue
				}
				elements = append(elements, &model.TextRun{Text: child.Value, Style: style})
			case *docx.Drawing:
				img, err := c.image(runLoc.child("drawing", j), child)
				if err != nil {
					return nil, err
				}
				elements = append(elements, img)
			default:
				name := nodeName(child)
				c.diagnose(UnrecognizedRunChild, runLoc.child(name, j), name)
			}
		}
	}
	return elements, nil
}

// image resolves a drawing to an inline image. Inline and anchored
// pictures are treated alike.
func (c *converter) image(loc path, d *docx.Drawing) (*model.ImageRun, error) {
	if len(d.Graphics) != 1 {
		return nil, &ConversionError{
			Location: loc.String(),
			Err:      fmt.Errorf("%w: found %d", ErrMalformedDrawing, len(d.Graphics)),
		}
	}

	pic := d.Graphics[0].Picture
	if pic == nil {
		return nil, &ConversionError{
			Location: loc.String(),
			Err:      fmt.Errorf("%w: graphic is not a picture", ErrUnsupportedImage),
		}
	}

	img, ok := c.images.Lookup(pic.EmbedID)
	if !ok {
		return nil, &ConversionError{
			Location: loc.String(),
			Err:      fmt.Errorf("%w: no image for relationship %q", ErrUnsupportedImage, pic.EmbedID),
		}
	}

	return &model.ImageRun{
		Base64:      base64.StdEncoding.EncodeToString(img.Data),
		ContentType: img.ContentType,
	}, nil
}
