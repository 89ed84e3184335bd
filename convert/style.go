package convert

import (
	"github.com/tsawler/docunit/docx"
	"github.com/tsawler/docunit/model"
)

// Values recognised by the resolver. Every other underline value, including
// an explicit "none", resolves to no underline; every other justification
// resolves to no alignment.
const (
	underlineSingle = "single"
	justifyCenter   = "center"
)

// layer is one source of run properties. Layers are ordered from the most
// specific (direct run formatting) to the least specific (paragraph style).
type layer = docx.RunProperties

// resolveLayers folds the layers into a TextStyle. Bold and strike are on
// if any layer switches them on; underline and size come from the first
// layer that defines them.
func resolveLayers(layers ...layer) model.TextStyle {
	var style model.TextStyle
	underlineSet := false
	for _, l := range layers {
		style.Bold = style.Bold || l.Bold
		style.Strike = style.Strike || l.Strike
		if !underlineSet && l.Underline != "" {
			underlineSet = true
			if l.Underline == underlineSingle {
				style.Underline = model.UnderlineSingle
			}
		}
		if style.Size == 0 && l.Size > 0 {
			style.Size = l.Size
		}
	}
	return style
}

// styleLayer returns the run properties of a named style, or an empty
// layer when the ID is empty or missing from the dictionary.
func styleLayer(styles docx.StyleDictionary, id string) layer {
	s, ok := styles.Lookup(id)
	if !ok {
		return layer{}
	}
	return s.RunProperties
}

// ResolveStyle computes the effective style of a run within a paragraph.
// Layers, most specific first: the run's direct properties, the run's
// character style, the paragraph-level run properties and the paragraph's
// named style.
func ResolveStyle(styles docx.StyleDictionary, para docx.ParagraphProperties, run docx.RunProperties) model.TextStyle {
	return resolveLayers(
		run,
		styleLayer(styles, run.StyleID),
		para.RunProperties,
		styleLayer(styles, para.StyleID),
	)
}

// ResolveParagraphStyle computes the paragraph-level style from the
// paragraph-level run properties and the paragraph's named style.
func ResolveParagraphStyle(styles docx.StyleDictionary, para docx.ParagraphProperties) model.TextStyle {
	return resolveLayers(
		para.RunProperties,
		styleLayer(styles, para.StyleID),
	)
}

// ResolveAlignment computes the alignment of a paragraph. Direct
// justification overrides the named style's.
func ResolveAlignment(styles docx.StyleDictionary, para docx.ParagraphProperties) model.Alignment {
	jc := para.Justification
	if jc == "" {
		if s, ok := styles.Lookup(para.StyleID); ok {
			jc = s.Justification
		}
	}
	if jc == justifyCenter {
		return model.AlignCenter
	}
	return model.AlignNone
}
