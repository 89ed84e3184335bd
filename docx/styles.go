package docx

import (
	"encoding/xml"
	"strconv"
)

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	XMLName xml.Name          `xml:"style"`
	Type    string            `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string            `xml:"styleId,attr"`
	Name    valXML            `xml:"name"`
	BasedOn valXML            `xml:"basedOn"`
	PPr     paragraphPropsXML `xml:"pPr"`
	RPr     runPropsXML       `xml:"rPr"`
}

// valXML represents an element whose only content is a w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// paragraphPropsXML represents paragraph properties of a style.
type paragraphPropsXML struct {
	Justification valXML `xml:"jc"`
}

// runPropsXML represents run properties of a style.
type runPropsXML struct {
	Bold      boolXML `xml:"b"`
	Strike    boolXML `xml:"strike"`
	Underline valXML  `xml:"u"`
	FontSize  valXML  `xml:"sz"`
}

// boolXML represents an on/off property. XMLName is empty when the
// element is absent.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

func (b boolXML) present() bool {
	return b.XMLName.Local != ""
}

func (b boolXML) on() bool {
	return b.present() && b.Val != "false" && b.Val != "0" && b.Val != "off"
}

// Style is a named style with the properties it defines or inherits.
type Style struct {
	ID      string
	Name    string
	Type    string // paragraph, character, table, numbering
	BasedOn string
	// Justification is the paragraph alignment (w:jc), empty if not set.
	Justification string
	RunProperties RunProperties
}

// StyleDictionary maps style IDs to styles. Styles are flattened along
// their w:basedOn chain.
type StyleDictionary map[string]Style

// Lookup returns the style with the given ID.
func (d StyleDictionary) Lookup(id string) (Style, bool) {
	if id == "" || d == nil {
		return Style{}, false
	}
	s, ok := d[id]
	return s, ok
}

// parseStyles parses word/styles.xml into a flattened StyleDictionary.
func parseStyles(data []byte) (StyleDictionary, error) {
	var styles stylesXML
	if err := xml.Unmarshal(data, &styles); err != nil {
		return nil, err
	}
	return buildStyleDictionary(&styles), nil
}

func buildStyleDictionary(styles *stylesXML) StyleDictionary {
	defs := make(map[string]*styleDefXML, len(styles.Styles))
	for i := range styles.Styles {
		style := &styles.Styles[i]
		defs[style.StyleID] = style
	}

	dict := make(StyleDictionary, len(defs))
	for id, def := range defs {
		resolved := Style{
			ID:      id,
			Name:    def.Name.Val,
			Type:    def.Type,
			BasedOn: def.BasedOn.Val,
		}
		// Apply properties from base to derived
		for _, sid := range buildInheritanceChain(defs, id) {
			applyStyleDef(&resolved, defs[sid])
		}
		dict[id] = resolved
	}
	return dict
}

// buildInheritanceChain returns style IDs from base to derived.
func buildInheritanceChain(defs map[string]*styleDefXML, styleID string) []string {
	var chain []string
	visited := make(map[string]bool)

	current := styleID
	for current != "" && !visited[current] {
		def, ok := defs[current]
		if !ok {
			break
		}
		visited[current] = true
		chain = append([]string{current}, chain...) // Prepend
		current = def.BasedOn.Val
	}

	return chain
}

// applyStyleDef applies a style definition's properties to a resolved style.
// A derived style may switch off what its base switched on.
func applyStyleDef(resolved *Style, def *styleDefXML) {
	if def.PPr.Justification.Val != "" {
		resolved.Justification = def.PPr.Justification.Val
	}

	rpr := def.RPr
	if rpr.Bold.present() {
		resolved.RunProperties.Bold = rpr.Bold.on()
	}
	if rpr.Strike.present() {
		resolved.RunProperties.Strike = rpr.Strike.on()
	}
	if rpr.Underline.Val != "" {
		resolved.RunProperties.Underline = rpr.Underline.Val
	}
	if rpr.FontSize.Val != "" {
		if size, err := strconv.Atoi(rpr.FontSize.Val); err == nil && size > 0 {
			resolved.RunProperties.Size = size
		}
	}
}
