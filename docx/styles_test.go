package docx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReader_Styles(t *testing.T) {
	r := testPackage{
		body: `<w:p/>`,
		styles: `
<w:style w:type="paragraph" w:styleId="Normal">
  <w:name w:val="Normal"/>
  <w:rPr><w:sz w:val="22"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading1">
  <w:name w:val="heading 1"/>
  <w:basedOn w:val="Normal"/>
  <w:pPr><w:jc w:val="center"/></w:pPr>
  <w:rPr><w:b/><w:u w:val="single"/><w:sz w:val="32"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading1Plain">
  <w:basedOn w:val="Heading1"/>
  <w:rPr><w:b w:val="false"/><w:strike/></w:rPr>
</w:style>
<w:style w:type="character" w:styleId="Strong">
  <w:name w:val="Strong"/>
  <w:rPr><w:b w:val="1"/></w:rPr>
</w:style>`,
	}.open(t)

	styles := r.Styles()
	want := StyleDictionary{
		"Normal": {
			ID: "Normal", Name: "Normal", Type: "paragraph",
			RunProperties: RunProperties{Size: 22},
		},
		"Heading1": {
			ID: "Heading1", Name: "heading 1", Type: "paragraph", BasedOn: "Normal",
			Justification: "center",
			RunProperties: RunProperties{Bold: true, Underline: "single", Size: 32},
		},
		"Heading1Plain": {
			ID: "Heading1Plain", Type: "paragraph", BasedOn: "Heading1",
			Justification: "center",
			RunProperties: RunProperties{Strike: true, Underline: "single", Size: 32},
		},
		"Strong": {
			ID: "Strong", Name: "Strong", Type: "character",
			RunProperties: RunProperties{Bold: true},
		},
	}

	if diff := cmp.Diff(want, styles); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInheritanceChain_Cycle(t *testing.T) {
	defs := map[string]*styleDefXML{
		"A": {StyleID: "A", BasedOn: valXML{Val: "B"}},
		"B": {StyleID: "B", BasedOn: valXML{Val: "A"}},
	}

	chain := buildInheritanceChain(defs, "A")
	if diff := cmp.Diff([]string{"B", "A"}, chain); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInheritanceChain_MissingBase(t *testing.T) {
	defs := map[string]*styleDefXML{
		"A": {StyleID: "A", BasedOn: valXML{Val: "Gone"}},
	}

	chain := buildInheritanceChain(defs, "A")
	if diff := cmp.Diff([]string{"A"}, chain); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleDictionary_Lookup(t *testing.T) {
	dict := StyleDictionary{"Body": {ID: "Body"}}

	if _, ok := dict.Lookup("Body"); !ok {
		t.Error("Body should be found")
	}
	if _, ok := dict.Lookup("Missing"); ok {
		t.Error("Missing should not be found")
	}
	if _, ok := dict.Lookup(""); ok {
		t.Error("empty ID should not be found")
	}

	var nilDict StyleDictionary
	if _, ok := nilDict.Lookup("Body"); ok {
		t.Error("nil dictionary should not find anything")
	}
}

func TestParseStyles_Invalid(t *testing.T) {
	if _, err := parseStyles([]byte("<w:styles>")); err == nil {
		t.Error("expected error for truncated styles.xml")
	}
}
