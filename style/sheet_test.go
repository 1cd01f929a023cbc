package style

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestSheetMergeNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	a := Fallback()
	if m := a.Merge(nil); m != a {
		t.Errorf("expected a.Merge(nil) to return a, got a different sheet")
	}
	var empty *Sheet
	if empty.Merge(nil) != nil {
		t.Errorf("expected nil.Merge(nil) to be nil")
	}
}

func TestSheetMergeOverrideWinsPerKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	base := SheetFromMap(map[string]map[string]string{
		"p":  {Color: "black", FontSize: "12pt"},
		"h1": {FontWeight: "bold"},
	})
	override := SheetFromMap(map[string]map[string]string{
		"p":    {Color: "navy"},
		"code": {FontFamily: "monospace"},
	})
	m := base.Merge(override)
	require.NotNil(t, m)
	for _, k := range override.Keys() {
		if !m.Style(k).Equal(override.Style(k)) {
			t.Errorf("expected key %q to have override value %s, has %s", k, override.Style(k), m.Style(k))
		}
	}
	if !m.Style("h1").Equal(base.Style("h1")) {
		t.Errorf("expected h1 to fall back to base, is %s", m.Style("h1"))
	}
	// whole-record replacement on sheet level
	if m.Style("p").IsSet(FontSize) {
		t.Errorf("expected p of merged sheet not to carry base font-size")
	}
	if m.Len() != 3 {
		t.Errorf("expected merged sheet to have 3 keys, has %d", m.Len())
	}
	// inputs are untouched
	if base.Len() != 2 || override.Len() != 2 {
		t.Errorf("merge modified its inputs: %s / %s", base, override)
	}
	if base.Style("p").Value(Color) != "black" {
		t.Errorf("merge modified base")
	}
}

func TestSheetUnknownKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	s := Fallback()
	st := s.Style("no-such-tag")
	if !st.IsEmpty() {
		t.Errorf("expected empty attributes for unknown key, have %s", st)
	}
	if _, ok := s.Lookup("no-such-tag"); ok {
		t.Errorf("expected lookup of unknown key to fail")
	}
}

func TestSheetYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	src := `
h1:
  color: navy
  font-size: 24pt
p:
  margin: 4pt 8pt
`
	s, err := LoadSheetYAML(strings.NewReader(src))
	require.NoError(t, err)
	if s.Style("h1").Value(Color) != "navy" {
		t.Errorf("expected h1 color navy, is %q", s.Style("h1").Value(Color))
	}
	p := s.Style("p")
	if p.Value(MarginTop) != "4pt" || p.Value(MarginLeft) != "8pt" {
		t.Errorf("expected compound margin to be split, is %s", p)
	}
	s, err = LoadSheetYAML(strings.NewReader(""))
	require.NoError(t, err)
	if s.Len() != 0 {
		t.Errorf("expected empty sheet from empty input")
	}
	_, err = LoadSheetYAML(strings.NewReader("h1: [not, a, map"))
	if err == nil {
		t.Errorf("expected error for malformed YAML")
	}
}

func TestAttributesImmutable(t *testing.T) {
	a := NewAttributes(KeyValue{"Color", "red"}, KeyValue{FontSize, ""})
	if a.Len() != 1 {
		t.Errorf("expected empty properties to be dropped, have %s", a)
	}
	if a.Value(Color) != "red" {
		t.Errorf("expected keys to be lower-cased")
	}
	b := a.With(FontWeight, "bold")
	if a.IsSet(FontWeight) {
		t.Errorf("With modified its receiver")
	}
	if b.Value(FontWeight) != "bold" || b.Value(Color) != "red" {
		t.Errorf("expected b to carry both properties, is %s", b)
	}
	c := b.Merge(NewAttributes(KeyValue{Color, "blue"}))
	if c.Value(Color) != "blue" || c.Value(FontWeight) != "bold" {
		t.Errorf("expected attribute-level merge, have %s", c)
	}
}

func TestPropertyColor(t *testing.T) {
	for _, x := range []struct {
		p  Property
		ok bool
	}{
		{"#fff", true}, {"#1565c0", true}, {"navy", true},
		{"default", false}, {"", false}, {"#12", false}, {"fuchsia-ish", false},
	} {
		if c := x.p.Color(); (c != nil) != x.ok {
			t.Errorf("color of %q: expected ok=%v, got %v", x.p, x.ok, c)
		}
	}
}
