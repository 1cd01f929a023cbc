package render

import (
	"testing"

	"github.com/npillmayer/mdrender/interact"
	"github.com/npillmayer/mdrender/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func para(text string, h interact.ID) *Container {
	return &Container{
		Tag:      "p",
		Display:  style.DisplayBlock,
		Children: []Node{&Span{Text: text, Handle: h}},
	}
}

func TestComposeSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.render")
	defer teardown()
	//
	p := para("one", 0)
	if Compose([]Node{p}, Composition{}) != p {
		t.Errorf("expected single node to be returned standalone")
	}
}

func TestComposeSeveral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.render")
	defer teardown()
	//
	nodes := []Node{para("one", 0), para("two", 0)}
	c, ok := Compose(nodes, Composition{ShrinkWrap: true}).(*Container)
	if !ok || c.Tag != TagColumn {
		t.Fatalf("expected column container, got %v", c)
	}
	if c.Compose == nil || !c.Compose.ShrinkWrap {
		t.Errorf("expected composition policy to be passed through")
	}
	if PlainText(c) != "onetwo" {
		t.Errorf("expected order to be preserved, text is %q", PlainText(c))
	}
	nodes[0] = nil
	if c.Children[0] == nil {
		t.Errorf("expected composed children to be a copy of the input")
	}
	empty, ok := Compose(nil, Composition{}).(*Container)
	if !ok || len(empty.Children) != 0 {
		t.Errorf("expected empty column for empty input")
	}
	s, ok := Compose([]Node{para("x", 0)}, Composition{Mode: ComposeScroll, Padding: "16pt"}).(*Container)
	if !ok || s.Tag != TagScroll || s.Compose.Padding != "16pt" {
		t.Errorf("expected scroll container with padding, got %v", s)
	}
}

func TestHandlesAndEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.render")
	defer teardown()
	//
	a := []Node{para("one", 1), &Container{Tag: "a", Handle: 2, Children: []Node{&Span{Text: "x"}}}}
	b := []Node{para("one", 7), &Container{Tag: "a", Handle: 8, Children: []Node{&Span{Text: "x"}}}}
	ids := Handles(a...)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("expected handles [1 2], have %v", ids)
	}
	if !EqualSequences(a, b, true) {
		t.Errorf("expected trees to be equal ignoring handle identities")
	}
	if EqualSequences(a, b, false) {
		t.Errorf("expected trees to differ in handle identities")
	}
	c := []Node{para("one", 0), b[1]}
	if EqualSequences(a, c, true) {
		t.Errorf("expected missing handle to make a difference")
	}
	l1 := &Leaf{Kind: LeafCustom, Content: []int{1}}
	l2 := &Leaf{Kind: LeafCustom, Content: []int{1}}
	if Equal(l1, l2, true) {
		t.Errorf("expected uncomparable leaf content to compare unequal")
	}
}

func TestParseAlignment(t *testing.T) {
	if a, ok := ParseAlignment("start"); !ok || a != AlignStart {
		t.Errorf("cannot parse 'start'")
	}
	if a, ok := ParseAlignment("middle"); ok || a != AlignBaseline {
		t.Errorf("expected unknown alignment to fall back to baseline")
	}
}
