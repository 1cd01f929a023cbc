package mdrender

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/compiler"
	"github.com/npillmayer/mdrender/interact"
	"github.com/npillmayer/mdrender/markup"
	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/render/renderdbg"
	"github.com/npillmayer/mdrender/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestDocumentRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender")
	defer teardown()
	//
	doc := New()
	single := doc.Render("Just one paragraph.")
	if c, ok := single.(*render.Container); !ok || c.Tag != ast.TagParagraph {
		t.Errorf("expected a single paragraph standalone, got %s", single)
	}
	multi := doc.Render("# Title\n\nText")
	t.Logf("render tree =\n%s", renderdbg.Dump(multi))
	if c, ok := multi.(*render.Container); !ok || c.Tag != render.TagColumn || len(c.Children) != 2 {
		t.Errorf("expected a column with 2 blocks, got %s", multi)
	}
}

func TestDocumentHandleGenerations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender")
	defer teardown()
	//
	var hrefs []string
	doc := New(
		WithSelectable(true),
		WithCallbacks(compiler.Callbacks{
			OnTapLink: func(text, href, title string) { hrefs = append(hrefs, href) },
		}),
	)
	first := render.Handles(doc.Render("[one](/1) text"))
	require.Len(t, first, 2)
	second := doc.Render("[two](/2)\n\nmore text")
	ids := render.Handles(second)
	if doc.Registry().Len() != len(ids) {
		t.Errorf("expected %d live handles, have %d", len(ids), doc.Registry().Len())
	}
	for _, id := range first {
		if err := doc.Tap(id); !errors.Is(err, interact.ErrDisposed) {
			t.Errorf("expected handle #%d of previous render to be disposed, err = %v", id, err)
		}
	}
	require.NoError(t, doc.Tap(ids[0]))
	if len(hrefs) != 1 || hrefs[0] != "/2" {
		t.Errorf("expected tap on current link only, have %v", hrefs)
	}
	doc.Dispose()
	if doc.Registry().Len() != 0 {
		t.Errorf("expected no live handles after dispose")
	}
}

func TestLoadOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender")
	defer teardown()
	//
	src := `
selectable: true
imageDirectory: assets
bulletAlignment: start
profile: commonmark
textHookInCode: false
composition:
  mode: scroll
  padding: 12pt
  fitContent: true
  physics: clamping
styles:
  h1:
    color: navy
`
	opts, err := LoadOptions(strings.NewReader(src))
	require.NoError(t, err)
	if !opts.Selectable || opts.ImageDirectory != "assets" || opts.Styles["h1"]["color"] != "navy" {
		t.Errorf("options not read correctly: %+v", opts)
	}
	if opts.alignment() != render.AlignStart || opts.profile() != markup.ProfileCommonMark {
		t.Errorf("expected start alignment and CommonMark profile")
	}
	if opts.textHookInCode() {
		t.Errorf("expected textHookInCode to be switched off")
	}
	comp := opts.composition()
	if comp.Mode != render.ComposeScroll || comp.Padding != "12pt" ||
		!comp.FitContent || comp.Physics != "clamping" {
		t.Errorf("unexpected composition %+v", comp)
	}
	doc := New(WithOptions(opts))
	if doc.Sheet().Style("h1").Value(style.Color) != "navy" {
		t.Errorf("expected option styles to be merged, h1 = %s", doc.Sheet().Style("h1"))
	}
	if doc.Sheet().Style("h1").Value(style.FontWeight) != "" {
		t.Errorf("expected option styles to replace the fallback h1 record")
	}
	tree := doc.Render("- a\n- b")
	sc, ok := tree.(*render.Container)
	require.True(t, ok)
	if sc.Tag != render.TagScroll {
		t.Errorf("expected scroll composition, have %s", sc)
	}
	for _, n := range sc.Children {
		render.Walk([]render.Node{n}, func(n render.Node, _ int) bool {
			if li, ok := n.(*render.Container); ok && li.Tag == render.TagListItem && li.Align != render.AlignStart {
				t.Errorf("expected start aligned list items")
			}
			return true
		})
	}
	empty, err := LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	if empty.textHookInCode() != true || empty.alignment() != render.AlignBaseline {
		t.Errorf("unexpected defaults for empty options")
	}
	if _, err = LoadOptions(strings.NewReader("selectable: [")); err == nil {
		t.Errorf("expected error for malformed options")
	}
}

func TestEmbeddedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender")
	defer teardown()
	//
	src := "<style>\nh1 { color: maroon }\n</style>\n\n# Heading"
	headingColor := func(tree render.Node) style.Property {
		var color style.Property
		render.Walk([]render.Node{tree}, func(n render.Node, _ int) bool {
			if c, ok := n.(*render.Container); ok && c.Tag == ast.TagH1 {
				color = c.Style.Value(style.Color)
			}
			return true
		})
		return color
	}
	plain := New().Render(src)
	if headingColor(plain) == "maroon" {
		t.Errorf("expected embedded styles to be ignored by default")
	}
	if _, ok := plain.(*render.Container); !ok || plain.(*render.Container).Tag != ast.TagH1 {
		t.Errorf("expected <style> not to render, tree is %s", plain)
	}
	styled := New(WithEmbeddedStyles(true)).Render(src)
	if headingColor(styled) != "maroon" {
		t.Errorf("expected embedded style for h1, tree =\n%s", renderdbg.Dump(styled))
	}
}

func TestSubscriptBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender")
	defer teardown()
	//
	sub := &render.Leaf{Kind: render.LeafCustom, Content: "₂"}
	builders := compiler.NewBuilderRegistry().Register("sub", compiler.ElementBuilder{
		AfterChildren: func(el *ast.Element, st style.Attributes) render.Node { return sub },
	})
	tree := New(WithBuilders(builders)).Render("H<sub>2</sub>O")
	found := false
	render.Walk([]render.Node{tree}, func(n render.Node, _ int) bool {
		found = found || n == sub
		return true
	})
	if !found {
		t.Errorf("expected custom node for <sub>, tree =\n%s", renderdbg.Dump(tree))
	}
}

func TestScrollComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender")
	defer teardown()
	//
	type controller struct{ name string }
	ctrl := &controller{name: "main"}
	doc := New(WithScrolling("8pt"), WithScrollPhysics("bouncing"),
		WithFitContent(true), WithShrinkWrap(true), WithScrollController(ctrl))
	sc, ok := doc.Render("# one\n\ntwo").(*render.Container)
	require.True(t, ok)
	require.NotNil(t, sc.Compose)
	comp := sc.Compose
	if sc.Tag != render.TagScroll || comp.Padding != "8pt" || comp.Physics != "bouncing" {
		t.Errorf("unexpected scroll composition %+v", *comp)
	}
	if !comp.FitContent || !comp.ShrinkWrap {
		t.Errorf("expected fit-content and shrink-wrap hints to be set")
	}
	if comp.Controller != ctrl {
		t.Errorf("expected scroll controller to be passed through, have %v", comp.Controller)
	}
}
