package markup

import (
	"strings"
	"testing"

	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func dumpDoc(nodes []ast.Node) string {
	var sb strings.Builder
	ast.Walk(nodes, func(n ast.Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.String())
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func TestParseBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	doc := Parse(SplitLines("# Title\n\nSome *emphasis* and **strong** text.\n\n---\n\n> quoted"))
	t.Logf("doc =\n%s", dumpDoc(doc))
	require.Len(t, doc, 4)
	tags := []string{ast.TagH1, ast.TagParagraph, ast.TagRule, ast.TagBlockquote}
	for i, tag := range tags {
		el, ok := doc[i].(*ast.Element)
		if !ok || el.Tag != tag {
			t.Errorf("expected block %d to be <%s>, is %s", i, tag, doc[i])
		}
	}
	if len(ast.FindElements(doc, ast.TagEmphasis)) != 1 || len(ast.FindElements(doc, ast.TagStrong)) != 1 {
		t.Errorf("expected one em and one strong element")
	}
}

func TestParseCodeBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	doc := Parse(SplitLines("```go\nfmt.Println(1)\n```"))
	require.Len(t, doc, 1)
	codes := ast.FindElements(doc, ast.TagCode)
	require.Len(t, codes, 1)
	if codes[0].AttrOr("class", "") != "language-go" {
		t.Errorf("expected language class, have %v", codes[0].Attributes)
	}
	if ast.TextContent(codes[0]) != "fmt.Println(1)\n" {
		t.Errorf("expected code text with final newline, have %q", ast.TextContent(codes[0]))
	}
}

func TestParseOrderedListStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	doc := Parse(SplitLines("3. three\n4. four"))
	lists := ast.FindElements(doc, ast.TagOrdered)
	require.Len(t, lists, 1)
	if lists[0].AttrOr("start", "") != "3" {
		t.Errorf("expected start=3, have %v", lists[0].Attributes)
	}
	if len(lists[0].Children) != 2 {
		t.Errorf("expected 2 list items, have %d", len(lists[0].Children))
	}
}

func TestParseInlineHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	doc := Parse([]string{"H<sub>2</sub>O and x<sup>2</sup>"})
	t.Logf("doc =\n%s", dumpDoc(doc))
	subs := ast.FindElements(doc, "sub")
	require.Len(t, subs, 1)
	if ast.TextContent(subs[0]) != "2" {
		t.Errorf("expected <sub> to contain '2', contains %q", ast.TextContent(subs[0]))
	}
	p := doc[0].(*ast.Element)
	if ast.TextContent(p) != "H2O and x2" {
		t.Errorf("unexpected paragraph text %q", ast.TextContent(p))
	}
	if len(ast.FindElements(doc, ast.TagSup)) != 1 {
		t.Errorf("expected a <sup> element")
	}
}

func TestParseHTMLBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	doc := Parse(SplitLines("<style>\nh1 { color: navy }\n</style>\n\n# Heading"))
	t.Logf("doc =\n%s", dumpDoc(doc))
	styles := ast.FindElements(doc, ast.TagStyle)
	require.Len(t, styles, 1)
	if !strings.Contains(ast.TextContent(styles[0]), "color: navy") {
		t.Errorf("expected style content to be kept, is %q", ast.TextContent(styles[0]))
	}
	if len(ast.FindElements(doc, ast.TagH1)) != 1 {
		t.Errorf("expected heading after HTML block")
	}
}

func TestParseGFMTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	src := "| a | b |\n|:--|--:|\n| 1 | 2 |"
	doc := Parse(SplitLines(src))
	t.Logf("doc =\n%s", dumpDoc(doc))
	tables := ast.FindElements(doc, ast.TagTable)
	require.Len(t, tables, 1)
	if n := len(ast.FindElements(doc, ast.TagTableHCell)); n != 2 {
		t.Errorf("expected 2 header cells, have %d", n)
	}
	cells := ast.FindElements(doc, ast.TagTableCell)
	require.Len(t, cells, 2)
	if cells[1].AttrOr("align", "") != "right" {
		t.Errorf("expected second column to be right aligned, is %v", cells[1].Attributes)
	}
	// CommonMark profile leaves the table as text
	doc = Parse(SplitLines(src), WithProfile(ProfileCommonMark))
	if len(ast.FindElements(doc, ast.TagTable)) != 0 {
		t.Errorf("expected no table with CommonMark profile")
	}
}

func TestParseStrikethroughAndAutolink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	doc := Parse([]string{"~~gone~~ see https://example.org"})
	if len(ast.FindElements(doc, ast.TagDelete)) != 1 {
		t.Errorf("expected a <del> element")
	}
	links := ast.FindElements(doc, ast.TagLink)
	require.Len(t, links, 1)
	if links[0].AttrOr("href", "") != "https://example.org" {
		t.Errorf("expected autolink, have %v", links[0].Attributes)
	}
}

func TestSoftBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	lines := []string{"one", "two"}
	if s := ast.TextContent(Parse(lines)[0]); s != "one two" {
		t.Errorf("expected soft break as space, have %q", s)
	}
	if s := ast.TextContent(Parse(lines, WithSoftBreaksAsNewlines(true))[0]); s != "one\ntwo" {
		t.Errorf("expected soft break as newline, have %q", s)
	}
}

func TestParseEscapesAndEntities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.markup")
	defer teardown()
	//
	tests := []struct {
		src, text string
	}{
		{`a \*b\* c`, "a *b* c"},
		{`x &amp; y &copy;`, "x & y ©"},
		{`&#35; and &#x41;`, "# and A"},
	}
	for _, tt := range tests {
		doc := Parse([]string{tt.src})
		if s := ast.TextContent(doc[0]); s != tt.text {
			t.Errorf("expected %q to parse to %q, got %q", tt.src, tt.text, s)
		}
	}
	// code spans keep their text verbatim
	doc := Parse([]string{"`a \\* &amp;`"})
	code := ast.FindElements(doc, ast.TagCode)
	require.Len(t, code, 1)
	if s := ast.TextContent(code[0]); s != `a \* &amp;` {
		t.Errorf("expected code span text to be raw, got %q", s)
	}
	// alt texts are resolved like text
	doc = Parse([]string{`![Tom &amp; \*Jerry\*](tj.png)`})
	img := ast.FindElements(doc, ast.TagImage)
	require.Len(t, img, 1)
	if alt := img[0].AttrOr("alt", ""); alt != "Tom & *Jerry*" {
		t.Errorf("expected resolved alt text, got %q", alt)
	}
}
