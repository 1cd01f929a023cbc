package markup

import (
	"bytes"
	"strconv"

	"github.com/npillmayer/mdrender/ast"
	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// converter converts goldmark syntax trees into document trees.
type converter struct {
	source    []byte
	softBreak string // replacement for soft line breaks
}

// children converts the children of a goldmark node. Raw inline HTML tags
// among the children open and close elements (see inlineHTML); adjacent
// text nodes are merged.
func (cv *converter) children(n gast.Node) []ast.Node {
	b := newInlineBuilder()
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if raw, ok := ch.(*gast.RawHTML); ok {
			b.rawHTML(cv.segments(raw.Segments))
			continue
		}
		for _, c := range cv.convert(ch) {
			b.append(c)
		}
	}
	return b.close()
}

// convert converts a single goldmark node. Some nodes convert to more than
// one document node (text with hard line break) or to none.
func (cv *converter) convert(n gast.Node) []ast.Node {
	switch x := n.(type) {
	case *gast.Text:
		return cv.text(x)
	case *gast.String:
		return one(ast.NewText(string(x.Value)))
	case *gast.TextBlock:
		return cv.children(x) // tight list items carry their inlines directly
	case *gast.Paragraph:
		return cv.element(ast.TagParagraph, nil, x)
	case *gast.Heading:
		return cv.element("h"+strconv.Itoa(x.Level), nil, x)
	case *gast.ThematicBreak:
		return one(ast.NewElement(ast.TagRule, nil))
	case *gast.Blockquote:
		return cv.element(ast.TagBlockquote, nil, x)
	case *gast.CodeBlock:
		return cv.codeBlock(x, "")
	case *gast.FencedCodeBlock:
		return cv.codeBlock(x, string(x.Language(cv.source)))
	case *gast.CodeSpan:
		return one(ast.NewElement(ast.TagCode, nil, ast.NewText(cv.plainText(x))))
	case *gast.Emphasis:
		if x.Level >= 2 {
			return cv.element(ast.TagStrong, nil, x)
		}
		return cv.element(ast.TagEmphasis, nil, x)
	case *gast.Link:
		return cv.element(ast.TagLink, linkAttrs(x.Destination, x.Title), x)
	case *gast.AutoLink:
		return one(ast.NewElement(ast.TagLink, linkAttrs(x.URL(cv.source), nil),
			ast.NewText(string(x.Label(cv.source)))))
	case *gast.Image:
		attrs := map[string]string{
			"src": string(x.Destination),
			"alt": cv.plainText(x),
		}
		if len(x.Title) > 0 {
			attrs["title"] = string(x.Title)
		}
		return one(ast.NewElement(ast.TagImage, attrs))
	case *gast.List:
		if x.IsOrdered() {
			return cv.element(ast.TagOrdered, map[string]string{"start": strconv.Itoa(x.Start)}, x)
		}
		return cv.element(ast.TagUnordered, nil, x)
	case *gast.ListItem:
		return cv.element(ast.TagListItem, nil, x)
	case *gast.HTMLBlock:
		return blockHTML(cv.htmlBlockSource(x))
	case *TaskMarker:
		return one(ast.NewCheckbox(x.Checked))
	}
	if r, ok := cv.convertExtension(n); ok {
		return r
	}
	tracer().Debugf("unknown markdown node kind %s, keeping its children", n.Kind())
	return cv.children(n)
}

// convertExtension converts nodes of goldmark's GFM extensions.
func (cv *converter) convertExtension(n gast.Node) ([]ast.Node, bool) {
	switch x := n.(type) {
	case *extast.Strikethrough:
		return cv.element(ast.TagDelete, nil, x), true
	case *extast.Table:
		return cv.table(x), true
	case *extast.FootnoteLink:
		idx := strconv.Itoa(x.Index)
		a := ast.NewElement(ast.TagLink, map[string]string{"href": "#fn:" + idx}, ast.NewText(idx))
		return one(ast.NewElement(ast.TagSup, map[string]string{"class": "footnote-ref"}, a)), true
	case *extast.FootnoteBacklink:
		idx := strconv.Itoa(x.Index)
		return one(ast.NewElement(ast.TagLink, map[string]string{"href": "#fnref:" + idx},
			ast.NewText("↩"))), true
	case *extast.FootnoteList:
		ol := ast.NewElement(ast.TagOrdered, map[string]string{"start": "1"}, cv.children(x)...)
		return one(ast.NewElement(ast.TagSection, map[string]string{"class": "footnotes"}, ol)), true
	case *extast.Footnote:
		attrs := map[string]string{"id": "fn:" + strconv.Itoa(x.Index)}
		return cv.element(ast.TagListItem, attrs, x), true
	}
	return nil, false
}

func (cv *converter) element(tag string, attrs map[string]string, n gast.Node) []ast.Node {
	return one(ast.NewElement(tag, attrs, cv.children(n)...))
}

func (cv *converter) text(t *gast.Text) []ast.Node {
	s := string(cv.textValue(t))
	if t.SoftLineBreak() {
		s += cv.softBreak
	}
	r := []ast.Node{ast.NewText(s)}
	if t.HardLineBreak() {
		r = append(r, ast.NewElement(ast.TagBreak, nil))
	}
	return r
}

// codeBlock converts to <pre><code>…</code></pre>. The code text keeps its
// final newline; stripping it is a matter of rendering.
func (cv *converter) codeBlock(n gast.Node, lang string) []ast.Node {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(cv.source))
	}
	var attrs map[string]string
	if lang != "" {
		attrs = map[string]string{"class": "language-" + lang}
	}
	code := ast.NewElement(ast.TagCode, attrs, ast.NewText(buf.String()))
	return one(ast.NewElement(ast.TagPre, nil, code))
}

func (cv *converter) table(t *extast.Table) []ast.Node {
	thead := ast.NewElement(ast.TagTableHead, nil)
	tbody := ast.NewElement(ast.TagTableBody, nil)
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *extast.TableHeader:
			thead.Append(cv.tableRow(row, ast.TagTableHCell))
		case *extast.TableRow:
			tbody.Append(cv.tableRow(row, ast.TagTableCell))
		}
	}
	table := ast.NewElement(ast.TagTable, nil, thead)
	if len(tbody.Children) > 0 {
		table.Append(tbody)
	}
	return one(table)
}

func (cv *converter) tableRow(row gast.Node, cellTag string) *ast.Element {
	tr := ast.NewElement(ast.TagTableRow, nil)
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cell, ok := c.(*extast.TableCell)
		if !ok {
			continue
		}
		var attrs map[string]string
		if cell.Alignment != extast.AlignNone {
			attrs = map[string]string{"align": cell.Alignment.String()}
		}
		tr.Append(ast.NewElement(cellTag, attrs, cv.children(cell)...))
	}
	return tr
}

// plainText concatenates the text below a goldmark node, e.g. for image alt
// texts and code spans.
func (cv *converter) plainText(n gast.Node) string {
	var buf bytes.Buffer
	var collect func(gast.Node)
	collect = func(n gast.Node) {
		for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
			switch x := ch.(type) {
			case *gast.Text:
				buf.Write(cv.textValue(x))
				if x.SoftLineBreak() || x.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *gast.String:
				buf.Write(x.Value)
			default:
				collect(ch)
			}
		}
	}
	collect(n)
	return buf.String()
}

// textValue returns the document text of a text node. Backslash escapes and
// entity references are resolved, except for raw text as in code spans.
func (cv *converter) textValue(t *gast.Text) []byte {
	v := t.Segment.Value(cv.source)
	if t.IsRaw() {
		return v
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

func (cv *converter) segments(segs *text.Segments) string {
	var buf bytes.Buffer
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		buf.Write(seg.Value(cv.source))
	}
	return buf.String()
}

func (cv *converter) htmlBlockSource(n *gast.HTMLBlock) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(cv.source))
	}
	if n.HasClosure() {
		buf.Write(n.ClosureLine.Value(cv.source))
	}
	return buf.String()
}

func linkAttrs(dest, title []byte) map[string]string {
	attrs := map[string]string{"href": string(dest)}
	if len(title) > 0 {
		attrs["title"] = string(title)
	}
	return attrs
}

func one(n ast.Node) []ast.Node {
	return []ast.Node{n}
}
