package markup

import (
	"io"
	"strings"

	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// inlineBuilder collects the converted children of a block. Raw inline HTML
// start tags open an element which receives all following siblings until
// the matching end tag. Unclosed elements are closed implicitly at the end
// of the block, stray end tags are ignored.
type inlineBuilder struct {
	root  *ast.Element
	stack []*ast.Element
}

func newInlineBuilder() *inlineBuilder {
	root := &ast.Element{}
	return &inlineBuilder{root: root, stack: []*ast.Element{root}}
}

func (b *inlineBuilder) top() *ast.Element {
	return b.stack[len(b.stack)-1]
}

func (b *inlineBuilder) append(n ast.Node) {
	top := b.top()
	if t, ok := n.(*ast.Text); ok && len(top.Children) > 0 {
		if last, ok := top.Children[len(top.Children)-1].(*ast.Text); ok {
			last.Content += t.Content
			return
		}
	}
	top.Children = append(top.Children, n)
}

func (b *inlineBuilder) close() []ast.Node {
	if len(b.stack) > 1 {
		tracer().Debugf("%d unclosed inline HTML elements", len(b.stack)-1)
	}
	return b.root.Children
}

func (b *inlineBuilder) rawHTML(src string) {
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				tracer().Infof("inline HTML %q: %v", src, z.Err())
			}
			return
		case html.StartTagToken:
			tok := z.Token()
			el := ast.NewElement(tok.Data, attributes(tok.Attr))
			b.append(el)
			if !isVoid(tok.DataAtom) {
				b.stack = append(b.stack, el)
			}
		case html.SelfClosingTagToken:
			tok := z.Token()
			b.append(ast.NewElement(tok.Data, attributes(tok.Attr)))
		case html.EndTagToken:
			b.end(z.Token().Data)
		case html.TextToken:
			b.append(ast.NewText(z.Token().Data))
		}
	}
}

// end closes the innermost open element with the given tag.
func (b *inlineBuilder) end(tag string) {
	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i].Tag == tag {
			b.stack = b.stack[:i]
			return
		}
	}
	tracer().Debugf("ignoring stray end tag </%s>", tag)
}

func isVoid(a atom.Atom) bool {
	switch a {
	case atom.Br, atom.Img, atom.Hr, atom.Input, atom.Wbr, atom.Meta, atom.Link:
		return true
	}
	return false
}

// blockHTML parses an HTML block as a body fragment. If parsing fails, the
// raw source is kept as text.
func blockHTML(src string) []ast.Node {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		tracer().Infof("cannot parse HTML block: %v", err)
		return one(ast.NewText(src))
	}
	var r []ast.Node
	for _, n := range nodes {
		if c := fromHTML(n, true); c != nil {
			r = append(r, c)
		}
	}
	return r
}

// fromHTML converts an HTML node. Whitespace-only text in block context is
// dropped.
func fromHTML(n *html.Node, blockContext bool) ast.Node {
	switch n.Type {
	case html.TextNode:
		if blockContext && strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return ast.NewText(n.Data)
	case html.ElementNode:
		el := ast.NewElement(n.Data, attributes(n.Attr))
		block := style.DisplayForTag(n.Data) != style.DisplayInline
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			el.Append(fromHTML(ch, block))
		}
		return el
	}
	return nil
}

func attributes(attrs []html.Attribute) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Val
	}
	return m
}
