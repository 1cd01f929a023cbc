package compiler

import (
	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/interact"
	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/style"
)

// Config holds compile-time policies.
type Config struct {
	Selectable      bool                      // register a text tap for every text span
	ImageDirectory  string                    // prefix for relative image URIs
	BulletAlignment render.CrossAxisAlignment // cross-axis alignment of list bullets
	TextHookInCode  bool                      // offer text in code to VisitText hooks
}

// Option configures a Compiler.
type Option func(*Config)

// WithSelectable switches text taps on or off.
func WithSelectable(b bool) Option {
	return func(c *Config) { c.Selectable = b }
}

// WithImageDirectory sets the prefix for relative image URIs.
func WithImageDirectory(dir string) Option {
	return func(c *Config) { c.ImageDirectory = dir }
}

// WithBulletAlignment sets the alignment of list bullets with their content.
func WithBulletAlignment(a render.CrossAxisAlignment) Option {
	return func(c *Config) { c.BulletAlignment = a }
}

// WithTextHookInCode decides whether custom builders' VisitText hooks see
// text inside code spans and code blocks.
func WithTextHookInCode(b bool) Option {
	return func(c *Config) { c.TextHookInCode = b }
}

// WithConfig replaces the whole configuration.
func WithConfig(conf Config) Option {
	return func(c *Config) { *c = conf }
}

// Compiler compiles document trees into render trees.
type Compiler struct {
	sheet     *style.Sheet
	builders  *BuilderRegistry
	callbacks Callbacks
	config    Config
}

// New creates a compiler. sheet should be complete, i.e. a client sheet
// merged onto style.Fallback(); if sheet is nil, style.Fallback() is used.
// builders may be nil.
func New(sheet *style.Sheet, builders *BuilderRegistry, cb Callbacks, opts ...Option) *Compiler {
	if sheet == nil {
		sheet = style.Fallback()
	}
	c := &Compiler{
		sheet:     sheet,
		builders:  builders,
		callbacks: cb,
		config:    Config{TextHookInCode: true},
	}
	for _, opt := range opts {
		opt(&c.config)
	}
	return c
}

// Sheet returns the style sheet of the compiler.
func (c *Compiler) Sheet() *style.Sheet {
	return c.sheet
}

// Config returns the configuration of the compiler.
func (c *Compiler) Config() Config {
	return c.config
}

// Compile compiles a sequence of document nodes into a sequence of render
// nodes, one per top-level node which renders at all. Interaction handles are
// registered with sink, which may be nil (nothing will be tappable then).
//
// Compile never fails: malformed input degrades to text or generic containers.
func (c *Compiler) Compile(nodes []ast.Node, sink interact.Sink) []render.Node {
	if sink == nil {
		sink = nopSink{}
	}
	p := &pass{Compiler: c, sink: sink}
	root := scope{cascade: style.NewCascade(style.DefaultAttributes())}
	out := p.compileSequence(nodes, root)
	tracer().Debugf("compiled %d document nodes into %d render nodes", len(nodes), len(out))
	return out
}

// --- Pass state ------------------------------------------------------------

// pass holds the mutable state of one compile run.
type pass struct {
	*Compiler
	sink   interact.Sink
	offset int // running rune offset of text, for text taps
}

// listItem is the position of a list item within its list.
type listItem struct {
	index int
	kind  render.BulletKind
	start int
}

// scope is the immutable context passed down the recursion.
type scope struct {
	cascade  style.Cascade
	inLink   bool
	inCode   bool
	inPre    bool
	textHook func(*ast.Text, style.Attributes) render.Node
	item     *listItem
}

func (sc scope) push(key string, own style.Attributes) scope {
	n := sc
	n.cascade = sc.cascade.Push(key, own)
	return n
}

func (p *pass) compileSequence(nodes []ast.Node, sc scope) []render.Node {
	out := make([]render.Node, 0, len(nodes))
	for _, n := range nodes {
		if r := p.compileNode(n, sc); r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (p *pass) compileNode(n ast.Node, sc scope) render.Node {
	switch x := n.(type) {
	case *ast.Text:
		return p.compileText(x, sc)
	case *ast.Element:
		return p.compileElement(x, sc)
	}
	return nil
}

// --- Text ------------------------------------------------------------------

func (p *pass) compileText(t *ast.Text, sc scope) render.Node {
	st := sc.cascade.Style()
	offset := p.advance(t.Content)
	if sc.textHook != nil && (!sc.inCode || p.config.TextHookInCode) {
		if r := sc.textHook(t, st); r != nil {
			return r
		}
	}
	text := t.Content
	if sc.inCode {
		text = stripTrailingNewline(text)
		if sc.inPre && p.callbacks.Code != nil {
			if r := p.callbacks.Code(text, st); r != nil {
				return r
			}
		}
	}
	span := &render.Span{Text: text, Style: st}
	if p.config.Selectable && !sc.inLink {
		span.Handle = p.sink.NewTextTap(text, offset, p.callbacks.OnTapText)
	}
	return span
}

// advance moves the running text offset and returns the offset of s.
func (p *pass) advance(s string) int {
	o := p.offset
	for range s {
		p.offset++
	}
	return o
}

func stripTrailingNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s
}

// --- Elements --------------------------------------------------------------

func (p *pass) compileElement(el *ast.Element, sc scope) render.Node {
	b, hasBuilder := p.builders.Lookup(el.Tag)
	if hasBuilder && b.BeforeChildren != nil {
		b.BeforeChildren(el)
	}
	mark := p.sink.Mark()
	cs := sc.push(el.Tag, p.sheet.Style(el.Tag))
	if hasBuilder && b.VisitText != nil {
		cs.textHook = b.VisitText
	}
	r := p.compileDefault(el, cs)
	if hasBuilder && b.AfterChildren != nil {
		if custom := b.AfterChildren(el, cs.cascade.Style()); custom != nil {
			p.sink.Rollback(mark)
			tracer().Debugf("custom builder for <%s> replaced default rendering", el.Tag)
			return custom
		}
	}
	return r
}

// compileDefault applies the built-in rules for an element. cs is the
// element's own scope, i.e. its style has already been pushed.
func (p *pass) compileDefault(el *ast.Element, cs scope) render.Node {
	item := cs.item
	cs.item = nil
	switch {
	case ast.IsCheckbox(el):
		return p.compileCheckbox(el, cs)
	case el.Tag == ast.TagLink:
		return p.compileLink(el, cs)
	case el.Tag == ast.TagImage:
		return p.compileImage(el, cs)
	case el.Tag == ast.TagOrdered || el.Tag == ast.TagUnordered:
		return p.compileList(el, cs)
	case el.Tag == ast.TagListItem:
		return p.compileListItem(el, item, cs)
	case el.Tag == ast.TagPre:
		cs.inPre, cs.inCode = true, true
	case el.Tag == ast.TagCode:
		cs.inCode = true
	case el.Tag == ast.TagBreak:
		p.advance("\n")
		return &render.Span{Text: "\n", Style: cs.cascade.Style()}
	case el.Tag == ast.TagRule:
		return &render.Leaf{Kind: render.LeafRule, Style: cs.cascade.Style()}
	}
	display := style.DisplayForTag(el.Tag)
	if display == style.DisplayNone {
		return nil
	}
	return &render.Container{
		Tag:      el.Tag,
		Display:  display,
		Style:    cs.cascade.Style(),
		Children: p.compileSequence(el.Children, cs),
	}
}

func (p *pass) compileLink(el *ast.Element, cs scope) render.Node {
	href := el.AttrOr("href", "")
	title := el.AttrOr("title", "")
	id := p.sink.NewLink(ast.TextContent(el), href, title, p.callbacks.OnTapLink)
	cs.inLink = true
	return &render.Container{
		Tag:      el.Tag,
		Display:  style.DisplayInline,
		Style:    cs.cascade.Style(),
		Handle:   id,
		Children: p.compileSequence(el.Children, cs),
	}
}

func (p *pass) compileCheckbox(el *ast.Element, cs scope) render.Node {
	checked := ast.IsChecked(el)
	st := cs.cascade.Push(style.KeyCheckbox, p.sheet.Style(style.KeyCheckbox)).Style()
	if p.callbacks.Checkbox != nil {
		if r := p.callbacks.Checkbox(checked); r != nil {
			return r
		}
	}
	return DefaultCheckbox(checked, st)
}

// nopSink is used if Compile is called without a sink.
type nopSink struct{}

func (nopSink) NewLink(string, string, string, interact.LinkTapFunc) interact.ID {
	return interact.NoHandle
}
func (nopSink) NewTextTap(string, int, interact.TextTapFunc) interact.ID { return interact.NoHandle }
func (nopSink) Mark() int                                                 { return 0 }
func (nopSink) Rollback(int)                                              {}
