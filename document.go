package mdrender

import (
	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/compiler"
	"github.com/npillmayer/mdrender/interact"
	"github.com/npillmayer/mdrender/markup"
	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/style"
	"github.com/npillmayer/mdrender/style/cssom/douceuradapter"
	"github.com/yuin/goldmark/util"
)

// Document renders markdown source into render trees. Its zero value is not
// usable; create documents with New.
type Document struct {
	opts        Options
	sheet       *style.Sheet // client sheet, merged over style.Fallback()
	builders    *compiler.BuilderRegistry
	callbacks   compiler.Callbacks
	blockRules  []util.PrioritizedValue
	inlineRules []util.PrioritizedValue
	parser      *markup.Parser
	base        *style.Sheet // fallback ⊕ client sheet ⊕ option styles
	registry    *interact.Registry
	controller  interface{} // scroll controller, see WithScrollController
}

// New creates a document renderer. Options are applied in order, so
// WithOptions should come first if it is combined with other options.
func New(opts ...Option) *Document {
	d := &Document{registry: interact.NewRegistry()}
	for _, opt := range opts {
		opt(d)
	}
	d.parser = markup.NewParser(
		markup.WithProfile(d.opts.profile()),
		markup.WithBlockRules(d.blockRules...),
		markup.WithInlineRules(d.inlineRules...),
		markup.WithSoftBreaksAsNewlines(d.opts.SoftBreaks),
	)
	d.base = style.Fallback().Merge(d.sheet).Merge(d.opts.sheet())
	tracer().Debugf("new document with %d style keys", d.base.Len())
	return d
}

// WithSheet sets a client style sheet, e.g. one loaded from CSS with
// douceuradapter.ParseSheet. Styles from the options take precedence.
func WithSheet(sheet *style.Sheet) Option {
	return func(d *Document) { d.sheet = sheet }
}

// WithBuilders sets custom element builders.
func WithBuilders(builders *compiler.BuilderRegistry) Option {
	return func(d *Document) { d.builders = builders }
}

// WithCallbacks sets render and tap callbacks.
func WithCallbacks(cb compiler.Callbacks) Option {
	return func(d *Document) { d.callbacks = cb }
}

// WithBlockRules adds goldmark block parsers.
func WithBlockRules(rules ...util.PrioritizedValue) Option {
	return func(d *Document) { d.blockRules = append(d.blockRules, rules...) }
}

// WithInlineRules adds goldmark inline parsers. The task-list rule is always
// active in addition to these.
func WithInlineRules(rules ...util.PrioritizedValue) Option {
	return func(d *Document) { d.inlineRules = append(d.inlineRules, rules...) }
}

// Options returns the options of the document.
func (d *Document) Options() Options {
	return d.opts
}

// Sheet returns the style sheet used for documents without embedded styles.
func (d *Document) Sheet() *style.Sheet {
	return d.base
}

// Registry returns the interaction registry holding the handles of the most
// recent render pass.
func (d *Document) Registry() *interact.Registry {
	return d.registry
}

// Render renders markdown source. See RenderLines.
func (d *Document) Render(source string) render.Node {
	return d.RenderLines(markup.SplitLines(source))
}

// RenderLines parses lines of markdown and compiles them into a render tree.
// Interaction handles of the previous render pass are disposed before
// compilation starts.
func (d *Document) RenderLines(lines []string) render.Node {
	nodes := d.parser.Parse(lines)
	return d.RenderAST(nodes)
}

// RenderAST compiles a document tree, as produced by a markup parser, into a
// render tree.
func (d *Document) RenderAST(nodes []ast.Node) render.Node {
	sheet := d.base
	if d.opts.EmbeddedStyles {
		sheet = sheet.Merge(douceuradapter.EmbeddedSheet(nodes))
	}
	c := compiler.New(sheet, d.builders, d.callbacks,
		compiler.WithSelectable(d.opts.Selectable),
		compiler.WithImageDirectory(d.opts.ImageDirectory),
		compiler.WithBulletAlignment(d.opts.alignment()),
		compiler.WithTextHookInCode(d.opts.textHookInCode()),
	)
	arena := d.registry.Begin()
	out := c.Compile(nodes, arena)
	tracer().Debugf("render pass %d: %d blocks, %d handles", d.registry.Pass(), len(out), arena.Len())
	comp := d.opts.composition()
	comp.Controller = d.controller
	return render.Compose(out, comp)
}

// Tap fires the callback of a live interaction handle. A new render pass
// waits for the callback to return, so callbacks must not render the document
// themselves but schedule it.
func (d *Document) Tap(id interact.ID) error {
	return d.registry.Tap(id)
}

// Dispose disposes all interaction handles of the document.
func (d *Document) Dispose() {
	d.registry.Clear()
}
