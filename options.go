package mdrender

import (
	"fmt"
	"io"

	"github.com/npillmayer/mdrender/markup"
	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/style"
	"gopkg.in/yaml.v3"
)

// Options is the configuration of a Document. It may be read from YAML:
//
//     selectable: true
//     imageDirectory: assets/img
//     bulletAlignment: start
//     profile: commonmark
//     composition:
//       mode: scroll
//       padding: 16pt
//       physics: bouncing
//     styles:
//       h1:
//         color: navy
//
type Options struct {
	Selectable      bool                         `yaml:"selectable"`
	ImageDirectory  string                       `yaml:"imageDirectory"`
	BulletAlignment string                       `yaml:"bulletAlignment"` // baseline | start
	Profile         string                       `yaml:"profile"`         // gfm | commonmark
	SoftBreaks      bool                         `yaml:"softBreaks"`      // keep soft line breaks as newlines
	TextHookInCode  *bool                        `yaml:"textHookInCode"`  // default true
	EmbeddedStyles  bool                         `yaml:"embeddedStyles"`  // honor <style> elements in the source
	Composition     CompositionOptions           `yaml:"composition"`
	Styles          map[string]map[string]string `yaml:"styles"`
}

// CompositionOptions configure how top-level blocks are composed.
type CompositionOptions struct {
	Mode       string `yaml:"mode"` // body | scroll
	ShrinkWrap bool   `yaml:"shrinkWrap"`
	FitContent bool   `yaml:"fitContent"`
	Padding    string `yaml:"padding"`
	Physics    string `yaml:"physics"` // host specific
}

// LoadOptions reads options in YAML format. An empty input results in
// zero options.
func LoadOptions(r io.Reader) (Options, error) {
	var opts Options
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("mdrender options: cannot decode YAML: %w", err)
	}
	return opts, nil
}

// Option is a functional option for New.
type Option func(*Document)

// WithOptions replaces the whole option set, e.g. with the result of
// LoadOptions.
func WithOptions(o Options) Option {
	return func(d *Document) { d.opts = o }
}

// WithSelectable makes every text span outside of links tappable.
func WithSelectable(b bool) Option {
	return func(d *Document) { d.opts.Selectable = b }
}

// WithImageDirectory sets the prefix for relative image URIs.
func WithImageDirectory(dir string) Option {
	return func(d *Document) { d.opts.ImageDirectory = dir }
}

// WithBulletAlignment sets the alignment of list bullets with their content.
func WithBulletAlignment(a render.CrossAxisAlignment) Option {
	return func(d *Document) { d.opts.BulletAlignment = a.String() }
}

// WithProfile selects the markdown extension profile.
func WithProfile(p markup.Profile) Option {
	return func(d *Document) { d.opts.Profile = p.String() }
}

// WithSoftBreaksAsNewlines keeps soft line breaks as newlines instead of
// spaces.
func WithSoftBreaksAsNewlines(b bool) Option {
	return func(d *Document) { d.opts.SoftBreaks = b }
}

// WithTextHookInCode decides wether custom builders' VisitText hooks see text
// inside code.
func WithTextHookInCode(b bool) Option {
	return func(d *Document) { d.opts.TextHookInCode = &b }
}

// WithEmbeddedStyles honors <style> elements in the markdown source.
func WithEmbeddedStyles(b bool) Option {
	return func(d *Document) { d.opts.EmbeddedStyles = b }
}

// WithScrolling composes top-level blocks into a scrollable column with
// the given padding.
func WithScrolling(padding string) Option {
	return func(d *Document) {
		d.opts.Composition.Mode = render.ComposeScroll.String()
		d.opts.Composition.Padding = padding
	}
}

// WithShrinkWrap lets the top-level column take only the space its children
// need.
func WithShrinkWrap(b bool) Option {
	return func(d *Document) { d.opts.Composition.ShrinkWrap = b }
}

// WithFitContent keeps the children of the top-level column at their own
// width instead of stretching them.
func WithFitContent(b bool) Option {
	return func(d *Document) { d.opts.Composition.FitContent = b }
}

// WithScrollPhysics sets the host specific scroll physics hint.
func WithScrollPhysics(physics string) Option {
	return func(d *Document) { d.opts.Composition.Physics = physics }
}

// WithScrollController hands a host specific scroll controller to every
// composed scroll container. It is not part of Options, as it cannot be
// read from YAML.
func WithScrollController(ctrl interface{}) Option {
	return func(d *Document) { d.controller = ctrl }
}

// WithStyles sets style overrides per style key.
func WithStyles(styles map[string]map[string]string) Option {
	return func(d *Document) { d.opts.Styles = styles }
}

// --- Interpretation --------------------------------------------------------

func (o Options) sheet() *style.Sheet {
	if len(o.Styles) == 0 {
		return nil
	}
	return style.SheetFromMap(o.Styles)
}

func (o Options) alignment() render.CrossAxisAlignment {
	if o.BulletAlignment == "" {
		return render.AlignBaseline
	}
	a, ok := render.ParseAlignment(o.BulletAlignment)
	if !ok {
		tracer().Infof("unknown bullet alignment %q, using baseline", o.BulletAlignment)
	}
	return a
}

func (o Options) profile() markup.Profile {
	if o.Profile == "" {
		return markup.ProfileGitHub
	}
	p, ok := markup.ParseProfile(o.Profile)
	if !ok {
		tracer().Infof("unknown markdown profile %q, using %s", o.Profile, p)
	}
	return p
}

func (o Options) textHookInCode() bool {
	return o.TextHookInCode == nil || *o.TextHookInCode
}

func (o Options) composition() render.Composition {
	c := render.Composition{
		ShrinkWrap: o.Composition.ShrinkWrap,
		FitContent: o.Composition.FitContent,
		Padding:    style.Property(o.Composition.Padding),
		Physics:    o.Composition.Physics,
	}
	switch o.Composition.Mode {
	case "", "body":
	case "scroll":
		c.Mode = render.ComposeScroll
	default:
		tracer().Infof("unknown composition mode %q, using body", o.Composition.Mode)
	}
	return c
}
