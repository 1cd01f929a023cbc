package compiler

import (
	"fmt"

	"github.com/npillmayer/mdrender/interact"
	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/style"
)

// Callbacks are the caller-injectable render and tap functions. Every
// callback is optional; see the Default… functions for what is used instead.
// A render callback returning nil also falls back to the default.
type Callbacks struct {
	Image     func(uri, title, alt string) render.Node
	Checkbox  func(checked bool) render.Node
	Bullet    func(index int, kind render.BulletKind) render.Node
	Code      func(code string, st style.Attributes) render.Node // syntax formatter for code blocks
	OnTapLink interact.LinkTapFunc
	OnTapText interact.TextTapFunc
}

// DefaultImage returns a placeholder leaf for an image.
func DefaultImage(uri, title, alt string, st style.Attributes) render.Node {
	return &render.Leaf{
		Kind:    render.LeafImage,
		Style:   st,
		Content: render.ImagePlaceholder{URI: uri, Title: title, Alt: alt},
	}
}

// DefaultCheckbox returns a glyph leaf for a task-list marker.
func DefaultCheckbox(checked bool, st style.Attributes) render.Node {
	g := render.GlyphUnchecked
	if checked {
		g = render.GlyphChecked
	}
	return &render.Leaf{Kind: render.LeafCheckbox, Style: st, Content: g}
}

// DefaultBullet returns a glyph leaf for a list bullet. Ordered lists are
// numbered starting with start.
func DefaultBullet(index int, kind render.BulletKind, start int, st style.Attributes) render.Node {
	g := render.GlyphBullet
	if kind == render.OrderedList {
		g = render.Glyph(fmt.Sprintf("%d.", start+index))
	}
	return &render.Leaf{Kind: render.LeafBullet, Style: st, Content: g}
}
