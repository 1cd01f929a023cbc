package render

import (
	"fmt"

	"github.com/npillmayer/mdrender/interact"
	"github.com/npillmayer/mdrender/style"
)

// Node is the sum type of render nodes: *Span, *Container or *Leaf.
type Node interface {
	node()
	String() string
}

// Span is a run of text with resolved style.
type Span struct {
	Text   string
	Style  style.Attributes
	Handle interact.ID // tappable if ≠ interact.NoHandle
}

func (*Span) node() {}

func (s *Span) String() string {
	if s.Handle != interact.NoHandle {
		return fmt.Sprintf("span %q ⟶#%d", s.Text, s.Handle)
	}
	return fmt.Sprintf("span %q", s.Text)
}

// Container is a styled group of render nodes.
type Container struct {
	Tag      string        // originating tag or a composition tag (TagColumn, TagScroll, …)
	Display  style.Display // block or inline composition with siblings
	Style    style.Attributes
	Handle   interact.ID        // tappable region, e.g. for links
	Align    CrossAxisAlignment // list items: alignment of bullet and content
	Compose  *Composition       // top-level composition policy, nil for ordinary containers
	Children []Node
}

func (*Container) node() {}

func (c *Container) String() string {
	s := fmt.Sprintf("<%s %s #ch=%d>", c.Tag, c.Display, len(c.Children))
	if c.Handle != interact.NoHandle {
		s += fmt.Sprintf(" ⟶#%d", c.Handle)
	}
	if c.Tag == TagListItem {
		s += " align=" + c.Align.String()
	}
	return s
}

// Composition tags for containers which do not originate from an element.
const (
	TagColumn   = "#column"  // vertical sequence of blocks
	TagScroll   = "#scroll"  // scrollable vertical sequence
	TagListItem = "li"       // bullet + content
	TagContent  = "#content" // content part of a list item
)

// LeafKind tells what a leaf represents.
type LeafKind uint8

const (
	LeafCustom LeafKind = iota
	LeafImage
	LeafCheckbox
	LeafBullet
	LeafRule
	LeafCode
)

func (k LeafKind) String() string {
	switch k {
	case LeafImage:
		return "image"
	case LeafCheckbox:
		return "checkbox"
	case LeafBullet:
		return "bullet"
	case LeafRule:
		return "rule"
	case LeafCode:
		return "code"
	}
	return "custom"
}

// Leaf wraps content produced by a caller-supplied render callback, or a
// default stand-in if no callback is configured.
type Leaf struct {
	Kind    LeafKind
	Style   style.Attributes
	Content interface{}
}

func (*Leaf) node() {}

func (l *Leaf) String() string {
	return fmt.Sprintf("leaf(%s) %v", l.Kind, l.Content)
}

// --- Default leaf content --------------------------------------------------

// ImagePlaceholder is the content of default image leafs.
type ImagePlaceholder struct {
	URI   string
	Title string
	Alt   string
}

func (img ImagePlaceholder) String() string {
	return fmt.Sprintf("[image %s]", img.URI)
}

// Glyph is the content of default checkbox and bullet leafs.
type Glyph string

func (g Glyph) String() string {
	return string(g)
}

// Checkbox glyphs.
const (
	GlyphChecked   Glyph = "☑"
	GlyphUnchecked Glyph = "☐"
	GlyphBullet    Glyph = "•"
)

// --- Lists -----------------------------------------------------------------

// BulletKind tells if a bullet belongs to an ordered or an unordered list.
type BulletKind uint8

const (
	UnorderedList BulletKind = iota
	OrderedList
)

func (k BulletKind) String() string {
	if k == OrderedList {
		return "ordered"
	}
	return "unordered"
}

// CrossAxisAlignment is the policy for aligning a list bullet with the
// list item's content. Baseline alignment is exact for text content, but
// cannot be used with hosts which need intrinsic heights; start alignment
// works everywhere but may be off for content with large first lines.
type CrossAxisAlignment uint8

const (
	AlignBaseline CrossAxisAlignment = iota
	AlignStart
)

func (a CrossAxisAlignment) String() string {
	if a == AlignStart {
		return "start"
	}
	return "baseline"
}

// ParseAlignment reads "baseline" or "start". Other values return AlignBaseline
// and false.
func ParseAlignment(s string) (CrossAxisAlignment, bool) {
	switch s {
	case "baseline", "":
		return AlignBaseline, true
	case "start":
		return AlignStart, true
	}
	return AlignBaseline, false
}
