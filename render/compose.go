package render

import "github.com/npillmayer/mdrender/style"

// CompositionMode selects how top-level render nodes are composed.
type CompositionMode uint8

const (
	// ComposeBody places a single node standalone and several nodes in a
	// vertical column.
	ComposeBody CompositionMode = iota
	// ComposeScroll always places the nodes in a scrollable column.
	ComposeScroll
)

func (m CompositionMode) String() string {
	if m == ComposeScroll {
		return "scroll"
	}
	return "body"
}

// Composition is the host's policy for composing top-level nodes. Apart from
// Mode, all fields are hints which are passed through to the host untouched.
type Composition struct {
	Mode       CompositionMode
	ShrinkWrap bool           // column takes only the space its children need
	FitContent bool           // children are stretched to the column's width if false
	Padding    style.Property // padding of scrollable containers, e.g. "16pt"
	Physics    string         // scroll physics hint, host specific
	Controller interface{}    // scroll controller, host specific
}

// Compose composes an ordered sequence of top-level nodes.
//
// With ComposeBody, a sequence of exactly one node is returned standalone,
// without a wrapping container; callers embedding the result inline rely
// on this. Longer (and empty) sequences are wrapped into a vertical column
// preserving their order.
//
// With ComposeScroll the nodes are always wrapped into a scrollable column.
func Compose(nodes []Node, c Composition) Node {
	if c.Mode == ComposeBody && len(nodes) == 1 {
		return nodes[0]
	}
	tag := TagColumn
	if c.Mode == ComposeScroll {
		tag = TagScroll
	}
	children := make([]Node, len(nodes))
	copy(children, nodes)
	comp := c
	tracer().Debugf("composing %d nodes into %s", len(nodes), tag)
	return &Container{
		Tag:      tag,
		Display:  style.DisplayBlock,
		Compose:  &comp,
		Children: children,
	}
}
