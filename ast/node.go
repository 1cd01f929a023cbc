package ast

import (
	"fmt"
	"strings"
)

// Node is the sum type of document tree nodes: either *Text or *Element.
type Node interface {
	node()
	String() string
}

// Text is a run of character data.
type Text struct {
	Content string
}

func (*Text) node() {}

func (t *Text) String() string {
	return fmt.Sprintf("%q", t.Content)
}

// Element is a tagged node with attributes and children.
type Element struct {
	Tag        string
	Attributes map[string]string
	Children   []Node
}

func (*Element) node() {}

func (el *Element) String() string {
	return fmt.Sprintf("<%s #ch=%d>", el.Tag, len(el.Children))
}

// NewText creates a text node.
func NewText(s string) *Text {
	return &Text{Content: s}
}

// NewElement creates an element node with the given children.
// Nil children are skipped.
func NewElement(tag string, attrs map[string]string, children ...Node) *Element {
	el := &Element{Tag: tag, Attributes: attrs}
	for _, ch := range children {
		if ch != nil {
			el.Children = append(el.Children, ch)
		}
	}
	return el
}

// Attr returns the value of an attribute, together with an indicator
// wether it is set. Elements without attributes are legal.
func (el *Element) Attr(key string) (string, bool) {
	if el == nil || el.Attributes == nil {
		return "", false
	}
	v, ok := el.Attributes[key]
	return v, ok
}

// AttrOr returns the value of an attribute or a default.
func (el *Element) AttrOr(key, def string) string {
	if v, ok := el.Attr(key); ok {
		return v
	}
	return def
}

// Append adds child nodes. It returns the element to allow for chaining.
func (el *Element) Append(children ...Node) *Element {
	for _, ch := range children {
		if ch != nil {
			el.Children = append(el.Children, ch)
		}
	}
	return el
}

// --- Helpers ---------------------------------------------------------------

// TextContent returns the text of a node and all its descendents.
func TextContent(n Node) string {
	var sb strings.Builder
	textContent(n, &sb)
	return sb.String()
}

func textContent(n Node, sb *strings.Builder) {
	switch x := n.(type) {
	case *Text:
		sb.WriteString(x.Content)
	case *Element:
		for _, ch := range x.Children {
			textContent(ch, sb)
		}
	}
}

// WalkFunc is called for every node during Walk. Returning false stops
// descending into the children of an element.
type WalkFunc func(n Node, depth int) bool

// Walk visits a sequence of nodes in pre-order.
func Walk(nodes []Node, f WalkFunc) {
	for _, n := range nodes {
		walk(n, 0, f)
	}
}

func walk(n Node, depth int, f WalkFunc) {
	if n == nil || !f(n, depth) {
		return
	}
	if el, ok := n.(*Element); ok {
		for _, ch := range el.Children {
			walk(ch, depth+1, f)
		}
	}
}

// FindElements collects all elements with a given tag, in document order.
func FindElements(nodes []Node, tag string) []*Element {
	var r []*Element
	Walk(nodes, func(n Node, _ int) bool {
		if el, ok := n.(*Element); ok && el.Tag == tag {
			r = append(r, el)
		}
		return true
	})
	tracer().Debugf("found %d elements <%s>", len(r), tag)
	return r
}
