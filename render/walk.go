package render

import (
	"strings"

	"github.com/npillmayer/mdrender/interact"
)

// Walk visits render nodes in pre-order. Returning false from f stops
// descending into the children of a container.
func Walk(nodes []Node, f func(n Node, depth int) bool) {
	for _, n := range nodes {
		walk(n, 0, f)
	}
}

func walk(n Node, depth int, f func(Node, int) bool) {
	if n == nil || !f(n, depth) {
		return
	}
	if c, ok := n.(*Container); ok {
		for _, ch := range c.Children {
			walk(ch, depth+1, f)
		}
	}
}

// Handles collects the interaction handles of all tap-producing nodes,
// in document order.
func Handles(nodes ...Node) []interact.ID {
	var ids []interact.ID
	Walk(nodes, func(n Node, _ int) bool {
		switch x := n.(type) {
		case *Span:
			if x.Handle != interact.NoHandle {
				ids = append(ids, x.Handle)
			}
		case *Container:
			if x.Handle != interact.NoHandle {
				ids = append(ids, x.Handle)
			}
		}
		return true
	})
	return ids
}

// PlainText concatenates the text of all spans.
func PlainText(nodes ...Node) string {
	var sb strings.Builder
	Walk(nodes, func(n Node, _ int) bool {
		if s, ok := n.(*Span); ok {
			sb.WriteString(s.Text)
		}
		return true
	})
	return sb.String()
}

// Equal compares two render trees structurally. If ignoreHandles is set,
// handle IDs are only compared for presence, not for identity. Leaf content
// is compared with ==, if comparable.
func Equal(a, b Node, ignoreHandles bool) bool {
	switch x := a.(type) {
	case *Span:
		y, ok := b.(*Span)
		return ok && x.Text == y.Text && x.Style.Equal(y.Style) &&
			sameHandle(x.Handle, y.Handle, ignoreHandles)
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.Kind == y.Kind && x.Style.Equal(y.Style) && sameContent(x.Content, y.Content)
	case *Container:
		y, ok := b.(*Container)
		if !ok || x.Tag != y.Tag || x.Display != y.Display || x.Align != y.Align ||
			!x.Style.Equal(y.Style) || !sameHandle(x.Handle, y.Handle, ignoreHandles) ||
			len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i], ignoreHandles) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// EqualSequences compares two sequences of render nodes with Equal.
func EqualSequences(a, b []Node, ignoreHandles bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i], ignoreHandles) {
			return false
		}
	}
	return true
}

func sameHandle(a, b interact.ID, ignoreIdentity bool) bool {
	if ignoreIdentity {
		return (a == interact.NoHandle) == (b == interact.NoHandle)
	}
	return a == b
}

func sameContent(a, b interface{}) (eq bool) {
	defer func() {
		if recover() != nil { // uncomparable content
			eq = false
		}
	}()
	return a == b
}
