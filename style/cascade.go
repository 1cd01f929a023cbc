package style

import (
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Cascade accumulates effective style properties as a render pass descends
// the document tree. A Cascade is a value: Push returns a new Cascade and
// leaves the receiver untouched.
//
// Combination rules per property (see InheritanceOf):
//
// - Additive properties compose: italic inside bold yields italic and bold,
// underline inside line-through yields both decorations.
//
// - Inherited properties are taken from the nearest ancestor setting them.
// Relative font sizes (em, %) are resolved against the inherited size.
//
// - Local properties are not passed on to children.
type Cascade struct {
	inherited Attributes // inheritable properties accumulated from ancestors
	local     Attributes // local properties of the current level
	scopes    []string   // chain of style keys from root to current level
}

// NewCascade creates a root cascade. Properties of root act as the
// engine-defined defaults for keys no sheet sets.
func NewCascade(root Attributes) Cascade {
	c := Cascade{}
	return c.Push("", root)
}

// Push enters a new level with the given own attributes and returns a new
// cascade.
func (c Cascade) Push(key string, own Attributes) Cascade {
	m := c.inherited.clone(own.Len())
	var local map[string]Property
	for _, k := range own.Keys() {
		p := own.props[k]
		if p.IsInherit() {
			if v, ok := c.Style().Get(k); ok {
				p = v
			} else {
				continue
			}
		}
		switch InheritanceOf(k) {
		case Additive:
			m[k] = combineAdditive(k, m[k], p)
		case Inherited:
			if k == FontSize {
				p = resolveFontSize(m[k], p)
			}
			m[k] = p
		default:
			if local == nil {
				local = make(map[string]Property)
			}
			local[k] = p
		}
	}
	n := Cascade{
		inherited: Attributes{props: m},
		local:     Attributes{props: local},
		scopes:    make([]string, len(c.scopes), len(c.scopes)+1),
	}
	copy(n.scopes, c.scopes)
	if key != "" {
		n.scopes = append(n.scopes, key)
	}
	return n
}

// Style returns the effective attributes for the current level.
func (c Cascade) Style() Attributes {
	return c.inherited.Merge(c.local)
}

// Inherited returns the inheritable part of the effective attributes, i.e.
// what a child level starts with.
func (c Cascade) Inherited() Attributes {
	return c.inherited
}

// Within is true if a style key is on the current scope chain.
func (c Cascade) Within(key string) bool {
	for _, s := range c.scopes {
		if s == key {
			return true
		}
	}
	return false
}

// Depth returns the number of levels pushed, excluding the root.
func (c Cascade) Depth() int {
	return len(c.scopes)
}

// Path returns a CSS-like path showing the scope chain, e.g. "blockquote > p > em".
func (c Cascade) Path() string {
	if len(c.scopes) == 0 {
		return "(root)"
	}
	return strings.Join(c.scopes, " > ")
}

// FontSize returns the effective font size.
func (c Cascade) FontSize() dimen.DU {
	d, err := ParseDimen(c.inherited.Value(FontSize))
	if err != nil {
		return DefaultFontSize
	}
	return d.Resolve(DefaultFontSize)
}

func resolveFontSize(parent, own Property) Property {
	d, err := ParseDimen(own)
	if err != nil {
		return own
	}
	if d.IsAbsolute() {
		return d.Property()
	}
	base := DefaultFontSize
	if pd, err := ParseDimen(parent); err == nil {
		base = pd.Resolve(DefaultFontSize)
	}
	return PointsProperty(d.Resolve(base))
}

func combineAdditive(key string, parent, own Property) Property {
	if parent.IsEmpty() {
		return own
	}
	switch key {
	case FontWeight:
		if own.Weight() > parent.Weight() {
			return WeightProperty(own.Weight())
		}
		return WeightProperty(parent.Weight())
	case FontStyle:
		if own == "normal" || own.IsEmpty() {
			return parent
		}
		return own
	case TextDecoration:
		return unionDecorations(parent, own)
	}
	return own
}

func unionDecorations(a, b Property) Property {
	var r []string
	seen := make(map[string]bool)
	for _, tok := range append(strings.Fields(a.String()), strings.Fields(b.String())...) {
		if tok == "none" || seen[tok] {
			continue
		}
		seen[tok] = true
		r = append(r, tok)
	}
	if len(r) == 0 {
		return "none"
	}
	return Property(strings.Join(r, " "))
}
