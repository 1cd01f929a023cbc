package style

import (
	"sort"
	"strings"
)

// Attributes is an immutable set of style properties. The zero value is
// a legal empty attribute set.
//
// All operations which change properties return a new value; the receiver
// is never modified. This allows attribute sets to be shared freely between
// sheets, cascades and render nodes.
type Attributes struct {
	props map[string]Property
}

// NewAttributes creates an attribute set from key-value pairs. Later pairs
// overwrite earlier ones. Empty values are dropped.
func NewAttributes(kv ...KeyValue) Attributes {
	if len(kv) == 0 {
		return Attributes{}
	}
	m := make(map[string]Property, len(kv))
	for _, p := range kv {
		if p.Value.IsEmpty() {
			continue
		}
		m[normKey(p.Key)] = Property(strings.TrimSpace(p.Value.String()))
	}
	return Attributes{props: m}
}

// AttributesFromMap creates an attribute set from a plain map.
// Compound properties (margin, padding) are split into their components.
func AttributesFromMap(m map[string]string) Attributes {
	kv := make([]KeyValue, 0, len(m))
	for _, k := range sortedKeys(m) {
		v := Property(m[k])
		if parts, err := SplitCompoundProperty(normKey(k), v); err == nil {
			kv = append(kv, parts...)
			continue
		}
		kv = append(kv, KeyValue{k, v})
	}
	return NewAttributes(kv...)
}

func normKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// Get returns a property value, together with an indicator
// wether it has been found in the attribute set.
func (a Attributes) Get(key string) (Property, bool) {
	p, ok := a.props[key]
	return p, ok
}

// Value returns a property value or NullStyle.
func (a Attributes) Value(key string) Property {
	return a.props[key]
}

// IsSet is a predicated wether a property is set.
func (a Attributes) IsSet(key string) bool {
	p, ok := a.props[key]
	return ok && !p.IsEmpty()
}

// Len returns the number of properties.
func (a Attributes) Len() int {
	return len(a.props)
}

// IsEmpty is true if no property is set.
func (a Attributes) IsEmpty() bool {
	return len(a.props) == 0
}

// Keys returns the property keys in sorted order.
func (a Attributes) Keys() []string {
	return sortedKeys(a.props)
}

// Properties returns all properties, sorted by key.
func (a Attributes) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(a.props))
	for _, k := range a.Keys() {
		r = append(r, KeyValue{k, a.props[k]})
	}
	return r
}

// With returns a copy of a with one property set. Setting NullStyle removes
// the property.
func (a Attributes) With(key string, p Property) Attributes {
	m := a.clone(1)
	key = normKey(key)
	if p.IsEmpty() {
		delete(m, key)
	} else {
		m[key] = p
	}
	return Attributes{props: m}
}

// Merge returns a copy of a where every property set in other overwrites
// the property of a. This is attribute-level, not record-level, replacement.
func (a Attributes) Merge(other Attributes) Attributes {
	if other.IsEmpty() {
		return a
	}
	if a.IsEmpty() {
		return other
	}
	m := a.clone(len(other.props))
	for k, v := range other.props {
		m[k] = v
	}
	return Attributes{props: m}
}

// Equal compares two attribute sets property by property.
func (a Attributes) Equal(other Attributes) bool {
	if len(a.props) != len(other.props) {
		return false
	}
	for k, v := range a.props {
		if w, ok := other.props[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// Group returns all properties belonging to a property group, sorted by key.
func (a Attributes) Group(groupname string) []KeyValue {
	var r []KeyValue
	for _, kv := range a.Properties() {
		if GroupNameFromPropertyKey(kv.Key) == groupname {
			r = append(r, kv)
		}
	}
	return r
}

// String is a stringer for attribute sets, used for debugging.
func (a Attributes) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, kv := range a.Properties() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(kv.Key)
		sb.WriteString(": ")
		sb.WriteString(kv.Value.String())
	}
	sb.WriteString("}")
	return sb.String()
}

func (a Attributes) clone(extra int) map[string]Property {
	m := make(map[string]Property, len(a.props)+extra)
	for k, v := range a.props {
		m[k] = v
	}
	return m
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
