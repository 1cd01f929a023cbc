package style

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Style keys for constructs which have no tag of their own.
const (
	KeyListBullet = "listBullet"
	KeyCheckbox   = "checkbox"
	KeyCodeBlock  = "pre"
	KeyParagraph  = "p"
	KeyEmphasis   = "em"
	KeyStrong     = "strong"
	KeyCode       = "code"
	KeyLink       = "a"
	KeyBlockquote = "blockquote"
)

// Sheet is an immutable mapping from style keys to attribute sets.
// nil is a legal (empty) sheet.
type Sheet struct {
	styles map[string]Attributes
}

// NewSheet creates a sheet from a map of style keys to attribute sets.
// The map is copied.
func NewSheet(entries map[string]Attributes) *Sheet {
	s := &Sheet{styles: make(map[string]Attributes, len(entries))}
	for k, v := range entries {
		s.styles[k] = v
	}
	return s
}

// SheetFromMap creates a sheet from plain string maps, e.g. as read
// from a configuration file:
//
//     h1:
//       font-size: 24pt
//       color: navy
//
func SheetFromMap(m map[string]map[string]string) *Sheet {
	s := &Sheet{styles: make(map[string]Attributes, len(m))}
	for k, props := range m {
		s.styles[k] = AttributesFromMap(props)
	}
	return s
}

// LoadSheetYAML reads a sheet in YAML format (see SheetFromMap).
func LoadSheetYAML(r io.Reader) (*Sheet, error) {
	var m map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if err == io.EOF {
			return NewSheet(nil), nil
		}
		return nil, fmt.Errorf("style sheet: cannot decode YAML: %w", err)
	}
	return SheetFromMap(m), nil
}

// Lookup returns the attribute set for a style key, together with an
// indicator wether the key is present.
func (s *Sheet) Lookup(key string) (Attributes, bool) {
	if s == nil {
		return Attributes{}, false
	}
	a, ok := s.styles[key]
	return a, ok
}

// Style returns the attribute set for a style key. Absent keys resolve to the
// empty attribute set; the cascade will then supply the defaults.
func (s *Sheet) Style(key string) Attributes {
	a, _ := s.Lookup(key)
	return a
}

// Len returns the number of style keys.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.styles)
}

// Keys returns all style keys in sorted order.
func (s *Sheet) Keys() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.styles)
}

// Merge creates a new sheet where, for every style key, the override's
// attribute set is used if present, else the attribute set of s.
// If override is nil, s is returned. Neither sheet is modified.
func (s *Sheet) Merge(override *Sheet) *Sheet {
	if override == nil {
		return s
	}
	m := &Sheet{styles: make(map[string]Attributes, s.Len()+override.Len())}
	if s != nil {
		for k, v := range s.styles {
			m.styles[k] = v
		}
	}
	for k, v := range override.styles {
		m.styles[k] = v
	}
	tracer().Debugf("merged style sheets: %d + %d keys => %d keys", s.Len(), override.Len(), m.Len())
	return m
}

// With returns a new sheet with the attribute set of one key replaced.
func (s *Sheet) With(key string, a Attributes) *Sheet {
	return s.Merge(&Sheet{styles: map[string]Attributes{key: a}})
}

// Equal compares two sheets key by key.
func (s *Sheet) Equal(other *Sheet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, k := range s.Keys() {
		b, ok := other.Lookup(k)
		if !ok || !s.styles[k].Equal(b) {
			return false
		}
	}
	return true
}

func (s *Sheet) String() string {
	str := "Sheet = {\n"
	for _, k := range s.Keys() {
		str += fmt.Sprintf("  %s %s\n", k, s.styles[k])
	}
	return str + "}"
}
