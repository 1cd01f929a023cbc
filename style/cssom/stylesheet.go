package cssom

import (
	"strings"

	"github.com/npillmayer/mdrender/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of style.Sheet, we introduce an interface
// for CSS stylesheets. Clients will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// ToSheet converts CSS stylesheets into a style sheet. Sheets are applied
// in order.
func ToSheet(sheets ...StyleSheet) *style.Sheet {
	entries := make(map[string]map[string]style.Property)
	important := make(map[string]bool)
	for _, sh := range sheets {
		if sh == nil || sh.Empty() {
			continue
		}
		for _, rule := range sh.Rules() {
			for _, key := range selectorKeys(rule.Selector()) {
				props := entries[key]
				if props == nil {
					props = make(map[string]style.Property)
					entries[key] = props
				}
				for _, p := range rule.Properties() {
					applyDeclaration(props, important, key, p, rule.Value(p), rule.IsImportant(p))
				}
			}
		}
	}
	m := make(map[string]style.Attributes, len(entries))
	for key, props := range entries {
		kv := make([]style.KeyValue, 0, len(props))
		for k, v := range props {
			kv = append(kv, style.KeyValue{Key: k, Value: v})
		}
		m[key] = style.NewAttributes(kv...)
	}
	tracer().Debugf("converted CSS into style sheet with %d keys", len(m))
	return style.NewSheet(m)
}

func applyDeclaration(props map[string]style.Property, important map[string]bool,
	key, p string, v style.Property, isImportant bool) {
	//
	decls := []style.KeyValue{{Key: p, Value: v}}
	if parts, err := style.SplitCompoundProperty(p, v); err == nil {
		decls = parts
	}
	for _, d := range decls {
		id := key + "|" + d.Key
		if important[id] && !isImportant {
			continue
		}
		props[d.Key] = d.Value
		if isImportant {
			important[id] = true
		}
	}
}

// selectorKeys splits a selector group into simple style keys.
func selectorKeys(prelude string) []string {
	var keys []string
	for _, sel := range strings.Split(prelude, ",") {
		sel = strings.TrimSpace(sel)
		if !isSimpleSelector(sel) {
			tracer().Infof("CSS selector %q not supported, skipping", sel)
			continue
		}
		keys = append(keys, sel)
	}
	return keys
}

func isSimpleSelector(sel string) bool {
	if sel == "" {
		return false
	}
	for _, r := range sel {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
