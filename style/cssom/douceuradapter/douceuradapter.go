/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/style"
	"github.com/npillmayer/mdrender/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdrender.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS source text.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSS: %w", err)
	}
	return Wrap(c), nil
}

// ParseSheet parses CSS source text and converts it to a style sheet.
func ParseSheet(source string) (*style.Sheet, error) {
	c, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return cssom.ToSheet(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. At-rules
// (@media, @import, …) are not supported and are left out.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.Declarations {
		if d.Property == key {
			v = style.Property(d.Value)
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key && d.Important {
			return true
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements searches a document tree for <style> elements.
// It returns the content of style-elements as style sheets. Style elements
// which fail to parse are skipped.
func ExtractStyleElements(doc []ast.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for _, el := range ast.FindElements(doc, ast.TagStyle) {
		c, err := Parse(ast.TextContent(el))
		if err != nil {
			tracer().Infof("skipping embedded style element: %v", err)
			continue
		}
		sheets = append(sheets, c)
	}
	return sheets
}

// EmbeddedSheet converts all <style> elements of a document tree into one
// style sheet. Returns nil if there are none.
func EmbeddedSheet(doc []ast.Node) *style.Sheet {
	sheets := ExtractStyleElements(doc)
	if len(sheets) == 0 {
		return nil
	}
	ss := make([]cssom.StyleSheet, len(sheets))
	for i, s := range sheets {
		ss[i] = s
	}
	return cssom.ToSheet(ss...)
}
