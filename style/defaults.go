package style

import (
	"github.com/npillmayer/tyse/core/dimen"
)

// DefaultFontSize is the font size used when no sheet sets one.
var DefaultFontSize = 12 * dimen.PT

// DefaultAttributes returns the engine-defined root properties. Every
// cascade starts with these, so no lookup of an inheritable property will
// ever come back empty.
func DefaultAttributes() Attributes {
	return NewAttributes(
		KeyValue{FontFamily, "sans-serif"},
		KeyValue{FontSize, PointsProperty(DefaultFontSize)},
		KeyValue{FontStyle, "normal"},
		KeyValue{FontWeight, "normal"},
		KeyValue{TextDecoration, "none"},
		KeyValue{TextAlign, "start"},
		KeyValue{Color, "#000000"},
		KeyValue{LineHeight, "normal"},
	)
}

// Fallback returns the built-in sheet. Client sheets are usually merged
// on top of it:
//
//     sheet := style.Fallback().Merge(mySheet)
//
func Fallback() *Sheet {
	return SheetFromMap(map[string]map[string]string{
		"p":          {MarginBottom: "8pt"},
		"h1":         {FontSize: "2em", FontWeight: "bold", MarginBottom: "8pt"},
		"h2":         {FontSize: "1.5em", FontWeight: "bold", MarginBottom: "8pt"},
		"h3":         {FontSize: "1.25em", FontWeight: "bold", MarginBottom: "8pt"},
		"h4":         {FontSize: "1em", FontWeight: "bold", MarginBottom: "8pt"},
		"h5":         {FontSize: "0.875em", FontWeight: "bold", MarginBottom: "8pt"},
		"h6":         {FontSize: "0.85em", FontWeight: "bold", MarginBottom: "8pt"},
		"em":         {FontStyle: "italic"},
		"strong":     {FontWeight: "bold"},
		"del":        {TextDecoration: "line-through"},
		"code":       {FontFamily: "monospace", FontSize: "0.85em", BackgroundColor: "#eeeeee"},
		"pre":        {"padding": "8pt", BackgroundColor: "#eeeeee", WhiteSpace: "pre"},
		"a":          {Color: "#1565c0", TextDecoration: "underline"},
		"blockquote": {"padding": "8pt", BackgroundColor: "#e3f2fd"},
		"li":         {MarginBottom: "2pt"},
		"th":         {FontWeight: "bold", TextAlign: "center", "padding": "4pt"},
		"td":         {TextAlign: "start", "padding": "4pt"},
		"hr":         {"border-top": "1pt solid #bdbdbd"},
		"sup":        {FontSize: "0.75em"},
		"sub":        {FontSize: "0.75em"},
		KeyListBullet: {FontSize: "1em"},
		KeyCheckbox:   {FontSize: "1em"},
	})
}

// --- Display ---------------------------------------------------------------

// Display tells how a tag is composed with its siblings.
type Display uint8

// Display modes.
const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	DisplayListItem
)

func (d Display) String() string {
	switch d {
	case DisplayBlock:
		return "block"
	case DisplayInline:
		return "inline"
	case DisplayListItem:
		return "list-item"
	}
	return "none"
}

// DisplayForTag returns the default display mode for a tag.
func DisplayForTag(tag string) Display {
	switch tag {
	case "head", "style", "script", "title", "meta", "link":
		return DisplayNone
	case "li":
		return DisplayListItem
	case "p", "html", "body", "div", "aside", "section", "article", "header", "footer",
		"h1", "h2", "h3", "h4", "h5", "h6", "ol", "ul", "pre", "blockquote",
		"hr", "table", "thead", "tbody", "tr", "th", "td", "dl", "dt", "dd", "figure":
		return DisplayBlock
	case "a", "em", "i", "b", "strong", "span", "code", "del", "s", "strike", "u",
		"sub", "sup", "kbd", "mark", "small", "abbr", "q", "cite", "br", "img", "input":
		return DisplayInline
	}
	tracer().Infof("unknown element <%s> will be set to display: inline", tag)
	return DisplayInline
}
