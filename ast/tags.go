package ast

// Tag names produced by package markup. Raw HTML may introduce any other tag.
const (
	TagParagraph  = "p"
	TagH1         = "h1"
	TagH2         = "h2"
	TagH3         = "h3"
	TagH4         = "h4"
	TagH5         = "h5"
	TagH6         = "h6"
	TagEmphasis   = "em"
	TagStrong     = "strong"
	TagDelete     = "del"
	TagCode       = "code"
	TagPre        = "pre"
	TagLink       = "a"
	TagImage      = "img"
	TagBreak      = "br"
	TagRule       = "hr"
	TagBlockquote = "blockquote"
	TagOrdered    = "ol"
	TagUnordered  = "ul"
	TagListItem   = "li"
	TagInput      = "input"
	TagTable      = "table"
	TagTableHead  = "thead"
	TagTableBody  = "tbody"
	TagTableRow   = "tr"
	TagTableHCell = "th"
	TagTableCell  = "td"
	TagSection    = "section"
	TagSup        = "sup"
	TagStyle      = "style"
)

// NewCheckbox creates a task-list marker element.
func NewCheckbox(checked bool) *Element {
	attrs := map[string]string{
		"type":     "checkbox",
		"disabled": "true",
	}
	if checked {
		attrs["checked"] = "true"
	}
	return NewElement(TagInput, attrs)
}

// IsCheckbox is a predicate for task-list marker elements.
func IsCheckbox(n Node) bool {
	el, ok := n.(*Element)
	if !ok || el.Tag != TagInput {
		return false
	}
	return el.AttrOr("type", "") == "checkbox"
}

// IsChecked returns the checked-state of a task-list marker.
func IsChecked(el *Element) bool {
	v, ok := el.Attr("checked")
	return ok && v != "false"
}

// HeadingLevel returns 1…6 for heading tags and 0 otherwise.
func HeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
