package interact

import "fmt"

// ID identifies an interaction handle. The zero ID denotes "no handle".
type ID uint64

// NoHandle is the zero ID.
const NoHandle ID = 0

// Kind distinguishes link taps from text taps.
type Kind uint8

const (
	LinkTap Kind = iota + 1
	TextTap
)

func (k Kind) String() string {
	switch k {
	case LinkTap:
		return "link"
	case TextTap:
		return "text"
	}
	return "none"
}

// LinkTapFunc is called when a link is tapped. href is empty if the link has
// no destination.
type LinkTapFunc func(text, href, title string)

// TextTapFunc is called when a text span is tapped. offset is the position of
// the span's first rune within the text of the render pass.
type TextTapFunc func(text string, offset int)

// Handle binds a tappable region to a callback.
type Handle struct {
	ID     ID
	Kind   Kind
	Text   string // link text or tapped text
	Href   string // link destination (links only)
	Title  string // link title (links only)
	Offset int    // rune offset (text taps only)
	Pass   uint64 // render pass which created the handle

	onLink   LinkTapFunc
	onText   TextTapFunc
	disposed bool
}

func (h *Handle) String() string {
	if h.Kind == LinkTap {
		return fmt.Sprintf("handle#%d(link %q → %q)", h.ID, h.Text, h.Href)
	}
	return fmt.Sprintf("handle#%d(text %q @%d)", h.ID, h.Text, h.Offset)
}

// Disposed is true if the handle's pass has been superseded.
func (h *Handle) Disposed() bool {
	return h.disposed
}

func (h *Handle) fire() {
	switch h.Kind {
	case LinkTap:
		if h.onLink != nil {
			h.onLink(h.Text, h.Href, h.Title)
		}
	case TextTap:
		if h.onText != nil {
			h.onText(h.Text, h.Offset)
		}
	}
}

func (h *Handle) dispose() {
	h.disposed = true
	h.onLink = nil
	h.onText = nil
}
