/*
Package style implements style sheets and the style cascade for render trees.

Overview

A Sheet maps semantic style keys to attribute sets. Keys are tag names of
the document tree ("p", "em", "h1", …) plus a few keys for constructs
without a tag of their own, e.g. "listBullet" or "checkbox".
Sheets are immutable: Merge produces a new sheet where an override sheet wins
per key over the base sheet.

Attributes is an opaque bag of properties, modelled after CSS declarations:

    font-weight: bold
    color: #1565c0

Properties are classified by the way they combine along an ancestor chain
(see InheritanceOf):

    Additive   font-style, font-weight and text-decoration compose across ancestors
    Inherited  color, font-size, font-family, … are taken from the nearest ancestor
    Local      margins, paddings, backgrounds apply to a single node only

Cascade is the value which is passed down a recursive render pass. Every
level pushes its own attributes and receives a new Cascade; no cascade is ever
mutated, so independent passes never share state.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'mdrender.style'
func tracer() tracing.Trace {
	return tracing.Select("mdrender.style")
}
