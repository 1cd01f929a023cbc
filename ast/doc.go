/*
Package ast defines the document tree a markdown parser hands to the render compiler.

Overview

The tree is deliberately small: a node is either a run of text or an element
carrying a tag name, a set of attributes and an ordered list of children.
Tag names follow HTML where HTML has a name for the construct (p, em, a, img, li,
...), so raw HTML embedded in markdown and markdown constructs share one
vocabulary. Task-list markers are elements with tag "input" and
attribute type="checkbox".

Trees are produced by package markup and are read-only for every consumer.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdrender.ast'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender.ast")
}
