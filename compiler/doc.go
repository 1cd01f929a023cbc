/*
Package compiler compiles document trees into render trees.

Overview

A Compiler walks the block and inline nodes produced by package markup and
produces an ordered sequence of render nodes (package render). While
descending, it resolves styles with a style.Cascade, delegates images,
task-list checkboxes and list bullets to caller-supplied callbacks and
registers tappable regions with an interact.Sink.

Custom builders

Clients may take over the rendering of any tag by registering an
ElementBuilder. Dispatch for an element with a registered builder is:

    1. BeforeChildren(element)
    2. compile the element by the default rules; text nodes below the element
       are offered to VisitText(text, style) first
    3. AfterChildren(element, style): a non-nil result replaces the default
       rendering of step 2 verbatim

Handles registered while compiling children which AfterChildren
discards are rolled back, so the live handles of a pass always correspond to
tap-producing nodes of the output.

Concurrency

A Compiler is immutable after construction; Compile may be called for
independent documents concurrently, each with its own interact.Sink.
Passes for one document must be serialized by the host.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compiler

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdrender.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender.compiler")
}
