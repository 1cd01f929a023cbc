/*
Package render defines the render tree, the output of compiling a document tree.

Overview

A render tree consists of three kinds of nodes:

    *Span       a run of text with resolved style, optionally tappable
    *Container  a styled, ordered group of children (block or inline)
    *Leaf       opaque content produced by a caller (image, checkbox, bullet, …)

Render trees are plain values. They are owned by whoever requested the
compilation and are replaced wholesale by the next pass; there is no
incremental update.

How render trees are painted is up to the host. This package only offers
composition of top-level nodes (Compose) according to a host policy.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdrender.render'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender.render")
}
