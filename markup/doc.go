/*
Package markup parses markdown into document trees (package ast).

Overview

Parsing is done by goldmark (https://github.com/yuin/goldmark). The goldmark
syntax tree is then converted into the small tag/attribute/children tree of
package ast. Raw HTML found in the markdown, inline or as blocks, is parsed
with golang.org/x/net/html and becomes ordinary elements, so that
`H<sub>2</sub>O` yields an element <sub> which custom builders may address.

Clients may add goldmark block and inline parsers. The task-list inline rule of
this package is always registered in addition to them, with a priority which
makes it run before the link parser, so "[ ]" and "[x]" at the start of an
inline run are never left as literal text.

Profiles select sets of goldmark extensions:

    ProfileCommonMark   plain CommonMark
    ProfileGitHub       tables, strikethrough, autolinks and footnotes

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdrender.markup'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender.markup")
}
