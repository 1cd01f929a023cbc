/*
Package mdrender renders markdown documents into styled, interactive render trees.

A Document bundles everything needed to turn markdown source into a render
tree: a parser configuration, a style sheet, custom element builders,
render callbacks, and a registry for interaction handles. Every call to
Render starts a new generation of interaction handles; handles of the
previous generation are disposed before the first new handle is created.

	doc := mdrender.New(
		mdrender.WithSelectable(true),
		mdrender.WithStyles(map[string]map[string]string{
			"h1": {"color": "navy"},
		}),
	)
	tree := doc.Render("# Hello\n\n- [x] done\n- [ ] todo")

Options may as well be loaded from a YAML file (see LoadOptions).

A Document is not safe for concurrent rendering. Hosts with multiple
goroutines have to serialize calls to Render per document.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mdrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdrender'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender")
}
