/*
Package cssom reads style sheets from CSS.

Overview

Style sheets for render trees are keyed by tag names and a few semantic keys
(see package style). CSS is a convenient notation for them:

    h1, h2   { color: navy; font-weight: bold }
    a        { text-decoration: underline }
    listBullet { color: gray }

Only simple selectors naming a single style key are honoured; rules with
other selectors (descendant, class, id, …) are skipped with a trace message.
Within one conversion later declarations override earlier ones property by
property, unless the earlier one is marked "!important".

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
Concrete implementations may be found in sub-packages, e.g.
package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mdrender.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender.cssom")
}
