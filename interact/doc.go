/*
Package interact tracks the tappable regions of a render tree.

Overview

Every render pass allocates its interaction handles (link taps, text taps)
from a fresh Arena. Starting a new pass disposes the previous arena as a
whole, before the first handle of the new pass is handed out:

    arena := registry.Begin()      // old handles are dead from here on
    id := arena.NewLink("docs", "https://…", "", onTapLink)
    …
    registry.Tap(id)               // fires onTapLink

Handle IDs are never re-used, not even across passes, so an ID held by a
stale render tree can never reach a callback of a newer pass.

A Registry is owned by one document. Begin and Tap are serialized by
a mutex, so a tap arriving from another goroutine cannot observe a half
cleared registry. Begin waits for tap callbacks still running, thus a
callback of a superseded pass never overlaps with the registration of new
handles. As a consequence, a tap callback must not call Begin on its own
registry; it has to schedule the re-render.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interact

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdrender.interact'.
func tracer() tracing.Trace {
	return tracing.Select("mdrender.interact")
}
