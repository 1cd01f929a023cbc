package interact

import (
	"errors"
	"sort"
	"sync"
)

// ErrDisposed is returned when tapping a handle of a superseded pass.
var ErrDisposed = errors.New("interaction handle has been disposed")

// ErrUnknownHandle is returned when tapping an ID the registry never issued.
var ErrUnknownHandle = errors.New("unknown interaction handle")

// Sink receives the handles created during a render pass.
// *Arena is the implementation used by Registry; compilers accept any Sink.
type Sink interface {
	NewLink(text, href, title string, cb LinkTapFunc) ID
	NewTextTap(text string, offset int, cb TextTapFunc) ID
	Mark() int         // current number of handles, for Rollback
	Rollback(mark int) // dispose every handle created after mark
}

// Registry holds the handles of the current render pass.
//
// Tap callbacks run with the registry's firing lock read-held, and Begin and
// Clear wait for it. A callback must therefore not start a render pass on the
// same registry synchronously; it has to schedule the re-render instead.
type Registry struct {
	firing  sync.RWMutex // read-held while a callback runs
	mx      sync.Mutex
	nextID  ID // highest ID issued so far
	pass    uint64
	current *Arena
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Begin disposes every handle of the previous pass and returns the arena
// for a new pass. Begin waits for callbacks still running from a tap.
func (r *Registry) Begin() *Arena {
	r.firing.Lock()
	defer r.firing.Unlock()
	r.mx.Lock()
	defer r.mx.Unlock()
	if r.current != nil {
		r.retire(r.current)
	}
	r.pass++
	r.current = &Arena{registry: r, pass: r.pass}
	tracer().Debugf("interaction registry: begin pass #%d", r.pass)
	return r.current
}

// Clear disposes every live handle without starting a new pass.
func (r *Registry) Clear() {
	r.firing.Lock()
	defer r.firing.Unlock()
	r.mx.Lock()
	defer r.mx.Unlock()
	if r.current != nil {
		r.retire(r.current)
		r.current = nil
	}
}

func (r *Registry) retire(a *Arena) {
	n := len(a.handles)
	for _, h := range a.handles {
		h.dispose()
	}
	a.handles = nil
	a.index = nil
	a.closed = true
	tracer().Debugf("interaction registry: disposed %d handles of pass #%d", n, a.pass)
}

// Pass returns the number of the current render pass (0 before the first one).
func (r *Registry) Pass() uint64 {
	r.mx.Lock()
	defer r.mx.Unlock()
	return r.pass
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mx.Lock()
	defer r.mx.Unlock()
	if r.current == nil {
		return 0
	}
	return len(r.current.handles)
}

// Live returns copies of all live handles, ordered by ID.
func (r *Registry) Live() []Handle {
	r.mx.Lock()
	defer r.mx.Unlock()
	if r.current == nil {
		return nil
	}
	hs := make([]Handle, 0, len(r.current.handles))
	for _, h := range r.current.handles {
		hs = append(hs, *h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i].ID < hs[j].ID })
	return hs
}

// Lookup returns a copy of a live handle.
func (r *Registry) Lookup(id ID) (Handle, bool) {
	r.mx.Lock()
	defer r.mx.Unlock()
	if h := r.current.lookup(id); h != nil {
		return *h, true
	}
	return Handle{}, false
}

// Tap fires the callback of a live handle. Handles of superseded passes
// return ErrDisposed and never reach a callback. No new pass can begin
// before the callback has returned.
func (r *Registry) Tap(id ID) error {
	r.firing.RLock()
	defer r.firing.RUnlock()
	r.mx.Lock()
	h := r.current.lookup(id)
	if h == nil {
		issued := id > NoHandle && id <= r.nextID
		r.mx.Unlock()
		if issued { // IDs are issued in ascending order and never re-used
			return ErrDisposed
		}
		return ErrUnknownHandle
	}
	hc := *h // callbacks are read under lock, fired outside of it
	r.mx.Unlock()
	tracer().Debugf("tap on %s", &hc)
	hc.fire()
	return nil
}

func (r *Registry) issue() ID {
	r.nextID++
	return r.nextID
}

// --- Arena -----------------------------------------------------------------

// Arena allocates the handles of one render pass. An arena is not safe for
// concurrent use; render passes are single-threaded.
type Arena struct {
	registry *Registry
	pass     uint64
	handles  []*Handle
	index    map[ID]*Handle
	closed   bool
}

// NewLink creates a link-tap handle.
func (a *Arena) NewLink(text, href, title string, cb LinkTapFunc) ID {
	return a.add(&Handle{Kind: LinkTap, Text: text, Href: href, Title: title, onLink: cb})
}

// NewTextTap creates a text-tap handle.
func (a *Arena) NewTextTap(text string, offset int, cb TextTapFunc) ID {
	return a.add(&Handle{Kind: TextTap, Text: text, Offset: offset, onText: cb})
}

func (a *Arena) add(h *Handle) ID {
	a.registry.mx.Lock()
	defer a.registry.mx.Unlock()
	if a.closed {
		tracer().Errorf("interaction arena of pass #%d is closed; handle dropped", a.pass)
		return NoHandle
	}
	h.ID = a.registry.issue()
	h.Pass = a.pass
	a.handles = append(a.handles, h)
	if a.index == nil {
		a.index = make(map[ID]*Handle)
	}
	a.index[h.ID] = h
	return h.ID
}

// Mark returns the current number of handles.
func (a *Arena) Mark() int {
	return len(a.handles)
}

// Rollback disposes every handle created after mark.
func (a *Arena) Rollback(mark int) {
	a.registry.mx.Lock()
	if a.closed || mark < 0 || mark >= len(a.handles) {
		a.registry.mx.Unlock()
		return
	}
	for _, h := range a.handles[mark:] {
		h.dispose()
		delete(a.index, h.ID)
	}
	n := len(a.handles) - mark
	a.handles = a.handles[:mark]
	a.registry.mx.Unlock()
	tracer().Debugf("interaction arena: rolled back %d handles", n)
}

// Len returns the number of handles in the arena.
func (a *Arena) Len() int {
	return len(a.handles)
}

func (a *Arena) lookup(id ID) *Handle {
	if a == nil || a.index == nil {
		return nil
	}
	return a.index[id]
}

var _ Sink = &Arena{}
