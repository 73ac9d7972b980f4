package registry

import "github.com/LerianStudio/lib-shutdown-go/model"

// Handle represents one deferred callback registration. A handle that has
// been run or unregistered is inert: Run and Unregister become no-ops
// returning false, and only Rekey can revive it.
type Handle struct {
	registry *Registry
	id       uint64
	invoke   func()

	// guarded by registry.mu
	key   string
	state model.HandlerState
}

// ID returns the handle's opaque identifier. Ids are assigned monotonically
// and never reused.
func (h *Handle) ID() uint64 {
	return h.id
}

// Run unregisters the handle and invokes its callback, unless dedup siblings
// sharing its key are still registered, in which case the callback is
// suppressed and the handle is removed silently. Returns false when the
// handle is already inert.
func (h *Handle) Run() bool {
	return h.registry.runHandle(h, false)
}

// Unregister removes the handle without invoking its callback. Returns false
// when the handle is already inert.
func (h *Handle) Unregister() bool {
	r := h.registry

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[h.id]; !ok {
		return false
	}

	r.removeLocked(h)
	h.state = model.StateCancelled

	return true
}

// Rekey transfers the handle to a new dedup key (empty clears the key). A
// rekeyed live handle keeps its position; an inert handle is revived and
// appended at the back of the registration order.
func (h *Handle) Rekey(key string) {
	r := h.registry

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rekeyLocked(h, key)
}

// IsRegistered reports whether the handle is still in the live set.
func (h *Handle) IsRegistered() bool {
	r := h.registry

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.handlers[h.id]

	return ok
}

// Key returns the handle's current dedup key, empty when not deduplicated.
func (h *Handle) Key() string {
	r := h.registry

	r.mu.Lock()
	defer r.mu.Unlock()

	return h.key
}

// State returns the handle's lifecycle state for diagnostics.
func (h *Handle) State() model.HandlerState {
	r := h.registry

	r.mu.Lock()
	defer r.mu.Unlock()

	return h.state
}
