// Package registry maintains the set of live deferred-invocation handlers and
// runs them at drain time, honoring dedup-key suppression and unregistration.
//
// The host runtime only guarantees a registered termination hook on abnormal
// exit, not ordinary object teardown, which is why cleanup work is parked here
// instead of in finalizers.
package registry

import (
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-shutdown-go/model"
	"github.com/LerianStudio/lib-shutdown-go/validation"
)

// Registry is an ordered collection of handlers keyed by an opaque monotonic
// id. All compound operations run under a single mutex: Run's
// unregister-then-check-count-then-invoke sequence is a check-then-act that is
// not safe under concurrent mutation otherwise.
type Registry struct {
	mu        sync.Mutex
	handlers  map[uint64]*Handle
	order     []uint64 // insertion order; may hold ids already removed
	keyCounts map[string]int
	nextID    uint64
	logger    log.Logger
}

// New creates an empty registry. The logger must not be nil.
func New(logger log.Logger) *Registry {
	return &Registry{
		handlers:  make(map[uint64]*Handle),
		keyCounts: make(map[string]int),
		logger:    logger,
	}
}

// Register validates the callback eagerly and registers it without a dedup
// key. The returned handle is live until run or unregistered.
func (r *Registry) Register(callback any, args ...any) (*Handle, error) {
	return r.RegisterKeyed("", callback, args...)
}

// RegisterKeyed registers a callback under a dedup key. Among all live
// handlers sharing a key, only the last one to be removed fires its callback.
// An empty key means the handler is not deduplicated.
func (r *Registry) RegisterKeyed(key string, callback any, args ...any) (*Handle, error) {
	invoke, err := validation.Bind(callback, args)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := &Handle{
		registry: r,
		id:       r.nextID,
		invoke:   invoke,
	}
	r.nextID++

	r.rekeyLocked(h, key)

	r.logger.Debugf("Registered shutdown handler %d (key %q)", h.id, key)

	return h, nil
}

// RunAll runs every currently-registered handler in registration order.
// Handlers removed earlier in the same pass (dedup siblings) are skipped. A
// panicking callback is recovered and logged so one bad handler cannot starve
// the rest of the drain.
func (r *Registry) RunAll() {
	for _, h := range r.Handles() {
		r.runHandle(h, true)
	}
}

// UnregisterAll removes every currently-registered handler, in registration
// order, without invoking any callback.
func (r *Registry) UnregisterAll() {
	for _, h := range r.Handles() {
		h.Unregister()
	}
}

// Handles returns the currently-registered handlers in registration order.
func (r *Registry) Handles() []*Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshotLocked()
}

// Snapshot returns a read-only diagnostics view of the live handlers.
func (r *Registry) Snapshot() []model.HandlerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]model.HandlerInfo, 0, len(r.handlers))
	for _, h := range r.snapshotLocked() {
		infos = append(infos, model.HandlerInfo{ID: h.id, Key: h.key, State: h.state})
	}

	return infos
}

// Count returns the number of currently-registered handlers.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.handlers)
}

// KeyCount returns the live reference count for a dedup key.
func (r *Registry) KeyCount(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.keyCounts[key]
}

func (r *Registry) snapshotLocked() []*Handle {
	live := make([]*Handle, 0, len(r.handlers))

	for _, id := range r.order {
		if h, ok := r.handlers[id]; ok {
			live = append(live, h)
		}
	}

	return live
}

// runHandle removes the handler first, then invokes its callback only when no
// dedup siblings remain registered. Invocation happens outside the lock so
// callbacks may register or unregister other handlers.
func (r *Registry) runHandle(h *Handle, isolate bool) bool {
	r.mu.Lock()

	if _, ok := r.handlers[h.id]; !ok {
		r.mu.Unlock()

		return false
	}

	r.removeLocked(h)

	fire := h.key == "" || r.keyCounts[h.key] == 0
	if fire {
		h.state = model.StateRun
	} else {
		h.state = model.StateCancelled
	}

	id, key := h.id, h.key

	r.mu.Unlock()

	if !fire {
		r.logger.Debugf("Suppressed shutdown handler %d: dedup siblings for key %q still registered", id, key)

		return true
	}

	if isolate {
		r.invokeIsolated(h)
	} else {
		h.invoke()
	}

	return true
}

func (r *Registry) invokeIsolated(h *Handle) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Errorf("Shutdown handler %d panicked: %v", h.id, rec)
		}
	}()

	h.invoke()
}

// rekeyLocked is the shared (re-)registration path: it transfers the dedup
// key and reinserts the handle into the live set when absent. An unchanged key
// on a registered handle is a full no-op.
func (r *Registry) rekeyLocked(h *Handle, key string) {
	_, registered := r.handlers[h.id]

	if registered && h.key == key {
		return
	}

	if registered && h.key != "" {
		r.decKeyLocked(h.key)
	}

	h.key = key

	if key != "" {
		r.keyCounts[key]++
	}

	if !registered {
		r.handlers[h.id] = h
		r.purgeOrderLocked(h.id)
		r.order = append(r.order, h.id)
		h.state = model.StateRegistered
	}
}

// purgeOrderLocked drops the stale occurrence of id that removeLocked leaves
// behind, so a revived handle re-enters the order exactly once, at the back.
func (r *Registry) purgeOrderLocked(id uint64) {
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			return
		}
	}
}

// removeLocked drops the handle from the live set and releases its key count.
func (r *Registry) removeLocked(h *Handle) {
	delete(r.handlers, h.id)

	if h.key != "" {
		r.decKeyLocked(h.key)
	}

	// Keep the order slice from growing unbounded under register/unregister churn
	if len(r.order) > 2*(len(r.handlers)+1) {
		r.compactLocked()
	}
}

func (r *Registry) decKeyLocked(key string) {
	if n := r.keyCounts[key] - 1; n > 0 {
		r.keyCounts[key] = n
	} else {
		delete(r.keyCounts, key)
	}
}

func (r *Registry) compactLocked() {
	live := r.order[:0]

	for _, id := range r.order {
		if _, ok := r.handlers[id]; ok {
			live = append(live, id)
		}
	}

	r.order = live
}
