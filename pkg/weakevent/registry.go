package weakevent

import "slices"

// sweepThreshold is the number of Add/Remove operations between
// automatic cleanup sweeps. It amortizes sweep cost; correctness never
// depends on its value, since every Invoke also sweeps.
const sweepThreshold = 100

// Registry holds an ordered collection of weakly held subscribers and
// delivers events to the live ones in subscription order.
//
// Registry is not safe for concurrent use; all calls must come from a
// single goroutine. See the package documentation for the threading
// and lifetime model.
type Registry[Args any] struct {
	// OnCountIncreased fires after Add appends an entry. Together with
	// OnCountDecreased and Count it lets an embedding event source
	// detect the 0-to-1 and 1-to-0 transitions, typically to attach to
	// an underlying producer only while subscribers exist.
	OnCountIncreased func()

	// OnCountDecreased fires after entries are removed: once per
	// Remove that actually removed an entry, and once per sweep that
	// purged at least one dead entry, no matter how many it purged.
	// A sweep can run inside Add or Invoke, so a decrease can be
	// observed without any Remove call.
	OnCountDecreased func()

	entries []Handler[Args]
	ops     int
}

// NewRegistry creates an empty registry.
func NewRegistry[Args any]() *Registry[Args] {
	return &Registry[Args]{}
}

// Count returns the number of tracked entries, including dead entries
// that no sweep has purged yet.
func (r *Registry[Args]) Count() int {
	return len(r.entries)
}

// Add appends handler to the registry. Duplicate registrations are
// allowed and produce distinct entries.
func (r *Registry[Args]) Add(handler Handler[Args]) {
	r.entries = append(r.entries, handler)
	if r.OnCountIncreased != nil {
		r.OnCountIncreased()
	}
	r.bump()
}

// Remove removes the most recently added entry matching handler.
// Removing a handler that was never added is a no-op, not an error.
func (r *Registry[Args]) Remove(handler Handler[Args]) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].matches(handler) {
			r.entries = slices.Delete(r.entries, i, i+1)
			if r.OnCountDecreased != nil {
				r.OnCountDecreased()
			}
			break
		}
	}
	r.bump()
}

// Invoke delivers one event to every live entry, in subscription
// order.
//
// Delivery iterates a snapshot of the entry list taken at call time, so
// a handler may freely Add or Remove on this registry during its own
// invocation: the current pass is unaffected and the change is
// observed from the next Invoke on. Each entry's liveness is
// re-checked immediately before its call; entries that died since the
// snapshot are skipped. A panic in a handler propagates to the caller
// and aborts delivery to the remaining entries.
func (r *Registry[Args]) Invoke(sender any, args Args) {
	snapshot := slices.Clone(r.entries)
	for _, h := range snapshot {
		h.invoke(sender, args)
	}
	r.sweep()
}

// bump counts one Add or Remove toward the next automatic sweep.
func (r *Registry[Args]) bump() {
	r.ops++
	if r.ops >= sweepThreshold {
		r.sweep()
	}
}

// sweep drops every dead entry and resets the operation counter. A
// sweep that purged anything reports a single count decrease.
func (r *Registry[Args]) sweep() {
	before := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(h Handler[Args]) bool {
		return !h.alive()
	})
	if len(r.entries) < before && r.OnCountDecreased != nil {
		r.OnCountDecreased()
	}
	r.ops = 0
}
