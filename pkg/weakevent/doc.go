// Package weakevent provides a subscriber registry that holds its
// subscribers weakly.
//
// A long-lived event source that keeps strong references to its
// subscribers extends their lifetime for as long as the source exists.
// A short-lived subscriber that never unsubscribes then leaks: it stays
// reachable, and keeps receiving callbacks, until the source itself is
// released. Registry breaks that pattern by tracking each subscriber's
// owner through a weak handle, so an owner that becomes otherwise
// unreachable is reclaimed normally even while still registered. Dead
// registrations are skipped at delivery time and purged by periodic
// cleanup sweeps.
//
// # Handlers
//
// A subscription is a [Handler]: a callback plus an identity key, and
// optionally a weakly held owner. [Bound] creates a handler tied to an
// owner; the callback receives the owner as a parameter so that it does
// not need to capture it. Capturing the owner in the callback closure
// would defeat the weak reference and keep the owner alive:
//
//	// Good: the owner arrives as an argument.
//	reg.Add(weakevent.Bound(view, "refresh", func(v *View, sender any, args Change) {
//	    v.Refresh(args)
//	}))
//
//	// Bad: the closure roots view forever.
//	reg.Add(weakevent.Func("refresh", func(sender any, args Change) {
//	    view.Refresh(args)
//	}))
//
// [Func] creates a static handler with no owner; static handlers are
// always considered alive.
//
// # Liveness
//
// A bound handler is live while its owner is still reachable and, if
// the owner implements [Usable], still reports itself usable. This lets
// an owner that has been disposed, but not yet reclaimed, stop
// receiving callbacks immediately.
//
// # Threading
//
// Registry assumes a single logical writer: all Add, Remove and Invoke
// calls must come from one goroutine. The one asynchronous hazard it
// defends against is reclamation, which can invalidate a weak handle at
// any time; every delivery resolves the handle exactly once into a
// rooted copy and both checks and invokes against that copy.
//
// Delivery is fail-fast: a panic in one handler propagates to the
// caller of Invoke and aborts delivery to the remaining handlers.
package weakevent
