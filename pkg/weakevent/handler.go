package weakevent

// Handler is one subscription: a callback, an identity key, and
// optionally a weakly held owner.
//
// The key identifies the callback for [Registry.Remove]. Keys must be
// comparable; a package-level string constant per callback works well.
// Registering the same owner and key twice creates two distinct
// entries, and Remove takes back the most recent one.
type Handler[Args any] struct {
	ref Ref
	key any
	fn  func(owner, sender any, args Args)
}

// Func returns a static handler. Static handlers have no owner and are
// always considered alive; they are invoked on every delivery until
// explicitly removed.
func Func[Args any](key any, fn func(sender any, args Args)) Handler[Args] {
	return Handler[Args]{
		key: key,
		fn: func(_, sender any, args Args) {
			fn(sender, args)
		},
	}
}

// Bound returns a handler whose callback is bound to a weakly held
// owner. The registry never keeps the owner alive.
//
// At delivery time the owner is resolved once into a rooted copy,
// checked for liveness, and passed to fn. If it has been reclaimed or
// reports itself unusable, the call is silently skipped. The callback
// must not capture the owner; see the package documentation.
func Bound[T, Args any](owner *T, key any, fn func(owner *T, sender any, args Args)) Handler[Args] {
	return Handler[Args]{
		ref: WeakRef(owner),
		key: key,
		fn: func(o, sender any, args Args) {
			fn(o.(*T), sender, args)
		},
	}
}

// IsStatic reports whether the handler has no owner.
func (h Handler[Args]) IsStatic() bool {
	return h.ref.IsZero()
}

// alive reports whether the handler may still be invoked: static
// handlers always, bound handlers only while their owner is reachable
// and usable.
func (h Handler[Args]) alive() bool {
	if h.IsStatic() {
		return true
	}
	owner := h.ref.Strong()
	return owner != nil && usable(owner)
}

// matches implements Remove's lookup. A static candidate matches any
// entry with the same key; a bound candidate additionally requires the
// same owner.
func (h Handler[Args]) matches(candidate Handler[Args]) bool {
	if h.key != candidate.key {
		return false
	}
	return candidate.IsStatic() || h.ref.eq(candidate.ref)
}

// invoke delivers one event. For bound handlers the owner is read from
// the weak handle exactly once; the rooted copy is used for both the
// liveness check and the call, so the owner cannot be reclaimed in
// between.
func (h Handler[Args]) invoke(sender any, args Args) {
	if h.IsStatic() {
		h.fn(nil, sender, args)
		return
	}
	owner := h.ref.Strong()
	if owner == nil || !usable(owner) {
		return
	}
	h.fn(owner, sender, args)
}
