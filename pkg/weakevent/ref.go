package weakevent

import "weak"

// Usable reports whether an owner can still receive callbacks.
//
// An owner that has been disposed, or queued for disposal, should
// return false even while it is still resident in memory. Owners that
// do not implement Usable are considered usable for as long as they
// are reachable.
type Usable interface {
	IsUsable() bool
}

// Ref is a weak handle to a handler's owner. It never keeps the owner
// alive: once the owner becomes unreachable, the handle resolves to
// nil.
//
// The zero Ref tracks no owner and marks a handler as static.
type Ref struct {
	id     any
	strong func() any
}

// WeakRef returns a Ref tracking owner without extending its lifetime.
//
// Refs created from the same owner compare equal by identity, and stay
// equal after the owner has been reclaimed. That is what allows an
// unsubscription to find its registration even once the owner is gone.
func WeakRef[T any](owner *T) Ref {
	ptr := weak.Make(owner)
	return Ref{
		id: ptr,
		strong: func() any {
			// Guard against wrapping a nil *T in a non-nil interface.
			if v := ptr.Value(); v != nil {
				return v
			}
			return nil
		},
	}
}

// IsZero reports whether the Ref tracks no owner.
func (r Ref) IsZero() bool {
	return r.id == nil
}

// Strong resolves the handle into a strongly rooted owner, or nil if
// the owner has been reclaimed. The caller must hold the returned
// value for as long as it needs the owner alive; resolving twice and
// using the second result races against reclamation.
func (r Ref) Strong() any {
	if r.strong == nil {
		return nil
	}
	return r.strong()
}

// eq reports whether two Refs track the same owner.
func (r Ref) eq(other Ref) bool {
	return r.id == other.id
}

// usable applies the Usable predicate to a rooted owner.
func usable(owner any) bool {
	if u, ok := owner.(Usable); ok {
		return u.IsUsable()
	}
	return true
}
