// Package listenable provides the framework's change-notification
// contracts and their basic implementations.
//
// Listenable is the subscription contract consumed throughout the
// framework: anything that can notify subscribers of changes, with an
// unsubscribe closure returned from AddListener. Notifier is the plain
// strong-reference implementation; Observable adds a goroutine-safe
// reactive value. Both hold their listeners strongly, so a listener
// must unsubscribe (or its host must Dispose) to be released — for
// subscribers whose lifetime the source must not extend, use the
// weakevent package instead.
package listenable

// Disposable is anything that releases resources on disposal.
type Disposable interface {
	Dispose()
}

// Listenable is anything that can notify subscribers of changes.
// AddListener returns an unsubscribe function; calling it more than
// once is harmless.
type Listenable interface {
	AddListener(fn func()) (unsubscribe func())
}
