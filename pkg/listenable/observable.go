package listenable

import "sync"

// Observable is a goroutine-safe reactive value. Unlike Notifier it
// may be read and written from any goroutine; listeners are called on
// the goroutine that performed the write.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	listeners map[int]func(T)
	nextID    int
	equals    func(a, b T) bool
}

// NewObservable creates an observable with an initial value. Every Set
// notifies listeners.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// NewObservableWithEquality creates an observable that skips
// notification when equals reports the new value unchanged.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	obs := NewObservable(initial)
	obs.equals = equals
	return obs
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set updates the value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := o.snapshotListeners()
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(value)
	}
}

// Update applies a transformation to the current value and notifies
// listeners. The transform runs under the lock; it must not call back
// into the observable.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	value := transform(o.value)
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := o.snapshotListeners()
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(value)
	}
}

// AddListener registers a callback that fires with the new value on
// every change. Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// snapshotListeners copies the listener set so notification happens
// outside the lock. Callers must hold mu.
func (o *Observable[T]) snapshotListeners() []func(T) {
	listeners := make([]func(T), 0, len(o.listeners))
	for _, listener := range o.listeners {
		listeners = append(listeners, listener)
	}
	return listeners
}
