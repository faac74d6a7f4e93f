package listenable

// Notifier is the basic Listenable implementation. It holds strong
// references to its listeners and notifies them in no particular
// order.
//
// Notifier is not safe for concurrent use; like controllers, it must
// only be accessed from the UI thread.
type Notifier struct {
	listeners map[int]func()
	nextID    int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener registers a callback that fires on NotifyListeners.
// Returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// NotifyListeners invokes every registered listener.
func (n *Notifier) NotifyListeners() {
	for _, listener := range n.listeners {
		listener()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return len(n.listeners)
}

// Dispose releases all listeners. The notifier must not be used after
// disposal.
func (n *Notifier) Dispose() {
	n.listeners = nil
}
