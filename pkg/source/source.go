// Package source provides event sources that attach to an external
// producer only while they have subscribers.
//
// A Source owns a weakevent.Registry and uses its count hooks to drive
// the producer connection: the first subscriber attaches, and the
// connection is torn down when the subscriber count returns to zero,
// whether by explicit unsubscription or because a sweep purged the
// last dead subscriber. Producers are typically platform event streams
// that are expensive to keep open with nobody listening.
package source

import (
	"github.com/go-drift/weakevent/pkg/errors"
	"github.com/go-drift/weakevent/pkg/weakevent"
)

// AttachFunc starts delivery from an external producer. Events are
// passed to emit, which must be called from the single goroutine that
// owns the source. The returned detach function stops delivery.
type AttachFunc[Args any] func(emit func(Args)) (detach func() error, err error)

// Source fans events from an external producer out to weakly held
// subscribers.
//
// Like the registry it owns, a Source assumes a single logical writer:
// Subscribe, Unsubscribe and emitted events must all come from one
// goroutine.
type Source[Args any] struct {
	name     string
	attach   AttachFunc[Args]
	registry *weakevent.Registry[Args]
	detach   func() error
}

// New creates a source that attaches to its producer with the given
// function. An attach failure is reported via the errors package and
// retried on the next Subscribe.
func New[Args any](name string, attach AttachFunc[Args]) *Source[Args] {
	s := &Source[Args]{
		name:     name,
		attach:   attach,
		registry: weakevent.NewRegistry[Args](),
	}
	s.registry.OnCountIncreased = s.countIncreased
	s.registry.OnCountDecreased = s.countDecreased
	return s
}

// NewParsed creates a source whose producer emits raw data that must
// be decoded before delivery. Decode failures are reported via the
// errors package and the event is dropped.
func NewParsed[Args any](name string, attach AttachFunc[any], parse func(data any) (Args, error)) *Source[Args] {
	return New(name, func(emit func(Args)) (func() error, error) {
		return attach(func(data any) {
			val, err := parse(data)
			if err != nil {
				errors.Report(&errors.EventError{
					Op:     "source.parse",
					Kind:   errors.KindParse,
					Source: name,
					Err:    err,
				})
				return
			}
			emit(val)
		})
	})
}

// Name returns the source name used in error reports.
func (s *Source[Args]) Name() string {
	return s.name
}

// Subscribe registers a handler. The first live subscriber attaches
// the source to its producer.
func (s *Source[Args]) Subscribe(handler weakevent.Handler[Args]) {
	s.registry.Add(handler)
}

// Unsubscribe removes the most recent registration matching handler.
func (s *Source[Args]) Unsubscribe(handler weakevent.Handler[Args]) {
	s.registry.Remove(handler)
}

// Count returns the number of tracked subscriptions, including dead
// ones not yet swept.
func (s *Source[Args]) Count() int {
	return s.registry.Count()
}

// Attached reports whether the source is currently attached to its
// producer.
func (s *Source[Args]) Attached() bool {
	return s.detach != nil
}

func (s *Source[Args]) countIncreased() {
	if s.detach != nil {
		return
	}
	detach, err := s.attach(s.dispatch)
	if err != nil {
		errors.Report(&errors.EventError{
			Op:     "source.attach",
			Kind:   errors.KindAttach,
			Source: s.name,
			Err:    err,
		})
		return
	}
	s.detach = detach
}

func (s *Source[Args]) countDecreased() {
	if s.detach == nil || s.registry.Count() > 0 {
		return
	}
	detach := s.detach
	s.detach = nil
	if err := detach(); err != nil {
		errors.Report(&errors.EventError{
			Op:     "source.detach",
			Kind:   errors.KindDetach,
			Source: s.name,
			Err:    err,
		})
	}
}

// dispatch delivers one producer event to every live subscriber, with
// the source as sender. A sweep runs after delivery, so a producer
// event can itself detach the source when it finds every remaining
// subscriber dead.
func (s *Source[Args]) dispatch(args Args) {
	s.registry.Invoke(s, args)
}
