// Package errors provides structured error reporting for event
// sources.
//
// Source attach, detach and decode failures happen out-of-band of any
// caller that could receive an error return, so they are reported to a
// global handler instead. The default handler logs to stderr; embedding
// applications replace it with SetHandler. Delivery itself is never
// routed here: a panic in a subscriber propagates to the caller of the
// delivering operation.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindAttach indicates a failure to attach a source to its producer.
	KindAttach
	// KindDetach indicates a failure to detach a source from its producer.
	KindDetach
	// KindParse indicates an event decode failure.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindAttach:
		return "attach"
	case KindDetach:
		return "detach"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// EventError represents a structured error from an event source.
type EventError struct {
	// Op is the operation that failed (e.g., "source.attach").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Source is the name of the event source, if applicable.
	Source string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EventError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] source=%s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EventError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to decode raw event data.
type ParseError struct {
	// Source is the event source that received the data.
	Source string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from source %s: got %T", e.DataType, e.Source, e.Got)
}

// Handler receives errors reported by event sources.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EventError)
}
