package errors

import (
	"errors"
	"strings"
	"testing"
)

// testHandler captures reported errors.
type testHandler struct {
	onError func(err *EventError)
}

func (h *testHandler) HandleError(err *EventError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func TestEventErrorString(t *testing.T) {
	err := &EventError{
		Op:   "source.attach",
		Kind: KindAttach,
		Err:  errors.New("producer unavailable"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestEventErrorWithSource(t *testing.T) {
	err := &EventError{
		Op:     "source.parse",
		Kind:   KindParse,
		Source: "app/lifecycle",
		Err:    &ParseError{Source: "app/lifecycle", DataType: "State", Got: nil},
	}
	got := err.Error()
	want := "source=app/lifecycle"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestEventErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &EventError{Op: "source.detach", Kind: KindDetach, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the underlying error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindAttach, "attach"},
		{KindDetach, "detach"},
		{KindParse, "parse"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{
		Source:   "app/keys",
		DataType: "KeyEvent",
		Got:      123,
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestReport(t *testing.T) {
	var captured *EventError
	handler := &testHandler{
		onError: func(err *EventError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&EventError{
		Op:   "source.attach",
		Kind: KindAttach,
		Err:  errors.New("boom"),
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "source.attach" {
		t.Errorf("Op = %q, want %q", captured.Op, "source.attach")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	// Must not panic.
	Report(nil)
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}
