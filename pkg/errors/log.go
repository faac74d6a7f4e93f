package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output.
	Verbose bool
}

// HandleError logs an EventError to stderr.
func (h *LogHandler) HandleError(err *EventError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[weakevent error] %s [%s]", err.Op, err.Kind)
		if err.Source != "" {
			fmt.Fprintf(os.Stderr, " source=%s", err.Source)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[weakevent error] %s: %v\n", err.Op, err.Err)
	}
}
