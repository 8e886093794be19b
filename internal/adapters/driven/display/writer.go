// Package display provides driven.DisplaySink implementations that render
// calculator display updates outside the engine.
package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/keycalc/internal/core/ports/driven"
)

// Ensure WriterSink implements the interface.
var _ driven.DisplaySink = (*WriterSink)(nil)

// emptyMarker stands in for a blank display so traces stay readable.
const emptyMarker = "(empty)"

// WriterSink writes each display update as one line.
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
	count  int
	err    error
}

// NewWriterSink creates a sink writing to w. Lines are prefixed with prefix.
func NewWriterSink(w io.Writer, prefix string) *WriterSink {
	return &WriterSink{w: w, prefix: prefix}
}

// Show writes value. The first write error is kept and later updates are dropped.
func (s *WriterSink) Show(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	if value == "" {
		value = emptyMarker
	}
	s.count++
	_, s.err = fmt.Fprintf(s.w, "%s%s\n", s.prefix, value)
}

// Count returns how many updates were written.
func (s *WriterSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Err returns the first write error, if any.
func (s *WriterSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
