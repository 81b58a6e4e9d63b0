package sink

import (
	"bufio"
	"fmt"
	"io"
)

// Capacity is the default number of pending lines a Sink buffers
// before flushing.
const Capacity = 8192

// Sink buffers formatted output lines and flushes them to w in
// batches of at most capacity lines.
type Sink struct {
	w        *bufio.Writer
	closer   io.Closer
	capacity int
	pending  []string
}

// New wraps w in a Sink with the default Capacity.
func New(w io.Writer) *Sink {
	return NewSize(w, Capacity)
}

// NewSize wraps w in a Sink that flushes every capacity lines. If w
// also implements io.Closer, Finalize closes it after its final flush.
func NewSize(w io.Writer, capacity int) *Sink {
	s := &Sink{
		w:        bufio.NewWriter(w),
		capacity: capacity,
		pending:  make([]string, 0, capacity),
	}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// AddLine appends line (without its trailing newline) to the pending
// buffer, flushing first if the buffer is already at capacity.
func (s *Sink) AddLine(line string) error {
	if len(s.pending) >= s.capacity {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	s.pending = append(s.pending, line)
	return nil
}

// Flush writes every pending line to the underlying writer and clears
// the buffer. It is a no-op when the buffer is empty.
func (s *Sink) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}
	for _, line := range s.pending {
		if _, err := fmt.Fprintln(s.w, line); err != nil {
			return fmt.Errorf("sink: writing line: %w", err)
		}
	}
	s.pending = s.pending[:0]
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("sink: flushing writer: %w", err)
	}
	return nil
}

// Finalize flushes any remaining lines and closes the underlying
// writer if it supports closing.
func (s *Sink) Finalize() error {
	if err := s.Flush(); err != nil {
		return err
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			return fmt.Errorf("sink: closing output: %w", err)
		}
	}
	return nil
}
