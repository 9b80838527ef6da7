package checkstream

import "io"

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Writer wraps an io.Writer and feeds every byte the underlying writer
// accepts to a Check.
//
// A Writer is not safe for concurrent use.
type Writer[T any] struct {
	w     io.Writer
	check Check[T]
}

// NewWriter returns a Writer over w feeding check.
func NewWriter[T any](w io.Writer, check Check[T]) *Writer[T] {
	return &Writer[T]{w: w, check: check}
}

// Write implements io.Writer.
//
// Only the p[:n] accepted by the underlying writer is absorbed, never all of p.
func (cw *Writer[T]) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if n > 0 {
		cw.check.Update(p[:n])
	}
	return n, err
}

// Flush forwards to the underlying writer's Flush, if it has one.
func (cw *Writer[T]) Flush() error {
	return flushInner(cw.w)
}

// Sync forwards to the underlying writer's Sync (e.g. *os.File), if it has one.
func (cw *Writer[T]) Sync() error {
	return syncInner(cw.w)
}

// Output returns the check's result for all bytes written so far.
func (cw *Writer[T]) Output() T { return cw.check.Output() }

func (cw *Writer[T]) Check() Check[T] { return cw.check }

// Unwrap returns the underlying writer.
func (cw *Writer[T]) Unwrap() io.Writer { return cw.w }

// ReplaceCheck installs c and returns the previous check.
func (cw *Writer[T]) ReplaceCheck(c Check[T]) Check[T] {
	old := cw.check
	cw.check = c
	return old
}

// ReplaceWriter installs w and returns the previous underlying writer.
// The check keeps its state.
func (cw *Writer[T]) ReplaceWriter(w io.Writer) io.Writer {
	old := cw.w
	cw.w = w
	return old
}

func flushInner(w any) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func syncInner(w any) error {
	if s, ok := w.(syncer); ok {
		return s.Sync()
	}
	return nil
}
