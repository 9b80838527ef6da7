package checkstream

import "io"

// Reader wraps an io.Reader and feeds every byte it returns to a Check.
// It behaves exactly like the underlying reader: no buffering, and the count
// and error of each Read are returned unchanged.
//
// A Reader is not safe for concurrent use.
type Reader[T any] struct {
	r     io.Reader
	check Check[T]
}

// NewReader returns a Reader over r feeding check.
func NewReader[T any](r io.Reader, check Check[T]) *Reader[T] {
	return &Reader[T]{r: r, check: check}
}

// Read implements io.Reader.
//
// Only p[:n] is absorbed, n being the count reported by the underlying reader.
// Bytes returned together with an error (including io.EOF) are absorbed, as
// the io.Reader contract hands them to the caller.
func (cr *Reader[T]) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.check.Update(p[:n])
	}
	return n, err
}

// Output returns the check's result for all bytes read so far.
func (cr *Reader[T]) Output() T { return cr.check.Output() }

func (cr *Reader[T]) Check() Check[T] { return cr.check }

// Unwrap returns the underlying reader.
func (cr *Reader[T]) Unwrap() io.Reader { return cr.r }

// ReplaceCheck installs c and returns the previous check.
func (cr *Reader[T]) ReplaceCheck(c Check[T]) Check[T] {
	old := cr.check
	cr.check = c
	return old
}

// ReplaceReader installs r and returns the previous underlying reader.
// The check keeps its state.
func (cr *Reader[T]) ReplaceReader(r io.Reader) io.Reader {
	old := cr.r
	cr.r = r
	return old
}
