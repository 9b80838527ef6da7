// Package checkstream wraps readers and writers so that every byte crossing
// them is fed, exactly once and in order, to a pluggable Check such as a hash
// or a byte counter. The bytes themselves are passed through untouched.
package checkstream

import "io"

// NewDefaultReader wraps r with an xxhash64 check.
func NewDefaultReader(r io.Reader) *Reader[uint64] {
	return NewReader[uint64](r, NewXXHash())
}

// NewDefaultWriter wraps w with an xxhash64 check.
func NewDefaultWriter(w io.Writer) *Writer[uint64] {
	return NewWriter[uint64](w, NewXXHash())
}

// NewDefaultReadWriter wraps rw with an xxhash64 check.
func NewDefaultReadWriter(rw io.ReadWriter) *ReadWriter[uint64] {
	return NewReadWriter[uint64](rw, NewXXHash())
}

// NewCountingReader wraps r with a byte Counter.
func NewCountingReader(r io.Reader) *Reader[int64] {
	return NewReader[int64](r, &Counter{})
}

// NewCountingWriter wraps w with a byte Counter.
func NewCountingWriter(w io.Writer) *Writer[int64] {
	return NewWriter[int64](w, &Counter{})
}

func NewCountingReadWriter(rw io.ReadWriter) *ReadWriter[int64] {
	return NewReadWriter[int64](rw, &Counter{})
}

type hashReplacer interface {
	ReplaceCheck(Check[uint64]) Check[uint64]
}

// ResetHash replaces the check of a default-hash wrapper with a fresh
// xxhash64 and returns the old one.
func ResetHash(c hashReplacer) Check[uint64] {
	return c.ReplaceCheck(NewXXHash())
}

// Ensure our types implement the standard interfaces
var (
	_ io.Reader     = (*Reader[uint64])(nil)
	_ io.Writer     = (*Writer[uint64])(nil)
	_ io.ReadWriter = (*ReadWriter[uint64])(nil)
)
