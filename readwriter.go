package checkstream

import "io"

// ReadWriter wraps an io.ReadWriter. Bytes read and bytes written go to the
// same Check, in call order.
type ReadWriter[T any] struct {
	rw    io.ReadWriter
	check Check[T]
}

func NewReadWriter[T any](rw io.ReadWriter, check Check[T]) *ReadWriter[T] {
	return &ReadWriter[T]{rw: rw, check: check}
}

// Read implements io.Reader with the same absorption rule as Reader.Read.
func (c *ReadWriter[T]) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		c.check.Update(p[:n])
	}
	return n, err
}

// Write implements io.Writer with the same absorption rule as Writer.Write.
func (c *ReadWriter[T]) Write(p []byte) (int, error) {
	n, err := c.rw.Write(p)
	if n > 0 {
		c.check.Update(p[:n])
	}
	return n, err
}

func (c *ReadWriter[T]) Flush() error { return flushInner(c.rw) }

func (c *ReadWriter[T]) Sync() error { return syncInner(c.rw) }

func (c *ReadWriter[T]) Output() T { return c.check.Output() }

func (c *ReadWriter[T]) Check() Check[T] { return c.check }

func (c *ReadWriter[T]) Unwrap() io.ReadWriter { return c.rw }

func (c *ReadWriter[T]) ReplaceCheck(check Check[T]) Check[T] {
	old := c.check
	c.check = check
	return old
}

func (c *ReadWriter[T]) ReplaceReadWriter(rw io.ReadWriter) io.ReadWriter {
	old := c.rw
	c.rw = rw
	return old
}
