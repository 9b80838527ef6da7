package checkstream

import (
	"hash"
	"io"
)

// Check is a computation fed with the bytes crossing a wrapped stream.
//
// Implementations must produce the same result however the input is split
// into chunks: Update("AB") followed by Update("C") equals Update("ABC").
type Check[T any] interface {
	Update(p []byte) // absorb p; p MUST NOT be modified or retained
	Output() T       // result over everything absorbed so far
}

// Hasher64 is the minimal shape of a 64-bit hash, e.g. *xxhash.Digest or hash.Hash64.
type Hasher64 interface {
	io.Writer
	Sum64() uint64
}

// Hasher32 is the minimal shape of a 32-bit hash, e.g. hash.Hash32.
type Hasher32 interface {
	io.Writer
	Sum32() uint32
}

type resetter interface {
	Reset()
}

// Hash64 adapts a Hasher64 to Check[uint64].
type Hash64 struct {
	h Hasher64
}

func NewHash64(h Hasher64) *Hash64 { return &Hash64{h: h} }

// Update feeds p to the hash. Writes to a hash never fail.
func (c *Hash64) Update(p []byte) { _, _ = c.h.Write(p) }

func (c *Hash64) Output() uint64 { return c.h.Sum64() }

func (c *Hash64) Hasher() Hasher64 { return c.h }

// Reset restarts the hash if it supports it.
func (c *Hash64) Reset() {
	if r, ok := c.h.(resetter); ok {
		r.Reset()
	}
}

// Hash32 adapts a Hasher32 to Check[uint32].
type Hash32 struct {
	h Hasher32
}

func NewHash32(h Hasher32) *Hash32 { return &Hash32{h: h} }

func (c *Hash32) Update(p []byte) { _, _ = c.h.Write(p) }

func (c *Hash32) Output() uint32 { return c.h.Sum32() }

func (c *Hash32) Hasher() Hasher32 { return c.h }

func (c *Hash32) Reset() {
	if r, ok := c.h.(resetter); ok {
		r.Reset()
	}
}

// Hash adapts any hash.Hash to Check[[]byte].
// Output allocates a fresh slice on every call; Update does not allocate.
type Hash struct {
	h hash.Hash
}

func NewHash(h hash.Hash) *Hash { return &Hash{h: h} }

func (c *Hash) Update(p []byte) { _, _ = c.h.Write(p) }

func (c *Hash) Output() []byte { return c.h.Sum(nil) }

func (c *Hash) Hasher() hash.Hash { return c.h }

func (c *Hash) Reset() { c.h.Reset() }

var (
	_ Check[uint64] = (*Hash64)(nil)
	_ Check[uint32] = (*Hash32)(nil)
	_ Check[[]byte] = (*Hash)(nil)
)
