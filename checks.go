package checkstream

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"hash/crc32"
	"hash/crc64"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// NewXXHash returns the default check: xxhash64 with a zero seed.
func NewXXHash() *Hash64 {
	return NewHash64(xxhash.New())
}

// Digest computes a named hash while data passes through.
type Digest struct {
	Hash
	name string
}

var crc64Table = crc64.MakeTable(crc64.ECMA)

// NewDigest creates a digest for the specified algorithm.
// Supported algorithms: "md5", "sha1", "sha256", "sha512", "crc32", "crc64",
// "fnv64a", "xxhash". Unknown names fall back to "sha256".
func NewDigest(algorithm string) *Digest {
	var h hash.Hash
	switch algorithm {
	case "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	case "crc32":
		h = crc32.NewIEEE()
	case "crc64":
		h = crc64.New(crc64Table)
	case "fnv64a":
		h = fnv.New64a()
	case "xxhash":
		h = xxhash.New()
	default:
		h = sha256.New()
		algorithm = "sha256"
	}
	return &Digest{Hash: Hash{h: h}, name: algorithm}
}

func (d *Digest) Name() string { return d.name }

// HexSum returns the digest as a hex string
func (d *Digest) HexSum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}

// Counter counts the bytes passed through.
// Useful for wrapping readers/writers before (or after) they are wrapped in compressors.
type Counter struct {
	n int64
}

func (c *Counter) Update(p []byte) { c.n += int64(len(p)) }

func (c *Counter) Output() int64 { return c.n }

// Count returns the total bytes processed
func (c *Counter) Count() int64 { return c.n }

// MultiDigest computes multiple digests in one pass.
type MultiDigest struct {
	digests []*Digest
}

// NewMultiDigest creates a check that computes several digests.
// Duplicate algorithms are computed once.
func NewMultiDigest(algorithms ...string) *MultiDigest {
	if len(algorithms) == 0 {
		algorithms = []string{"sha256"}
	}

	md := &MultiDigest{}
	seen := make(map[string]bool, len(algorithms))
	for _, algo := range algorithms {
		d := NewDigest(algo)
		if seen[d.Name()] {
			continue
		}
		seen[d.Name()] = true
		md.digests = append(md.digests, d)
	}
	return md
}

func (md *MultiDigest) Update(p []byte) {
	for _, d := range md.digests {
		d.Update(p)
	}
}

// Output returns every digest as a hex string keyed by algorithm.
func (md *MultiDigest) Output() map[string]string {
	out := make(map[string]string, len(md.digests))
	for _, d := range md.digests {
		out[d.Name()] = d.HexSum()
	}
	return out
}

// Get returns the hex digest for a specific algorithm
func (md *MultiDigest) Get(algorithm string) string {
	for _, d := range md.digests {
		if d.Name() == algorithm {
			return d.HexSum()
		}
	}
	return ""
}

var (
	_ Check[[]byte]            = (*Digest)(nil)
	_ Check[int64]             = (*Counter)(nil)
	_ Check[map[string]string] = (*MultiDigest)(nil)
)
