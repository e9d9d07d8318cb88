package rhmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc hashes a key to a well-distributed 64-bit value.
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are equal. The table also uses it to
// compare slots against the empty sentinel.
type EqualFunc[K any] func(a, b K) bool

// MakeDefaultHashFunc hashes any comparable key via maphash.Comparable.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHashFunc hashes string keys with xxHash. Unlike maphash it is not
// per-process seeded, so hash values are reproducible across runs.
func StringHashFunc() HashFunc[string] {
	return xxhash.Sum64String
}

// BytesHashFunc hashes byte-slice keys with xxHash. []byte is not
// comparable, so pair it with bytes.Equal through NewFunc.
func BytesHashFunc() HashFunc[[]byte] {
	return xxhash.Sum64
}
