package rhmap

import (
	"hash/maphash"
	"iter"
)

// Entry is a key/value pair as stored in a Map's slots.
type Entry[K, V any] struct {
	Key K
	Val V
}

// Map is a key/value view over a Table of Entry pairs. Hashing and equality
// are lifted to look only at the key half, so a probe can use a synthetic
// pair with a zero value. The sentinel is a pair whose key half is the
// caller's empty key; the value half of the sentinel carries no meaning.
//
// Insert keeps set semantics and never overwrites the value of an existing
// key. At is the one path that can mutate a stored value.
type Map[K, V any] struct {
	table Table[Entry[K, V]]
}

// NewMap returns a map for a comparable key type, hashing keys with
// maphash.Comparable and comparing them with ==.
func NewMap[K comparable, V any](empty K, capacity int) *Map[K, V] {
	seed := maphash.MakeSeed()

	return NewMapFunc[K, V](empty, capacity,
		MakeDefaultHashFunc[K](seed),
		func(a, b K) bool { return a == b },
	)
}

// NewMapFunc returns a map with caller-supplied hash and equality over the
// bare key type; the map lifts them to operate over pairs.
func NewMapFunc[K, V any](empty K, capacity int, hash HashFunc[K], equal EqualFunc[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.table.init(Entry[K, V]{Key: empty}, capacity)

	m.table.hash = func(e Entry[K, V]) uint64 { return hash(e.Key) }
	m.table.equal = func(a, b Entry[K, V]) bool { return equal(a.Key, b.Key) }

	return m
}

// Number of stored pairs.
func (m *Map[K, V]) Len() int {
	return m.table.Len()
}

// Total slot count of the underlying table.
func (m *Map[K, V]) Cap() int {
	return m.table.Cap()
}

// Find returns a pointer to the stored pair for key, or nil if absent.
// The pointer is invalidated by any growth.
func (m *Map[K, V]) Find(key K) *Entry[K, V] {
	return m.table.Find(Entry[K, V]{Key: key})
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e := m.Find(key)
	if e == nil {
		var zero V
		return zero, false
	}

	return e.Val, true
}

// Checks whether a key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	return m.table.Has(Entry[K, V]{Key: key})
}

// Insert stores (key, value) if key is absent and reports whether it did.
// If the key already exists the stored value is left untouched - use At to
// update it.
func (m *Map[K, V]) Insert(key K, value V) (*Entry[K, V], bool) {
	return m.table.Insert(Entry[K, V]{Key: key, Val: value})
}

// At returns a pointer to the value stored for key, inserting the zero
// value first if the key is absent. Writing through the pointer is the only
// way to update an existing key's value. The pointer is invalidated by any
// growth.
func (m *Map[K, V]) At(key K) *V {
	e, _ := m.table.Insert(Entry[K, V]{Key: key})
	return &e.Val
}

// Reserve grows the underlying table to hold at least capacity slots.
func (m *Map[K, V]) Reserve(capacity int) {
	m.table.Reserve(capacity)
}

// All iterates the stored pairs in physical slot order. Same contract as
// Table.All: empty slots are skipped, order is not stable across growth,
// and the map must not be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.table.All() {
			if !yield(e.Key, e.Val) {
				return
			}
		}
	}
}
