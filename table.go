package rhmap

import (
	"hash/maphash"
	"iter"
)

const (
	// DefaultCapacity is used when a constructor receives a non-positive
	// capacity hint.
	DefaultCapacity = 1024

	// Growth trigger defaults. A long probe chain alone is not enough to
	// grow the table; the table must also be at least half full. A table
	// one slot short of 100% occupancy always grows.
	defaultMaxProbeDistance = 5
	defaultGrowthWatermark  = 0.5
)

// noCopy triggers the vet copylocks check when a Table is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Table is an open-addressing hash table with Robin Hood displacement.
// Emptiness is encoded by a caller-supplied sentinel key: a slot holding a
// key equal to the sentinel is unoccupied, so the sentinel itself can never
// be stored. There is no delete - the table only supports insertion and
// lookup, which is what keeps the probe chains this short.
//
// A Table must not be copied after first use. Slot pointers returned by
// Find/Insert and any running iteration are invalidated whenever the table
// grows; they stay valid across inserts that don't grow.
type Table[K any] struct {
	noCopy noCopy

	slots []K
	empty K

	hash  HashFunc[K]
	equal EqualFunc[K]

	capacity  uintptr
	mask      uintptr
	size      uintptr
	maxProbe  uintptr
	watermark uintptr

	probeLimit      uintptr
	growthWatermark float64
}

type Option[K any] func(t *Table[K])

// Override the hash function.
func WithHashFunc[K any](f HashFunc[K]) Option[K] {
	return func(t *Table[K]) {
		t.hash = f
	}
}

// Override the equality predicate. It is used both for key comparison and
// for the "is this slot empty" test against the sentinel.
func WithEqualFunc[K any](f EqualFunc[K]) Option[K] {
	return func(t *Table[K]) {
		t.equal = f
	}
}

// WithMaxProbeDistance tunes the probe-distance half of the growth trigger
// (default 5).
func WithMaxProbeDistance[K any](d int) Option[K] {
	return func(t *Table[K]) {
		t.probeLimit = uintptr(d)
	}
}

// WithGrowthWatermark tunes the occupancy half of the growth trigger as a
// fraction of capacity (default 0.5).
func WithGrowthWatermark[K any](f float64) Option[K] {
	return func(t *Table[K]) {
		t.growthWatermark = f
	}
}

// New returns a table for a comparable key type, hashing with
// maphash.Comparable and comparing with == unless overridden. The empty
// sentinel must never be used as a real key.
func New[K comparable](empty K, capacity int, opts ...Option[K]) *Table[K] {
	t := &Table[K]{}
	t.init(empty, capacity, opts...)

	if t.hash == nil {
		t.hash = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
	if t.equal == nil {
		t.equal = func(a, b K) bool { return a == b }
	}

	return t
}

// NewFunc returns a table for an arbitrary key type. Both the hash function
// and the equality predicate are the caller's responsibility here; this is
// the constructor for key types that are not comparable (slices, pairs with
// non-comparable halves).
func NewFunc[K any](empty K, capacity int, hash HashFunc[K], equal EqualFunc[K], opts ...Option[K]) *Table[K] {
	t := &Table[K]{
		hash:  hash,
		equal: equal,
	}
	t.init(empty, capacity, opts...)

	return t
}

func (t *Table[K]) init(empty K, capacity int, opts ...Option[K]) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	normalized := NextPowerOf2(uintptr(capacity))

	t.empty = empty
	t.capacity = normalized
	t.mask = normalized - 1
	t.probeLimit = defaultMaxProbeDistance
	t.growthWatermark = defaultGrowthWatermark

	for _, opt := range opts {
		opt(t)
	}

	t.watermark = uintptr(float64(normalized) * t.growthWatermark)

	t.slots = make([]K, normalized)
	for i := range t.slots {
		t.slots[i] = empty
	}
}

// Number of occupied slots.
func (t *Table[K]) Len() int {
	return int(t.size)
}

// Total slot count. Always a power of two, never decreases.
func (t *Table[K]) Cap() int {
	return int(t.capacity)
}

// The empty sentinel this table was constructed with.
func (t *Table[K]) Empty() K {
	return t.empty
}

// home computes the optimal slot index for a key.
func (t *Table[K]) home(key K) uintptr {
	return uintptr(t.hash(key)) & t.mask
}

// find returns the physical index of the key. When the key is absent it
// returns (index of the empty slot that terminated the probe, false), so
// the position is already computed if the caller inserts next. The scan
// starts at the key's home slot and wraps; it terminates because
// size < capacity always holds.
func (t *Table[K]) find(key K) (uintptr, bool) {
	idx := t.home(key)
	for {
		if t.equal(t.slots[idx], t.empty) {
			return idx, false
		}
		if t.equal(t.slots[idx], key) {
			return idx, true
		}
		idx = (idx + 1) & t.mask
	}
}

// Find returns a pointer to the slot holding key, or nil if the key is
// absent. The pointer is invalidated by any growth.
func (t *Table[K]) Find(key K) *K {
	idx, ok := t.find(key)
	if !ok {
		return nil
	}

	return &t.slots[idx]
}

// Checks whether a key is in the table.
func (t *Table[K]) Has(key K) bool {
	_, ok := t.find(key)
	return ok
}

// Insert places key into the table and returns a pointer to its slot. The
// bool reports whether the key was newly inserted; inserting a key that is
// already present leaves the table untouched and returns the existing slot.
// Insert may grow the table (see the trigger below), invalidating
// previously returned pointers and running iterations.
func (t *Table[K]) Insert(key K) (*K, bool) {
	// Grow when probe chains are long and the table is at the watermark,
	// or when one more key would fill the table completely.
	if (t.maxProbe >= t.probeLimit && t.size >= t.watermark) || t.size+1 == t.capacity {
		t.grow(2 * t.capacity)
	}

	idx, inserted := t.emplace(key)

	return &t.slots[idx], inserted
}

// emplace runs the Robin Hood placement walk. It assumes enough headroom
// exists (callers do the growth check) and returns the index the key ended
// up at - for a displacing insert that's the slot it robbed, not where the
// displaced chain terminated.
func (t *Table[K]) emplace(key K) (uintptr, bool) {
	var (
		idx     = t.home(key)
		dist    uintptr
		carried = key
		result  uintptr
		placed  bool
	)

	for {
		cur := &t.slots[idx]

		if t.equal(*cur, t.empty) {
			*cur = carried
			t.size++
			if dist > t.maxProbe {
				t.maxProbe = dist
			}
			if !placed {
				result = idx
			}
			return result, true
		}

		if !placed && t.equal(*cur, key) {
			return idx, false
		}

		// Rob from the rich: an occupant sitting closer to its home than
		// we've probed yields its slot, and we carry it onward instead.
		curDist := (idx - t.home(*cur)) & t.mask
		if curDist < dist {
			if dist > t.maxProbe {
				t.maxProbe = dist
			}
			*cur, carried = carried, *cur
			if !placed {
				result = idx
				placed = true
			}
			dist = curDist
		}

		idx = (idx + 1) & t.mask
		dist++
	}
}

// Reserve grows the table to hold at least capacity slots, rounded up to a
// power of two. It is a no-op if the table is already that large. Growing
// rehashes every key and invalidates all slot pointers and iterations.
func (t *Table[K]) Reserve(capacity int) {
	if capacity <= 0 || uintptr(capacity) <= t.capacity {
		return
	}

	t.grow(NextPowerOf2(uintptr(capacity)))
}

// grow swaps in a fresh backing store of the given power-of-two size and
// re-places every occupied slot through the ordinary placement walk. The
// probe high-water mark resets and the watermark is recomputed up front;
// re-placement can never recurse into another grow because the new
// capacity has headroom by construction.
func (t *Table[K]) grow(target uintptr) {
	old := t.slots

	t.slots = make([]K, target)
	for i := range t.slots {
		t.slots[i] = t.empty
	}

	t.capacity = target
	t.mask = target - 1
	t.size = 0
	t.maxProbe = 0
	t.watermark = uintptr(float64(target) * t.growthWatermark)

	for i := range old {
		if !t.equal(old[i], t.empty) {
			t.emplace(old[i])
		}
	}
}

// All iterates the occupied slots in physical array order, skipping empty
// ones. The order is not insertion order and is not stable across growth.
// The table must not be mutated during iteration.
func (t *Table[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range t.slots {
			if t.equal(t.slots[i], t.empty) {
				continue
			}
			if !yield(t.slots[i]) {
				return
			}
		}
	}
}
