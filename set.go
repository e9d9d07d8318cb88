package rhmap

// Set is the core table used directly as a set of keys; no adaptation is
// needed, an occupied slot is membership.
type Set[K comparable] = Table[K]

// Returns a new set. Equivalent to New.
func NewSet[K comparable](empty K, capacity int, opts ...Option[K]) *Set[K] {
	return New(empty, capacity, opts...)
}
