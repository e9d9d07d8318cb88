package rhmap

// Stats is a point-in-time occupancy snapshot.
type Stats struct {
	Size             int
	Capacity         int
	MaxProbeDistance int
	LoadFactor       float64
}

// Stats reports the table's current size, capacity, the probe-distance
// high-water mark since the last growth, and the load factor.
func (t *Table[K]) Stats() Stats {
	return Stats{
		Size:             int(t.size),
		Capacity:         int(t.capacity),
		MaxProbeDistance: int(t.maxProbe),
		LoadFactor:       float64(t.size) / float64(t.capacity),
	}
}

// Stats of the map's underlying table.
func (m *Map[K, V]) Stats() Stats {
	return m.table.Stats()
}
