package hopscotch

import (
	"errors"
	"fmt"
)

// ErrCapacity is matched by errors returned from New when requested capacity
// is too small.
var ErrCapacity = errors.New("hopscotch: capacity is too small")

// CapacityError is returned by New when requested capacity is less than the
// minimum of three buckets.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf(
		"hopscotch: capacity %d is too small; must be at least %d",
		e.Capacity, minCapacity,
	)
}

func (e *CapacityError) Is(err error) bool {
	return err == ErrCapacity
}

// Value is an opaque reference stored in the map.
//
// The map never dereferences, copies or releases values. The caller owns the
// data a value refers to and is responsible for its lifetime: it must stay
// valid while the value is stored in the map. Remove and overwriting Set only
// return the previous reference back.
type Value interface{}

// Stats holds cumulative counters of a Map.
type Stats struct {
	// Collisions is a number of insertions which found home bucket occupied.
	Collisions int
	// Displacements is a number of entries moved to make room for others.
	Displacements int
	// Overflows is a number of entries put into overflow chains.
	Overflows int
	// Updates is a number of Set calls which replaced value of existing key.
	Updates int
}

// Map is a fixed-capacity hash map.
// It is not goroutine safe.
type Map struct {
	capacity int
	size     int
	count    int
	buckets  []bucket
	hash     HashFunc
	stats    Stats

	trace traceMap
}

// New creates a map holding at most capacity entries.
// If hash is nil, Sum32 is used.
// It returns *CapacityError if capacity is less than three.
func New(capacity int, hash HashFunc) (*Map, error) {
	size, err := neighborhoodSize(capacity)
	if err != nil {
		return nil, err
	}
	if hash == nil {
		hash = Sum32
	}
	m := &Map{
		capacity: capacity,
		size:     size,
		buckets:  make([]bucket, capacity),
		hash:     hash,
	}
	setupMapTrace(m)
	return m, nil
}

// Get returns value stored for the key.
// It returns nil if there is no such key.
func (m *Map) Get(key string) Value {
	if m.buckets == nil {
		return nil
	}
	i := m.find(key, m.hash(key))
	if i == m.capacity {
		return nil
	}
	return m.buckets[i].value
}

// Remove deletes the key from the map and returns its value.
// It returns nil if there is no such key.
func (m *Map) Remove(key string) Value {
	if m.buckets == nil {
		return nil
	}
	trace := m.trace.onRemove(key)
	i := m.find(key, m.hash(key))
	if i == m.capacity {
		trace(false)
		return nil
	}
	b := &m.buckets[i]
	if b.home == noHome {
		m.unlink(i)
	}
	v := b.value
	b.reset()
	m.count--

	assertValid(m)
	trace(true)

	return v
}

// Load returns the ratio of stored entries to the capacity.
func (m *Map) Load() float64 {
	return float64(m.count) / float64(m.capacity)
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return m.count
}

// Cap returns the capacity of the map.
func (m *Map) Cap() int {
	return m.capacity
}

// NeighborhoodSize returns the number of buckets following the first one in
// every neighborhood.
func (m *Map) NeighborhoodSize() int {
	return m.size
}

// Stats returns cumulative statistics of the map.
func (m *Map) Stats() Stats {
	return m.stats
}

// Destroy releases the buckets of the map. Stored values are not touched.
// After Destroy the map is empty and Set always fails.
func (m *Map) Destroy() {
	m.buckets = nil
	m.count = 0
}

func (m *Map) index(sum uint32) int {
	return int(sum % uint32(m.capacity))
}

// find returns the index of the bucket holding the key.
// It returns m.capacity if there is no such key.
func (m *Map) find(key string, sum uint32) int {
	home := m.index(sum)
	if m.buckets[home].match(key, sum) {
		return home
	}
	for i, hi := m.lowerBound(home), m.upperBound(home); i <= hi; i++ {
		if i != home && m.buckets[i].match(key, sum) {
			return i
		}
	}
	for i, off := home, m.buckets[home].head; off != 0; off = m.buckets[i].next {
		i += off
		if m.buckets[i].match(key, sum) {
			return i
		}
	}
	return m.capacity
}
