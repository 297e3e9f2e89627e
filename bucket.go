package hopscotch

import "fmt"

// noHome is the home index of an overflowed entry. Such entry does not
// belong to any neighborhood and is reachable only through the overflow chain
// of the bucket its key hashes to.
const noHome = -1

// minCapacity is the smallest capacity a map can be built with.
const minCapacity = 3

// bucket represents a single slot of the map.
type bucket struct {
	// used reports whether bucket holds a live entry.
	used bool

	key   string
	value Value

	// sum is a cached hash of the key.
	sum uint32

	// home is an index of the bucket key hashes to, or noHome if the entry
	// lives in the overflow chain.
	home int

	// next and prev are relative offsets of the neighbor overflowed entries.
	// For the first entry in a chain prev points to the chain root.
	// Zero means there is no link in that direction.
	// Both move together with the entry.
	next int
	prev int

	// head is a relative offset to the first overflowed entry of the chain
	// rooted at this bucket. Zero means there is no chain.
	// Unlike other fields it belongs to the bucket position, not to the entry,
	// thus it is never moved or reset along with the entry.
	head int
}

func (b *bucket) match(key string, sum uint32) bool {
	return b.used && b.sum == sum && b.key == key
}

func (b *bucket) overflowed() bool {
	return b.used && b.home == noHome
}

// reset clears the entry stored in b, keeping the chain root link.
func (b *bucket) reset() {
	*b = bucket{head: b.head}
}

// neighborhoodSize chooses the neighborhood size for the given capacity.
// The scan of a neighborhood is linear, so for large maps its size is capped
// well below the capacity; small maps use nearly all of the buckets.
func neighborhoodSize(capacity int) (int, error) {
	switch {
	case capacity < minCapacity:
		return 0, &CapacityError{Capacity: capacity}
	case capacity <= 4:
		return capacity - 1, nil
	case capacity <= 32:
		return 4, nil
	case capacity <= 64:
		return 8, nil
	case capacity <= 128:
		return 16, nil
	case capacity <= 512:
		return 32, nil
	case capacity <= 2024:
		return 64, nil
	default:
		return 128, nil
	}
}

// lowerBound returns the first index of the neighborhood of home.
// The neighborhood spans m.size+1 buckets, is centered on home and is shifted
// to stay within the bucket array near its ends.
func (m *Map) lowerBound(home int) int {
	lo := home - m.size/2
	if hi := m.capacity - 1 - m.size; lo > hi {
		lo = hi
	}
	if lo < 0 {
		lo = 0
	}
	return lo
}

// upperBound returns the last index of the neighborhood of home.
func (m *Map) upperBound(home int) int {
	return m.lowerBound(home) + m.size
}

// inNeighborhood reports whether index i is within the neighborhood of home.
func (m *Map) inNeighborhood(home, i int) bool {
	lo := m.lowerBound(home)
	return lo <= i && i <= lo+m.size
}

// root returns the index of the bucket the entry at i hashes to.
func (m *Map) root(i int) int {
	return m.index(m.buckets[i].sum)
}

// link appends overflowed entry at i to the tail of the chain rooted at r.
func (m *Map) link(r, i int) {
	t := r
	off := m.buckets[r].head
	if off == 0 {
		m.buckets[r].head = i - r
	} else {
		for t += off; m.buckets[t].next != 0; {
			t += m.buckets[t].next
		}
		m.buckets[t].next = i - t
	}
	m.buckets[i].prev = t - i
	m.buckets[i].next = 0
}

// unlink removes overflowed entry at i from its chain.
func (m *Map) unlink(i int) {
	b := &m.buckets[i]
	p := i + b.prev
	var off int
	if b.next != 0 {
		n := i + b.next
		off = n - p
		m.buckets[n].prev = p - n
	}
	if p == m.root(i) {
		m.buckets[p].head = off
	} else {
		m.buckets[p].next = off
	}
	b.next = 0
	b.prev = 0
}

// relink updates neighbors of the overflowed entry which has just been
// copied from bucket i into bucket j.
func (m *Map) relink(i, j int) {
	b := &m.buckets[j]
	p := i + b.prev
	if p == m.root(j) {
		m.buckets[p].head = j - p
	} else {
		m.buckets[p].next = j - p
	}
	b.prev = p - j
	if b.next != 0 {
		n := i + b.next
		m.buckets[n].prev = j - n
		b.next = n - j
	}
}

// move relocates the entry stored at i into the empty bucket j.
// Overflowed entry moved into its own neighborhood leaves the chain and
// becomes a regular one.
func (m *Map) move(i, j int) {
	if m.buckets[j].used {
		panic(fmt.Sprintf(
			"hopscotch: internal error: moving %d into occupied bucket %d",
			i, j,
		))
	}
	src := &m.buckets[i]
	dst := &m.buckets[j]
	chained := src.home == noHome
	if chained {
		if r := m.root(i); m.inNeighborhood(r, j) {
			m.unlink(i)
			src.home = r
			chained = false
		}
	}
	head := dst.head
	*dst = *src
	dst.head = head
	if chained {
		m.relink(i, j)
	}
	src.reset()
}
