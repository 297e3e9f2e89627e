package hopscotch

import "fmt"

// Set stores value v for the key.
//
// If the key already exists its value is replaced, even when the map is full.
// Set returns false if the key is new and the map is full; the map is left
// unchanged in that case.
func (m *Map) Set(key string, v Value) bool {
	if m.buckets == nil {
		return false
	}
	sum := m.hash(key)
	if i := m.find(key, sum); i != m.capacity {
		m.buckets[i].value = v
		m.stats.Updates++
		return true
	}
	if m.count == m.capacity {
		m.trace.onFull(key)
		return false
	}
	home := m.index(sum)
	trace := m.trace.onSet(key, home)

	i, chained := m.place(home, trace)
	b := &m.buckets[i]
	b.used = true
	b.key = key
	b.value = v
	b.sum = sum
	if chained {
		b.home = noHome
		m.link(home, i)
	} else {
		b.home = home
	}
	m.count++

	assertValid(m)
	trace.onDone(i)

	return true
}

// place finds an empty bucket for the entry hashing to home.
// It reports whether the bucket is out of the home neighborhood and the entry
// must be put into the overflow chain.
//
// The map must not be full.
func (m *Map) place(home int, trace traceMapSet) (i int, chained bool) {
	if !m.buckets[home].used {
		return home, false
	}
	m.stats.Collisions++
	trace.onCollision(m.buckets[home].key)

	lo, hi := m.lowerBound(home), m.upperBound(home)
	for j := lo; j <= hi; j++ {
		if !m.buckets[j].used {
			return j, false
		}
	}

	// Whole neighborhood is occupied. Find the closest empty bucket around it
	// and try to move it into the neighborhood.
	empty := m.probe(lo, hi)
	for {
		j, ok := m.displace(home, empty)
		if !ok {
			m.stats.Overflows++
			trace.onOverflow(empty)
			return empty, true
		}
		m.stats.Displacements++
		trace.onDisplace(j, empty)

		empty = j
		if m.inNeighborhood(home, empty) {
			return empty, false
		}
	}
}

// probe returns the empty bucket closest to the [lo, hi] range. On equal
// distance the bucket below lo is preferred.
func (m *Map) probe(lo, hi int) int {
	for d := 1; lo-d >= 0 || hi+d < m.capacity; d++ {
		if i := lo - d; i >= 0 && !m.buckets[i].used {
			return i
		}
		if i := hi + d; i < m.capacity && !m.buckets[i].used {
			return i
		}
	}
	panic(fmt.Sprintf(
		"hopscotch: internal error: no empty bucket with %d/%d entries",
		m.count, m.capacity,
	))
}

// displace tries to move some entry located between the empty bucket and
// home into the empty bucket. Candidates are checked starting from the one
// adjacent to the empty bucket, at most m.size of them and never beyond home.
//
// An overflowed entry can be moved anywhere. A regular one only if the empty
// bucket is within its own neighborhood.
//
// It returns the index of the bucket which became empty.
func (m *Map) displace(home, empty int) (int, bool) {
	step := 1
	if empty > home {
		step = -1
	}
	for n, i := 0, empty+step; n < m.size; n, i = n+1, i+step {
		b := &m.buckets[i]
		if !b.used {
			panic(fmt.Sprintf(
				"hopscotch: internal error: unexpected empty bucket %d between %d and %d",
				i, empty, home,
			))
		}
		if b.home == noHome || m.inNeighborhood(b.home, empty) {
			m.move(i, empty)
			return i, true
		}
		if i == home {
			break
		}
	}
	return 0, false
}
