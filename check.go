package hopscotch

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// check verifies the structural invariants of the map.
// It returns non-nil error describing the first violation found.
func (m *Map) check() error {
	var (
		count      int
		overflowed uint64
		keys       = make(map[string]int, m.count)
	)
	for i := range m.buckets {
		b := &m.buckets[i]
		if !b.used {
			if b.next != 0 || b.prev != 0 {
				return fmt.Errorf(
					"empty bucket %d has chain links: next=%+d prev=%+d",
					i, b.next, b.prev,
				)
			}
			continue
		}
		count++
		if j, has := keys[b.key]; has {
			return fmt.Errorf("key %q is stored twice: at %d and %d", b.key, j, i)
		}
		keys[b.key] = i
		if sum := m.hash(b.key); sum != b.sum {
			return fmt.Errorf("bucket %d: stale hash %d; want %d", i, b.sum, sum)
		}
		if b.home == noHome {
			overflowed++
			continue
		}
		if h := m.index(b.sum); b.home != h {
			return fmt.Errorf("bucket %d: home is %d; want %d", i, b.home, h)
		}
		if !m.inNeighborhood(b.home, i) {
			return fmt.Errorf(
				"bucket %d is out of neighborhood [%d, %d] of %d",
				i, m.lowerBound(b.home), m.upperBound(b.home), b.home,
			)
		}
	}
	if count != m.count {
		return fmt.Errorf("counter is %d; but %d buckets are used", m.count, count)
	}

	visited := roaring.New()
	for r := range m.buckets {
		prev := r
		for i, off := r, m.buckets[r].head; off != 0; off = m.buckets[i].next {
			i += off
			if i < 0 || i >= m.capacity {
				return fmt.Errorf("chain of %d: link %+d points out of range", r, off)
			}
			if i == r {
				return fmt.Errorf("chain of %d: links to its own root", r)
			}
			if !visited.CheckedAdd(uint32(i)) {
				return fmt.Errorf("chain of %d: bucket %d is linked twice", r, i)
			}
			b := &m.buckets[i]
			if !b.overflowed() {
				return fmt.Errorf("chain of %d: bucket %d is not overflowed", r, i)
			}
			if h := m.root(i); h != r {
				return fmt.Errorf("chain of %d: bucket %d belongs to %d", r, i, h)
			}
			if p := i + b.prev; p != prev {
				return fmt.Errorf(
					"chain of %d: bucket %d links back to %d; want %d",
					r, i, p, prev,
				)
			}
			prev = i
		}
	}
	if n := visited.GetCardinality(); n != overflowed {
		return fmt.Errorf(
			"%d overflowed entries are stored; but only %d are reachable",
			overflowed, n,
		)
	}
	return nil
}
