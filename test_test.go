package hopscotch

import (
	"fmt"
	"strings"
	"testing"
)

// setupHash returns HashFunc which uses predefined digests for the given
// keys and falls back to Sum32 for others.
func setupHash(t testing.TB, values map[string]uint32) HashFunc {
	return func(key string) uint32 {
		v, has := values[key]
		if has {
			t.Logf("using digest value for key %q: %d", key, v)
			return v
		}
		return Sum32(key)
	}
}

func makeMap(t testing.TB, capacity int, hash HashFunc) *Map {
	m, err := New(capacity, hash)
	if err != nil {
		t.Fatalf("can't create map: %v", err)
	}
	return m
}

func mustSet(t testing.TB, m *Map, key string, v Value) {
	if !m.Set(key, v) {
		t.Fatalf("can't set %q: map is full (%d/%d)", key, m.Len(), m.Cap())
	}
	assertConsistent(t, m)
}

func mustRemove(t testing.TB, m *Map, key string) Value {
	v := m.Remove(key)
	if v == nil {
		t.Fatalf("can't remove %q: not found", key)
	}
	assertConsistent(t, m)
	return v
}

func assertConsistent(t testing.TB, m *Map) {
	if err := m.check(); err != nil {
		t.Helper()
		t.Fatalf("inconsistent map: %v\n%s", err, dump(m))
	}
}

// assertIndex checks that key is stored at the bucket i.
func assertIndex(t testing.TB, m *Map, key string, i int) {
	t.Helper()
	if act := m.find(key, m.hash(key)); act != i {
		t.Fatalf("unexpected index of %q: %d; want %d\n%s", key, act, i, dump(m))
	}
}

func snapshot(m *Map) []bucket {
	return append(([]bucket)(nil), m.buckets...)
}

func dump(m *Map) string {
	var sb strings.Builder
	for i, b := range m.buckets {
		switch {
		case b.used:
			fmt.Fprintf(&sb,
				"%3d: %q home=%d next=%+d prev=%+d head=%+d\n",
				i, b.key, b.home, b.next, b.prev, b.head,
			)
		case b.head != 0:
			fmt.Fprintf(&sb, "%3d: - head=%+d\n", i, b.head)
		default:
			fmt.Fprintf(&sb, "%3d: -\n", i)
		}
	}
	return sb.String()
}
