//go:build hopscotch_debug

package hopscotch

import (
	"fmt"
	"log"
	"strings"
)

const debug = true

func assertValid(m *Map) {
	if err := m.check(); err != nil {
		panic(fmt.Sprintf(
			"hopscotch: internal error: %v", err,
		))
	}
}

func setupMapTrace(m *Map) {
	log.SetFlags(0)

	var depth int
	enter := func() {
		depth++
		log.SetPrefix(strings.Repeat(" ", depth*4))
	}
	leave := func() {
		depth--
		log.SetPrefix(strings.Repeat(" ", depth*4))
	}
	m.trace = m.trace.Compose(traceMap{
		OnSet: func(key string, home int) traceMapSet {
			log.Printf("setting: %q home=%d", key, home)
			enter()
			return traceMapSet{
				OnCollision: func(occupant string) {
					log.Printf("collision with key: %q", occupant)
				},
				OnDisplace: func(from, to int) {
					log.Printf("displaced: %d -> %d", from, to)
				},
				OnOverflow: func(i int) {
					log.Printf("overflowed into chain at: %d", i)
				},
				OnDone: func(i int) {
					leave()
					log.Printf("set at: %d (load %.2f)", i, m.Load())
				},
			}
		},
		OnRemove: func(key string) func(bool) {
			log.Printf("removing: %q", key)
			enter()
			return func(removed bool) {
				leave()
				if removed {
					log.Println("removed")
				} else {
					log.Println("not found")
				}
			}
		},
		OnFull: func(key string) {
			log.Printf("map is full; can not set %q", key)
		},
	})
}
