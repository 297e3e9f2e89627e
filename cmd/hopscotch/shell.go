package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/gobwas/hopscotch"
)

const help = `construct [size]   Constructs a map of size [size]. Only one instance may exist at a time.
destruct           Destructs the current map
set [key] [value]  Sets [value] at [key]
get [key]          Returns the value at [key]
remove [key]       Returns and removes a value at [key]
load               Returns the load of the map
stats              Returns displacement statistics of the map
test [size]        Runs a test of random keys and values, constructs new map
exit               Exits the program
`

type shell struct {
	out     io.Writer
	rnd     *rand.Rand
	verbose bool

	m *hopscotch.Map
}

func (s *shell) logf(f string, args ...interface{}) {
	if !s.verbose {
		return
	}
	log.Printf(f, args...)
}

func (s *shell) printf(f string, args ...interface{}) {
	fmt.Fprintf(s.out, f, args...)
}

// run reads commands from r until it is exhausted or exit command is
// received.
func (s *shell) run(r io.Reader, prompt bool) error {
	sc := bufio.NewScanner(r)
	for {
		if prompt {
			s.printf("> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		quit, err := s.exec(sc.Text())
		if err != nil {
			s.printf("error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (s *shell) exec(line string) (quit bool, err error) {
	c := cursor{line: line}
	switch cmd := c.next(); cmd {
	case "":
		return false, nil
	case "help":
		s.printf("%s", help)
	case "exit":
		return true, nil
	case "construct":
		size, err := c.number("size")
		if err != nil {
			return false, err
		}
		return false, s.construct(size)
	case "destruct":
		if s.m == nil {
			return false, fmt.Errorf("no map constructed")
		}
		s.m.Destroy()
		s.m = nil
		s.printf("destructed\n")
	case "test":
		size, err := c.number("size")
		if err != nil {
			return false, err
		}
		return false, s.test(size)
	default:
		if s.m == nil {
			return false, fmt.Errorf("no map constructed; use construct first")
		}
		return false, s.access(cmd, &c)
	}
	return false, nil
}

func (s *shell) construct(size int) error {
	if s.m != nil {
		return fmt.Errorf("instance of map already exists, one instance at a time")
	}
	m, err := hopscotch.New(size, nil)
	if err != nil {
		return err
	}
	s.m = m
	s.printf(
		"constructed map of size %d with neighborhood of %d\n",
		m.Cap(), m.NeighborhoodSize(),
	)
	return nil
}

// access executes commands which need constructed map.
func (s *shell) access(cmd string, c *cursor) error {
	switch cmd {
	case "set":
		key, err := c.arg("key")
		if err != nil {
			return err
		}
		value, err := c.arg("value")
		if err != nil {
			return err
		}
		prev := s.m.Stats()
		if !s.m.Set(key, value) {
			s.printf("the map is full\n")
			return nil
		}
		if next := s.m.Stats(); next.Collisions > prev.Collisions {
			s.logf(
				"collision on %q: %d displacement(s), %d overflow(s)",
				key,
				next.Displacements-prev.Displacements,
				next.Overflows-prev.Overflows,
			)
		}
		s.printf("ok\n")
	case "get":
		key, err := c.arg("key")
		if err != nil {
			return err
		}
		if v := s.m.Get(key); v != nil {
			s.printf("%v\n", v)
		} else {
			s.printf("not found\n")
		}
	case "remove":
		key, err := c.arg("key")
		if err != nil {
			return err
		}
		if v := s.m.Remove(key); v != nil {
			s.printf("removed %v\n", v)
		} else {
			s.printf("not found\n")
		}
	case "load":
		s.printf("%.4f\n", s.m.Load())
	case "stats":
		st := s.m.Stats()
		s.printf(
			"entries=%d capacity=%d collisions=%d displacements=%d overflows=%d updates=%d\n",
			s.m.Len(), s.m.Cap(),
			st.Collisions, st.Displacements, st.Overflows, st.Updates,
		)
	default:
		return fmt.Errorf("unknown command %q; type help to see commands", cmd)
	}
	return nil
}

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (s *shell) randomKey() string {
	p := make([]byte, 1+s.rnd.Intn(15))
	for i := range p {
		p[i] = alphabet[s.rnd.Intn(len(alphabet))]
	}
	return string(p)
}

// test replaces current map with a new one of given size, fills it with
// random keys and checks that every key is retrievable.
func (s *shell) test(size int) error {
	m, err := hopscotch.New(size, nil)
	if err != nil {
		return err
	}
	if s.m != nil {
		s.m.Destroy()
	}
	s.m = m

	type pair struct {
		key   string
		value int
	}
	var (
		pairs = make([]pair, size)
		last  = make(map[string]int, size)
	)
	for i := range pairs {
		pairs[i] = pair{
			key:   s.randomKey(),
			value: 1 + s.rnd.Intn(4294967),
		}
	}
	var failed int
	for _, p := range pairs {
		if !m.Set(p.key, p.value) {
			failed++
			s.printf("failed for key: %s\n", p.key)
			continue
		}
		last[p.key] = p.value
	}
	s.printf("finished filling the map\n")
	s.logf("%d keys are set; %d unique", len(pairs)-failed, len(last))

	for _, p := range pairs {
		v, has := last[p.key]
		if !has {
			continue
		}
		if act := m.Get(p.key); act != v {
			failed++
			s.printf("failed retrieving the key: %s\n", p.key)
		}
	}
	s.printf("finished retrieval test\n")
	if failed > 0 {
		return fmt.Errorf("%d failures", failed)
	}
	s.printf("testing stage is done\n")
	return nil
}
