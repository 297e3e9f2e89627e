package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gobwas/avl"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/sync/errgroup"

	"github.com/gobwas/hopscotch"
)

func main() {
	var (
		p        int     // Number of goroutines.
		lo       int     // Min capacity.
		hi       int     // Max capacity.
		step     int     // Capacity range step.
		cs       string  // Comma-separated capacities list.
		load     float64 // Load factor to fill maps up to.
		trials   int     // Number of maps built per capacity.
		seed     int64
		hashFunc string // Optional hash function name.
		jsonOut  bool
		csv      bool

		verbose bool
		silent  bool
	)
	flag.IntVar(&p,
		"parallelism", runtime.NumCPU(),
		"number of concurrent processors",
	)
	flag.IntVar(&lo,
		"lo", 0,
		"capacity to start from",
	)
	flag.IntVar(&hi,
		"hi", 0,
		"capacity to end at",
	)
	flag.IntVar(&step,
		"step", 1,
		"capacity range step",
	)
	flag.StringVar(&cs,
		"capacities", "8,32,64,128,512,2024,10000",
		"comma-separated list of capacities",
	)
	flag.Float64Var(&load,
		"load", 1,
		"load factor to fill every map up to",
	)
	flag.IntVar(&trials,
		"trials", 10,
		"number of maps to build per capacity",
	)
	flag.Int64Var(&seed,
		"seed", 0,
		"seed for random keys",
	)
	flag.StringVar(&hashFunc,
		"hash", "",
		"custom hash function to be used (fnv)",
	)
	flag.BoolVar(&jsonOut,
		"json", false,
		"print json to standard output instead of csv",
	)
	flag.BoolVar(&verbose,
		"v", false,
		"be verbose",
	)
	flag.BoolVar(&silent,
		"s", false,
		"be silent",
	)
	flag.BoolVar(&csv,
		"csv", true,
		"print csv to standard output",
	)

	flag.Parse()

	logf := func(f string, args ...interface{}) {
		if !verbose {
			return
		}
		log.Printf(f, args...)
	}
	printf := func(f string, args ...interface{}) {
		if silent {
			return
		}
		fmt.Fprintf(os.Stderr, f, args...)
	}

	if load <= 0 || load > 1 {
		log.Fatalf("load factor must be in (0, 1] range; got %v", load)
	}
	if trials <= 0 {
		log.Fatalf("number of trials must be positive; got %d", trials)
	}
	if step <= 0 {
		log.Fatalf("step must be positive; got %d", step)
	}

	var hash hopscotch.HashFunc
	switch hashFunc {
	case "":
	case "fnv":
		hash = fnv32
	default:
		log.Fatalf("unexpected hash function: %q", hashFunc)
	}

	// Prepare list of capacities. We merge here capacities range (from `lo`
	// to `hi`) with manually specified capacities in `cs`.
	// We use tree to autofix duplicates (if any).
	var capacities avl.Tree
	for _, s := range strings.Split(cs, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		c, err := strconv.Atoi(s)
		if err != nil {
			log.Fatalf("malformed capacity %q: %v", s, err)
		}
		capacities, _ = capacities.Insert(capacity(c))
	}
	for c := lo; c < hi; c += step {
		capacities, _ = capacities.Insert(capacity(c))
	}
	logf("%d capacities are ready", capacities.Size())

	var (
		work    = make(chan int)
		results = make(chan result, 1)
		errc    = make(chan error, 1)
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(work)
		var err error
		capacities.InOrder(func(x avl.Item) bool {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return false
			case work <- int(x.(capacity)):
				return true
			}
		})
		return err
	})
	for i := 0; i < p; i++ {
		g.Go(func() error {
			for c := range work {
				r, err := measure(c, load, trials, seed, hash)
				if errors.Is(err, hopscotch.ErrCapacity) {
					logf("skipping capacity %d: %v", c, err)
					continue
				}
				if err != nil {
					return err
				}
				logf(
					"%d: collisions=%.2f displacements=%.2f overflows=%.2f latency=%s",
					r.Capacity, r.Collisions, r.Displacements, r.Overflows, r.Latency,
				)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- r:
				}
			}
			return nil
		})
	}
	go func() {
		errc <- g.Wait()
		close(results)
	}()

	var t avl.Tree
	for r := range results {
		t, _ = t.Insert(r)
		printf(".")
		if n := t.Size(); n%80 == 0 {
			c := capacities.Size()
			printf(
				"%d/%d(%.1f%%)\n",
				n, c,
				float64(n)/float64(c)*100, // Progress percentage.
			)
		}
	}
	printf("\n")
	if err := <-errc; err != nil {
		log.Fatal(err)
	}

	switch {
	case jsonOut:
		list := make([]result, 0, t.Size())
		t.InOrder(func(x avl.Item) bool {
			list = append(list, x.(result))
			return true
		})
		bts, err := sonnet.Marshal(list)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(append(bts, '\n'))

	case csv:
		tw := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
		t.InOrder(func(x avl.Item) bool {
			r := x.(result)
			fmt.Fprintf(tw,
				"%d,\t%d,\t%.4f,\t%.4f,\t%.4f,\t%.4f\n",
				r.Capacity, r.Neighborhood,
				r.Collisions/float64(r.Entries)*100,
				r.Displacements/float64(r.Entries)*100,
				r.Overflows/float64(r.Entries)*100,
				r.Latency.Seconds()*1000,
			)
			return true
		})
		tw.Flush()
	}

	printf("OK")
}

// measure builds trials maps of capacity c, fills them up to the load factor
// and returns statistics averaged over the trials.
func measure(c int, load float64, trials int, seed int64, hash hopscotch.HashFunc) (result, error) {
	r := result{
		Capacity: c,
		Entries:  int(load * float64(c)),
	}
	if r.Entries == 0 {
		r.Entries = 1
	}
	for i := 0; i < trials; i++ {
		m, err := hopscotch.New(c, hash)
		if err != nil {
			return r, err
		}
		r.Neighborhood = m.NeighborhoodSize()

		rnd := rand.New(rand.NewSource(seed + int64(c)*int64(trials) + int64(i)))
		keys := make([]string, 0, r.Entries)
		seen := make(map[string]bool, r.Entries)
		for len(keys) < r.Entries {
			s := fmt.Sprintf("%016x", rnd.Int63())
			if seen[s] {
				continue
			}
			seen[s] = true
			keys = append(keys, s)
		}

		start := time.Now()
		for j, key := range keys {
			if !m.Set(key, j) {
				return r, fmt.Errorf(
					"capacity %d: map is full after %d of %d keys",
					c, j, len(keys),
				)
			}
		}
		r.Latency += time.Since(start)

		for j, key := range keys {
			if v := m.Get(key); v != j {
				return r, fmt.Errorf(
					"capacity %d: unexpected value for %q: %v; want %d",
					c, key, v, j,
				)
			}
		}

		st := m.Stats()
		r.Collisions += float64(st.Collisions)
		r.Displacements += float64(st.Displacements)
		r.Overflows += float64(st.Overflows)
		m.Destroy()
	}
	n := float64(trials)
	r.Collisions /= n
	r.Displacements /= n
	r.Overflows /= n
	r.Latency /= time.Duration(trials)
	return r, nil
}

type result struct {
	Capacity      int           `json:"capacity"`
	Neighborhood  int           `json:"neighborhood"`
	Entries       int           `json:"entries"`
	Collisions    float64       `json:"collisions"`
	Displacements float64       `json:"displacements"`
	Overflows     float64       `json:"overflows"`
	Latency       time.Duration `json:"latency_ns"`
}

func (r result) Compare(x avl.Item) int {
	return r.Capacity - x.(result).Capacity
}

type capacity int

func (c capacity) Compare(x avl.Item) int {
	return int(c - x.(capacity))
}

func fnv32(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}
