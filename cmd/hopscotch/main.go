package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"
)

func main() {
	var (
		seed    int64
		verbose bool
		silent  bool
	)
	flag.Int64Var(&seed,
		"seed", time.Now().UnixNano(),
		"seed for random keys used by test command",
	)
	flag.BoolVar(&verbose,
		"v", false,
		"be verbose",
	)
	flag.BoolVar(&silent,
		"s", false,
		"be silent (no prompt and banner)",
	)
	flag.Parse()

	sh := shell{
		out:     os.Stdout,
		rnd:     rand.New(rand.NewSource(seed)),
		verbose: verbose,
	}
	if !silent {
		sh.printf("hopscotch\n---------\n\ntype help to see commands\n")
	}
	if err := sh.run(os.Stdin, !silent); err != nil {
		log.Fatal(err)
	}
}
