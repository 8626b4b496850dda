// Package main provides the ffnet CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ffnet/random"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("ffnet %s\n", version)
	case "shuffle":
		shuffle(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("ffnet - minimal feed-forward neural network engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  shuffle    Shuffle 0..n-1 with the engine's generator")
	fmt.Println("")
	fmt.Println("Demos: go run ./examples/xor, go run ./examples/quadratic")
}

func shuffle(args []string) {
	fs := flag.NewFlagSet("shuffle", flag.ExitOnError)
	n := fs.Int("n", 10, "Number of elements")
	seed := fs.Uint64("seed", 0, "Generator seed (0 = wall clock)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("shuffle: %v", err)
	}
	if *n < 0 {
		log.Fatalf("shuffle: -n must not be negative, got %d", *n)
	}

	rng := random.NewFromTime()
	if *seed != 0 {
		rng = random.New(*seed)
	}

	xs := make([]string, *n)
	for i := range xs {
		xs[i] = strconv.Itoa(i)
	}
	random.Shuffle(rng, xs)
	fmt.Printf("[%s]\n", strings.Join(xs, ", "))
}
