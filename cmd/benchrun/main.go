package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

var perftRuns = []struct {
	position, depth, label string
}{
	{"start", "3", "Initial"},
	{"start", "4", "Initial"},
	{"start", "5", "Initial"},
	{"start", "6", "Initial"},
	{"kiwipete", "3", "Kiwipete"},
	{"kiwipete", "4", "Kiwipete"},
	{"endgame", "5", "Endgame"},
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	// Print a simple header explaining Go's benchmark columns
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Also run perft performance tests (macro throughput) with one-line outputs
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, r := range perftRuns {
		run("go", "run", "./cmd/perft", "-position", r.position, "-depth", r.depth, "-label", r.label)
	}
	// Same as the deepest initial run, with a 64 MiB table
	run("go", "run", "./cmd/perft", "-depth", "6", "-cache", "64", "-label", "Initial+TT")

	fmt.Println("\nReference check:")
	run("go", "run", "./cmd/perft", "-position", "kiwipete", "-depth", "3", "-verify")
	os.Exit(0)
}
