package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"chess-perft/chess"
	"chess-perft/oracle"
	"chess-perft/perft"
	"chess-perft/positions"
)

func main() {
	posName := flag.String("position", positions.Start.Name, "Named position: "+strings.Join(positions.Names(), ", "))
	depth := flag.Int("depth", 5, "Perft depth")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	strict := flag.Bool("strict", false, "Reject castles through attacked squares (implied by positions that need it)")
	cacheMB := flag.Int("cache", 0, "Transposition table size in MiB (0 disables)")
	verify := flag.Bool("verify", false, "Compare the root divide against the reference generator")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	if *repeat <= 0 {
		fmt.Fprintln(os.Stderr, "-repeat must be > 0")
		os.Exit(2)
	}
	if *cacheMB < 0 {
		fmt.Fprintln(os.Stderr, "-cache must be >= 0")
		os.Exit(2)
	}

	pos, err := positions.Lookup(*posName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "position: %v\n", err)
		os.Exit(2)
	}
	opts := perft.Options{StrictCastling: *strict || pos.Strict, CacheMB: *cacheMB}

	if *verify {
		if err := verifyDivide(pos, *depth, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s depth %d matches reference\n", pos.Name, *depth)
		return
	}

	// Optional divide output
	if *divide {
		printDivide(perft.New(opts).Divide(*depth, pos.Board(), pos.ToMove))
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop; each repetition gets a fresh counter so the table starts cold.
	board := pos.Board()
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft.New(opts).Count(*depth, board, pos.ToMove)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if known := pos.Nodes; *depth < len(known) && totalNodes != known[*depth]*uint64(*repeat) {
		fmt.Fprintf(os.Stderr, "warning: %s depth %d published count is %d\n", pos.Name, *depth, known[*depth])
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func printDivide(div map[chess.Move]uint64) {
	// Sort moves for stable output
	type kv struct {
		m chess.Move
		n uint64
	}
	arr := make([]kv, 0, len(div))
	var sum uint64
	for m, n := range div {
		arr = append(arr, kv{m, n})
		sum += n
	}
	sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
	for _, x := range arr {
		fmt.Printf("%s: %d\n", x.m.String(), x.n)
	}
	fmt.Printf("Total: %d\n", sum)
}

var errMismatch = errors.New("root moves differ from the reference generator")

// verifyDivide always counts with strict castling, the rule the reference applies.
func verifyDivide(pos positions.Position, depth int, opts perft.Options) error {
	opts.StrictCastling = true
	got := perft.New(opts).Divide(depth, pos.Board(), pos.ToMove)
	diffs := oracle.Compare(got, oracle.Divide(pos.FEN, depth))
	if len(diffs) == 0 {
		return nil
	}
	lines := make([]string, len(diffs))
	for i, d := range diffs {
		lines[i] = "  " + d.String()
	}
	return fmt.Errorf("verify %s depth %d: %w:\n%s", pos.Name, depth, errMismatch, strings.Join(lines, "\n"))
}
