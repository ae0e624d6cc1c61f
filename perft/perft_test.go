package perft_test

import (
	"testing"

	"chess-perft/chess"
	"chess-perft/oracle"
	"chess-perft/perft"
	"chess-perft/positions"
)

// runKnown checks the position's published counts up to maxDepth.
func runKnown(t *testing.T, pos positions.Position, opts perft.Options, maxDepth int) {
	t.Helper()
	pc := perft.New(opts)
	b := pos.Board()
	for depth := 0; depth <= maxDepth && depth < len(pos.Nodes); depth++ {
		if got := pc.Count(depth, b, pos.ToMove); got != pos.Nodes[depth] {
			t.Fatalf("%s depth%d: got %d want %d", pos.Name, depth, got, pos.Nodes[depth])
		}
		if !b.Equal(pos.Board()) {
			t.Fatalf("%s depth%d: board not restored:\n%v", pos.Name, depth, b)
		}
	}
}

func TestPerftInitialPosition(t *testing.T) {
	b := chess.NewStandard()
	if got := perft.Perft(0, b, chess.White); got != 1 {
		t.Fatalf("perft depth0: got %d want %d", got, 1)
	}
	if got := perft.Perft(1, b, chess.White); got != 20 {
		t.Fatalf("perft depth1: got %d want %d", got, 20)
	}
	if got := perft.Perft(2, b, chess.White); got != 400 {
		t.Fatalf("perft depth2: got %d want %d", got, 400)
	}
}

func TestPerftInitialDeep(t *testing.T) {
	runKnown(t, positions.Start, perft.Options{}, 4)

	// Depth 5 can be heavier; allow skipping under -short
	if testing.Short() {
		t.Skip("skipping depth 5 perft in short mode")
	}
	b := chess.NewStandard()
	if got := perft.Perft(5, b, chess.White); got != 4865609 {
		t.Fatalf("Initial depth5: got %d want %d", got, 4865609)
	}
}

func TestPerftKiwipeteStrict(t *testing.T) {
	runKnown(t, positions.Kiwipete, perft.Options{StrictCastling: true}, 3)
}

func TestPerftEndgame(t *testing.T) {
	runKnown(t, positions.Endgame, perft.Options{}, 4)
}

func TestPerftCachedMatchesUncached(t *testing.T) {
	for _, pos := range []positions.Position{positions.Start, positions.Kiwipete, positions.Endgame} {
		opts := perft.Options{StrictCastling: pos.Strict}
		plain := perft.New(opts).Count(3, pos.Board(), pos.ToMove)

		opts.CacheMB = 1
		pc := perft.New(opts)
		b := pos.Board()
		// Twice, so the second run is served from the table.
		for i := 0; i < 2; i++ {
			if got := pc.Count(3, b, pos.ToMove); got != plain {
				t.Fatalf("%s run %d: cached got %d want %d", pos.Name, i, got, plain)
			}
		}
		if probes, hits := pc.Table().Stats(); probes == 0 || hits == 0 {
			t.Fatalf("%s: table unused (probes=%d hits=%d)", pos.Name, probes, hits)
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := positions.Kiwipete
	pc := perft.New(perft.Options{StrictCastling: true})
	div := pc.Divide(2, pos.Board(), pos.ToMove)
	if len(div) != int(pos.Nodes[1]) {
		t.Fatalf("divide root moves: got %d want %d", len(div), pos.Nodes[1])
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != pos.Nodes[2] {
		t.Fatalf("divide sum: got %d want %d", sum, pos.Nodes[2])
	}
	if got := pc.Divide(0, pos.Board(), pos.ToMove); len(got) != 0 {
		t.Fatalf("divide depth0: got %d entries want 0", len(got))
	}
}

// The reference generator applies full castling legality, so strict mode
// must agree with it move for move.
func TestDivideMatchesReference(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, pos := range []positions.Position{positions.Start, positions.Kiwipete, positions.Endgame} {
		got := perft.New(perft.Options{StrictCastling: true}).Divide(depth, pos.Board(), pos.ToMove)
		want := oracle.Divide(pos.FEN, depth)
		for _, d := range oracle.Compare(got, want) {
			t.Errorf("%s depth%d: %v", pos.Name, depth, d)
		}
	}
}

func TestPerftAfterSprintAllowsEnPassant(t *testing.T) {
	b := chess.New()
	b.Populate(func(b *chess.Board) {
		b.Place(chess.A8, chess.BlackKing)
		b.Place(chess.H1, chess.WhiteKing)
		b.Place(chess.E5, chess.WhitePawn)
		b.Place(chess.D7, chess.BlackPawn)
	})
	for _, c := range []chess.Color{chess.White, chess.Black} {
		b.RevokeCastling(c, chess.Kingside)
		b.RevokeCastling(c, chess.Queenside)
	}
	b.MakeMove(chess.NewMove(chess.D7, chess.D5, chess.FlagPawnSprint))

	// E6, exd6 e.p. and three king steps
	if got := perft.Perft(1, b, chess.White); got != 5 {
		t.Fatalf("EP depth1: got %d want %d", got, 5)
	}
	if got, want := perft.Perft(2, b, chess.White), oracle.Perft("k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 2); got != want {
		t.Fatalf("EP depth2: got %d want %d", got, want)
	}
}
