// Package positions holds the named test positions shared by the perft
// tests, the benchmarks and the perft command.
package positions

import (
	"fmt"
	"sort"

	"chess-perft/chess"
)

// Position is a named starting point for perft.
type Position struct {
	Name   string
	ToMove chess.Color
	Setup  func(*chess.Board)
	// FEN is handed to the reference generator only; this module never parses it.
	FEN string
	// Known node counts, index = depth.
	Nodes []uint64
	// Strict marks positions whose published counts need castles that avoid
	// attacked squares.
	Strict bool
}

// Board returns a fresh board set up for the position.
func (p Position) Board() *chess.Board {
	b := chess.New()
	b.Populate(p.Setup)
	return b
}

var Start = Position{
	Name:   "start",
	ToMove: chess.White,
	Setup:  chess.StandardSetup,
	FEN:    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	Nodes:  []uint64{1, 20, 400, 8902, 197281, 4865609, 119060324},
}

var Kiwipete = Position{
	Name:   "kiwipete",
	ToMove: chess.White,
	Setup: place(nil, map[chess.Square]chess.Piece{
		chess.A8: chess.BlackRook, chess.E8: chess.BlackKing, chess.H8: chess.BlackRook,
		chess.A7: chess.BlackPawn, chess.C7: chess.BlackPawn, chess.D7: chess.BlackPawn,
		chess.E7: chess.BlackQueen, chess.F7: chess.BlackPawn, chess.G7: chess.BlackBishop,
		chess.A6: chess.BlackBishop, chess.B6: chess.BlackKnight, chess.E6: chess.BlackPawn,
		chess.F6: chess.BlackKnight, chess.G6: chess.BlackPawn,
		chess.D5: chess.WhitePawn, chess.E5: chess.WhiteKnight,
		chess.B4: chess.BlackPawn, chess.E4: chess.WhitePawn,
		chess.C3: chess.WhiteKnight, chess.F3: chess.WhiteQueen, chess.H3: chess.BlackPawn,
		chess.A2: chess.WhitePawn, chess.B2: chess.WhitePawn, chess.C2: chess.WhitePawn,
		chess.D2: chess.WhiteBishop, chess.E2: chess.WhiteBishop, chess.F2: chess.WhitePawn,
		chess.G2: chess.WhitePawn, chess.H2: chess.WhitePawn,
		chess.A1: chess.WhiteRook, chess.E1: chess.WhiteKing, chess.H1: chess.WhiteRook,
	}),
	FEN:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	Nodes:  []uint64{1, 48, 2039, 97862, 4085603},
	Strict: true,
}

// Endgame is the rook endgame with the horizontal en passant pin.
var Endgame = Position{
	Name:   "endgame",
	ToMove: chess.White,
	Setup: place(revokeAll, map[chess.Square]chess.Piece{
		chess.C7: chess.BlackPawn,
		chess.D6: chess.BlackPawn,
		chess.A5: chess.WhiteKing, chess.B5: chess.WhitePawn, chess.H5: chess.BlackRook,
		chess.B4: chess.WhiteRook, chess.F4: chess.BlackPawn, chess.H4: chess.BlackKing,
		chess.E2: chess.WhitePawn, chess.G2: chess.WhitePawn,
	}),
	FEN:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	Nodes: []uint64{1, 14, 191, 2812, 43238, 674624},
}

var all = []Position{Start, Kiwipete, Endgame}

// Lookup finds a position by name.
func Lookup(name string) (Position, error) {
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	return Position{}, fmt.Errorf("unknown position %q (have %v)", name, Names())
}

// Names lists the known position names in sorted order.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

func revokeAll(b *chess.Board) {
	for _, c := range [2]chess.Color{chess.White, chess.Black} {
		b.RevokeCastling(c, chess.Kingside)
		b.RevokeCastling(c, chess.Queenside)
	}
}

func place(rights func(*chess.Board), pieces map[chess.Square]chess.Piece) func(*chess.Board) {
	return func(b *chess.Board) {
		for sq, p := range pieces {
			b.Place(sq, p)
		}
		if rights != nil {
			rights(b)
		}
	}
}
