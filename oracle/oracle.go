// Package oracle computes reference perft counts with dragontoothmg, an
// independent bitboard move generator, so the mailbox generator can be
// checked against it root move by root move.
package oracle

import (
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"

	"chess-perft/chess"
)

// Key identifies a root move by its squares and promotion piece, which is all
// the two generators have in common.
type Key struct {
	From    chess.Square
	To      chess.Square
	Promote chess.Kind
}

func (k Key) String() string {
	s := fmt.Sprintf("%v -> %v", k.From, k.To)
	if k.Promote != chess.NoKind {
		s += "=" + k.Promote.String()
	}
	return s
}

// KeyOf converts a mailbox move.
func KeyOf(m chess.Move) Key {
	return Key{From: m.From(), To: m.To(), Promote: m.PromotionKind()}
}

func keyOf(m dragontoothmg.Move) Key {
	k := Key{From: chess.NewSquare(int(m.From())), To: chess.NewSquare(int(m.To()))}
	switch m.Promote() {
	case dragontoothmg.Knight:
		k.Promote = chess.Knight
	case dragontoothmg.Bishop:
		k.Promote = chess.Bishop
	case dragontoothmg.Rook:
		k.Promote = chess.Rook
	case dragontoothmg.Queen:
		k.Promote = chess.Queen
	}
	return k
}

// Perft counts legal leaf nodes from the position given as FEN.
func Perft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return perft(&board, depth)
}

// Divide returns the leaf count below every legal root move.
func Divide(fen string, depth int) map[Key]uint64 {
	result := make(map[Key]uint64)
	if depth <= 0 {
		return result
	}
	board := dragontoothmg.ParseFen(fen)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		result[keyOf(m)] = perft(&board, depth-1)
		unapply()
	}
	return result
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// Mismatch is a root move whose counts differ. A zero Got or Want means the
// move is missing on that side.
type Mismatch struct {
	Key  Key
	Got  uint64
	Want uint64
}

func (d Mismatch) String() string {
	return fmt.Sprintf("%v: got %d want %d", d.Key, d.Got, d.Want)
}

// Compare checks a mailbox divide against the reference divide and returns
// the differing root moves ordered by origin, destination and promotion.
func Compare(got map[chess.Move]uint64, want map[Key]uint64) []Mismatch {
	gotByKey := make(map[Key]uint64, len(got))
	for m, n := range got {
		gotByKey[KeyOf(m)] = n
	}

	keys := maps.Keys(gotByKey)
	for k := range want {
		if _, ok := gotByKey[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Promote < b.Promote
	})

	var out []Mismatch
	for _, k := range keys {
		if g, w := gotByKey[k], want[k]; g != w {
			out = append(out, Mismatch{Key: k, Got: g, Want: w})
		}
	}
	return out
}
