package chess

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [15][NumSquares]uint64 // Zobrist keys for piece (index by piece code) on each square
var zobristCastle [16]uint64            // Zobrist keys for each castling rights state (0-15)
var zobristEnPassant [8]uint64          // Zobrist keys for the file of the last pawn sprint
var zobristSide uint64                  // Zobrist key for side to move (Black to move)

// Initialize Zobrist keys (called on package init)
func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed for reproducibility in tests
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < NumSquares; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// enPassantKey is the hash contribution of a last move: only a pawn sprint
// changes which moves are available next, so only sprints are keyed.
func enPassantKey(m Move) uint64 {
	if !m.IsPawnSprint() {
		return 0
	}
	return zobristEnPassant[m.To().File()-1]
}

// SideKey returns the key to XOR into Hash when c is to move.
func SideKey(c Color) uint64 {
	if c == Black {
		return zobristSide
	}
	return 0
}

// ComputeZobrist calculates the Zobrist hash for the current board state.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq, p := range b.squares {
		if p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	key ^= zobristCastle[b.castling]
	key ^= enPassantKey(b.lastMove)
	return key
}
