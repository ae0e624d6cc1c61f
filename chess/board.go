package chess

import "strings"

// Board represents the chess board state: a 64-slot mailbox, the last move
// played and the castling rights.
type Board struct {
	// Piece placement array for each square (NoPiece when empty)
	squares [NumSquares]Piece

	// Last move played, NoMove before the first one. Needed for en passant.
	lastMove Move

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castling CastlingRights

	// Zobrist hash key for the current position
	zobristKey uint64

	// Token of the most recent outstanding Undo (0 when none) and the
	// counter used to mint new tokens.
	undoTop  uint64
	undoNext uint64
}

// Placement is an occupied square and its piece.
type Placement struct {
	Square Square
	Piece  Piece
}

// New returns an empty board holding all four castling rights and no last move.
func New() *Board {
	b := &Board{castling: AllCastling}
	b.zobristKey = b.ComputeZobrist()
	return b
}

// Populate applies a placement routine such as StandardSetup.
func (b *Board) Populate(setup func(*Board)) { setup(b) }

// Place puts p on sq, replacing whatever was there.
func (b *Board) Place(sq Square, p Piece) { b.setPiece(sq, p) }

// Clear removes any piece from the given square.
func (b *Board) Clear(sq Square) { b.setPiece(sq, NoPiece) }

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Pieces returns all pieces on the board in square order.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, 32)
	for _, p := range b.squares {
		if p != NoPiece {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// PiecesWithPosition returns every occupied square with its piece, in square order.
func (b *Board) PiecesWithPosition() []Placement {
	out := make([]Placement, 0, 32)
	for i, p := range b.squares {
		if p != NoPiece {
			out = append(out, Placement{Square: Square(i), Piece: p})
		}
	}
	return out
}

// LastMove returns the move that was played last; ok is false before the first move.
func (b *Board) LastMove() (m Move, ok bool) { return b.lastMove, b.lastMove != NoMove }

// SetLastMove overrides the recorded last move. Used to set up en passant
// positions without playing the sprint.
func (b *Board) SetLastMove(m Move) { b.setLastMove(m) }

// CastlingRights returns the rights still held.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// HasCastleRights reports whether c may still castle on at least one side.
func (b *Board) HasCastleRights(c Color) bool { return b.castling.HasAny(c) }

// RevokeCastling clears a right. Rights can never be granted back.
func (b *Board) RevokeCastling(c Color, s Side) { b.setCastling(b.castling.Without(c, s)) }

// Hash returns the current Zobrist hash key. It does not include the side to
// move; fold in SideKey for that.
func (b *Board) Hash() uint64 { return b.zobristKey }

// Equal reports whether both boards hold the same pieces, last move and rights.
func (b *Board) Equal(o *Board) bool {
	return b.squares == o.squares && b.lastMove == o.lastMove && b.castling == o.castling
}

// String renders the board as an 8x8 diagram, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		sb.WriteByte(byte('0' + rank))
		sb.WriteByte(' ')
		for file := 1; file <= 8; file++ {
			sb.WriteRune(charFromPiece(b.squares[SquareAt(rank, file)]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ABCDEFGH\n")
	sb.WriteString("castling: " + b.castling.String())
	if m, ok := b.LastMove(); ok {
		sb.WriteString(", last: " + m.String())
	}
	sb.WriteByte('\n')
	return sb.String()
}

// findKing returns the square of c's king.
func (b *Board) findKing(c Color) (Square, bool) {
	king := NewPiece(c, King)
	for i, p := range b.squares {
		if p == king {
			return Square(i), true
		}
	}
	return 0, false
}

// ==========================
// State mutation helpers
// ==========================

// setPiece writes a slot and keeps the Zobrist key in sync.
func (b *Board) setPiece(sq Square, p Piece) {
	if old := b.squares[sq]; old != NoPiece {
		b.zobristKey ^= zobristPiece[old][sq]
	}
	b.squares[sq] = p
	if p != NoPiece {
		b.zobristKey ^= zobristPiece[p][sq]
	}
}

func (b *Board) setLastMove(m Move) {
	b.zobristKey ^= enPassantKey(b.lastMove)
	b.lastMove = m
	b.zobristKey ^= enPassantKey(m)
}

func (b *Board) setCastling(r CastlingRights) {
	if r == b.castling {
		return
	}
	b.zobristKey ^= zobristCastle[b.castling]
	b.zobristKey ^= zobristCastle[r]
	b.castling = r
}

// Validate checks internal consistency: every slot holds a known piece code and
// the incremental Zobrist key matches a full recomputation.
func (b *Board) Validate() bool {
	for _, p := range b.squares {
		if !p.valid() {
			return false
		}
	}
	return b.zobristKey == b.ComputeZobrist()
}
