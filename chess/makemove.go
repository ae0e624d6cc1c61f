package chess

import "fmt"

// Undo holds everything MakeMove overwrote. It must be handed back to
// UnmakeMove exactly once, in reverse order of the MakeMove calls; the token
// pair lets the board reject a stale or out-of-order record.
type Undo struct {
	move         Move
	moved        Piece
	captured     Piece // occupant of the destination before the move
	epVictim     Piece // pawn removed by an en passant capture
	prevLastMove Move
	prevCastling CastlingRights
	prevZobrist  uint64
	token        uint64
	prevToken    uint64
}

// Move returns the move this record undoes.
func (u Undo) Move() Move { return u.move }

// Captured returns the piece the move took, including an en passant victim.
func (u Undo) Captured() Piece {
	if u.move.IsEnPassant() {
		return u.epVictim
	}
	return u.captured
}

// MakeMove applies a pseudo-legal move and returns the record that reverts it.
// It panics if the origin square is empty. King safety is not checked; call
// KingInCheck for the mover afterwards.
func (b *Board) MakeMove(m Move) Undo {
	from := m.From()
	to := m.To()
	moved := b.squares[from]
	if moved == NoPiece {
		panic(fmt.Sprintf("chess.MakeMove: no piece on %v for %v", from, m))
	}
	us := moved.Color()

	b.undoNext++
	u := Undo{
		move:         m,
		moved:        moved,
		captured:     b.squares[to],
		prevLastMove: b.lastMove,
		prevCastling: b.castling,
		prevZobrist:  b.zobristKey,
		token:        b.undoNext,
		prevToken:    b.undoTop,
	}
	b.undoTop = u.token

	// Update castling rights
	rights := b.castling
	switch moved.Kind() {
	case King:
		rights = rights.Without(us, Kingside).Without(us, Queenside)
	case Rook:
		rights &^= cornerRight(us, from)
	}
	// Rook captured on its original square removes that right
	if u.captured.Kind() == Rook {
		rights &^= cornerRight(u.captured.Color(), to)
	}
	b.setCastling(rights)

	// Move the piece (or promote)
	placed := moved
	if m.IsPromotion() {
		placed = NewPiece(us, m.PromotionKind())
	}
	b.setPiece(from, NoPiece)
	b.setPiece(to, placed)

	switch {
	case m.IsEnPassant():
		// Captured pawn is beside 'from', on the destination file
		capSq := SquareAt(from.Rank(), to.File())
		u.epVictim = b.squares[capSq]
		b.setPiece(capSq, NoPiece)
	case m.IsCastle():
		rookFrom, rookTo := castleRookSquares(us, m.CastleSide())
		b.setPiece(rookTo, b.squares[rookFrom])
		b.setPiece(rookFrom, NoPiece)
	}

	b.setLastMove(m)
	return u
}

// UnmakeMove reverts the most recent MakeMove. It panics when u is not that
// move's record, e.g. when it was already applied or a later record is still
// outstanding.
func (b *Board) UnmakeMove(u Undo) {
	if u.token == 0 || u.token != b.undoTop {
		panic(fmt.Sprintf("chess.UnmakeMove: undo record for %v applied out of order", u.move))
	}
	m := u.move
	from := m.From()
	to := m.To()

	switch {
	case m.IsCastle():
		rookFrom, rookTo := castleRookSquares(u.moved.Color(), m.CastleSide())
		b.squares[rookFrom] = b.squares[rookTo]
		b.squares[rookTo] = NoPiece
	case m.IsEnPassant():
		b.squares[SquareAt(from.Rank(), to.File())] = u.epVictim
	}
	b.squares[from] = u.moved
	b.squares[to] = u.captured

	b.lastMove = u.prevLastMove
	b.castling = u.prevCastling
	// Ensure exact Zobrist restoration
	b.zobristKey = u.prevZobrist
	b.undoTop = u.prevToken
}
