package chess

// ==========================
// Attack queries
// ==========================

// KingInCheck reports whether c's king is attacked. A board without a king
// of that color is never in check.
func (b *Board) KingInCheck(c Color) bool {
	sq, ok := b.findKing(c)
	if !ok {
		return false
	}
	return b.Attacked(sq, c)
}

// Attacked reports whether a piece of color c standing on sq could be captured
// by the opponent. Each probe generates the moves a c piece of the probing
// kind would have from sq and looks at what its captures land on.
func (b *Board) Attacked(sq Square, c Color) bool {
	var buf [32]Move
	them := c.Other()

	// Rook, bishop and queen
	for _, probe := range [2]Kind{Rook, Bishop} {
		for _, m := range b.slidingMoves(buf[:0], c, sq, probe) {
			if !m.IsCapture() {
				continue
			}
			if p := b.squares[m.To()]; p.Kind() == probe || p.Kind() == Queen {
				return true
			}
		}
	}

	// Knights
	if b.capturesOnto(b.knightMoves(buf[:0], c, sq), NewPiece(them, Knight)) {
		return true
	}

	// Kings; this rules out moves that step next to the other king.
	if b.capturesOnto(b.kingSteps(buf[:0], c, sq), NewPiece(them, King)) {
		return true
	}

	// Pawns sit on the diagonals ahead of sq, seen from c.
	pawn := NewPiece(them, Pawn)
	for _, d := range pawnCaptureDirections[c] {
		if to, ok := sq.Add(d); ok && b.squares[to] == pawn {
			return true
		}
	}
	return false
}

func (b *Board) capturesOnto(moves []Move, target Piece) bool {
	for _, m := range moves {
		if m.IsCapture() && b.squares[m.To()] == target {
			return true
		}
	}
	return false
}

// CastleIsSafe reports whether a castle move starts, passes and lands on
// squares the opponent does not attack. Non-castle moves are always safe.
// The generator does not apply this rule; LegalMoves and strict perft do.
func (b *Board) CastleIsSafe(m Move) bool {
	if !m.IsCastle() {
		return true
	}
	from := m.From()
	king := b.squares[from]
	if king.Kind() != King {
		return false
	}
	c := king.Color()
	step := Right
	if m.CastleSide() == Queenside {
		step = Left
	}
	for sq := from; ; sq = sq.MustAdd(step) {
		if b.Attacked(sq, c) {
			return false
		}
		if sq == m.To() {
			return true
		}
	}
}

// LegalMoves returns the moves of c that do not leave c's king in check and
// whose castles do not cross attacked squares.
func (b *Board) LegalMoves(c Color) []Move {
	moves := b.GenerateMoves(c)
	legal := moves[:0]
	for _, m := range moves {
		if !b.CastleIsSafe(m) {
			continue
		}
		u := b.MakeMove(m)
		ok := !b.KingInCheck(c)
		b.UnmakeMove(u)
		if ok {
			legal = append(legal, m)
		}
	}
	return legal
}
