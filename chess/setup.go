package chess

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardSetup places the 32 pieces of the initial position. Pass it to Populate.
func StandardSetup(b *Board) {
	for _, c := range [2]Color{White, Black} {
		pawnRank := c.PawnRank()
		for file := 1; file <= 8; file++ {
			b.Place(SquareAt(c.HomeRank(), file), NewPiece(c, backRank[file-1]))
			b.Place(SquareAt(pawnRank, file), NewPiece(c, Pawn))
		}
	}
}

// NewStandard returns a board in the initial position.
func NewStandard() *Board {
	b := New()
	b.Populate(StandardSetup)
	return b
}
