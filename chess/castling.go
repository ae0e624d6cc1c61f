package chess

// Side selects the wing a king castles towards.
type Side uint8

const (
	Kingside Side = iota
	Queenside
)

func (s Side) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// CastlingRights is a bitmask of the four (color, side) castling rights.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	NoCastling  CastlingRights = 0
	AllCastling                = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// CastlingRight returns the single right for a color and side.
func CastlingRight(c Color, s Side) CastlingRights {
	return CastlingWhiteK << (2*uint(c) + uint(s))
}

// Has reports whether the (color, side) right is held.
func (r CastlingRights) Has(c Color, s Side) bool { return r&CastlingRight(c, s) != 0 }

// HasAny reports whether the color holds either of its rights.
func (r CastlingRights) HasAny(c Color) bool {
	return r&(CastlingRight(c, Kingside)|CastlingRight(c, Queenside)) != 0
}

// Without returns r with the (color, side) right cleared.
func (r CastlingRights) Without(c Color, s Side) CastlingRights { return r &^ CastlingRight(c, s) }

// String lists the held rights as K, Q, k, q, or "-" when none are left.
func (r CastlingRights) String() string {
	out := make([]byte, 0, 4)
	for i, ch := range []byte("KQkq") {
		if r&(CastlingWhiteK<<uint(i)) != 0 {
			out = append(out, ch)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// rookCorner is the square the castling rook of (c, s) starts on.
func rookCorner(c Color, s Side) Square {
	if s == Kingside {
		return SquareAt(c.HomeRank(), 8)
	}
	return SquareAt(c.HomeRank(), 1)
}

// castleRookSquares returns the rook's origin and destination for a castle.
func castleRookSquares(c Color, s Side) (from, to Square) {
	if s == Kingside {
		return rookCorner(c, s), SquareAt(c.HomeRank(), 6)
	}
	return rookCorner(c, s), SquareAt(c.HomeRank(), 4)
}

// castleKingTarget is the square the king lands on, two steps towards the rook.
func castleKingTarget(c Color, s Side) Square {
	if s == Kingside {
		return c.KingSquare().MustAdd(Right).MustAdd(Right)
	}
	return c.KingSquare().MustAdd(Left).MustAdd(Left)
}

// cornerRight returns the right tied to a rook of color c standing on sq,
// or NoCastling if sq is not one of that color's corners.
func cornerRight(c Color, sq Square) CastlingRights {
	switch sq {
	case rookCorner(c, Kingside):
		return CastlingRight(c, Kingside)
	case rookCorner(c, Queenside):
		return CastlingRight(c, Queenside)
	}
	return NoCastling
}
