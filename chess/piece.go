package chess

// Color is the side that owns a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// KingSquare returns the home square of the color's king (E1 or E8).
func (c Color) KingSquare() Square {
	if c == White {
		return E1
	}
	return E8
}

// HomeRank is the rank the color's pieces start on; it is the promotion rank of the other color.
func (c Color) HomeRank() int {
	if c == White {
		return 1
	}
	return 8
}

// PawnRank is the rank the color's pawns start on.
func (c Color) PawnRank() int {
	if c == White {
		return 2
	}
	return 7
}

// Forward is the direction the color's pawns advance in.
func (c Color) Forward() Direction {
	if c == White {
		return Up
	}
	return Down
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind is a colorless piece type.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece packs a Color and a Kind into one byte. The zero value is an empty slot.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece | 8) so that
	// - piece & 7 gives the kind in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// NewPiece combines a color and a kind.
func NewPiece(c Color, k Kind) Piece {
	if k == NoKind {
		return NoPiece
	}
	p := Piece(k)
	if c == Black {
		p |= 8
	}
	return p
}

// Kind returns the colorless type of the piece.
func (p Piece) Kind() Kind { return Kind(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// valid reports whether p is NoPiece or one of the twelve piece codes.
func (p Piece) valid() bool {
	k := p.Kind()
	if p == NoPiece {
		return true
	}
	return p&^15 == 0 && k >= Pawn && k <= King
}

// String returns the single letter used in board diagrams: upper case for
// White, lower case for Black, "." for an empty slot.
func (p Piece) String() string { return string(charFromPiece(p)) }

func charFromPiece(p Piece) rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '.'
	}
}
