package chess

import "fmt"

// Flags is the 4-bit move category tag.
type Flags uint8

const (
	FlagSpecial2  Flags = 0b0001
	FlagSpecial1  Flags = 0b0010
	FlagCapture   Flags = 0b0100
	FlagPromotion Flags = 0b1000

	FlagQuiet           = Flags(0)
	FlagPawnSprint      = FlagSpecial2
	FlagCastleKing      = FlagSpecial1
	FlagCastleQueen     = FlagSpecial1 | FlagSpecial2
	FlagEPCapture       = FlagCapture | FlagSpecial1
	FlagPromotionKnight = FlagPromotion
	FlagPromotionBishop = FlagPromotion | FlagSpecial2
	FlagPromotionRook   = FlagPromotion | FlagSpecial1
	FlagPromotionQueen  = FlagPromotion | FlagSpecial1 | FlagSpecial2

	specialMask = FlagSpecial1 | FlagSpecial2
)

// promotionKinds is the emission order for the four promotion moves of a pawn.
var promotionKinds = [4]Kind{Knight, Bishop, Rook, Queen}

// promotionFlags returns the flags selecting k as promotion piece.
func promotionFlags(k Kind) Flags {
	switch k {
	case Knight:
		return FlagPromotionKnight
	case Bishop:
		return FlagPromotionBishop
	case Rook:
		return FlagPromotionRook
	case Queen:
		return FlagPromotionQueen
	}
	panic(fmt.Sprintf("chess.promotionFlags: cannot promote to %v", k))
}

// Move encodes a move in 16 bits.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0  // 6 bits
	moveToShift   = 6  // 6 bits
	moveFlagShift = 12 // 4 bits
)

// NoMove is the zero Move (A1 to A1), used where no move has been played.
const NoMove Move = 0

// NewMove constructs a Move value from components.
func NewMove(from, to Square, flags Flags) Move {
	return Move(uint16(from&0x3F)<<moveFromShift |
		uint16(to&0x3F)<<moveToShift |
		uint16(flags&0xF)<<moveFlagShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3F) }

// Flags returns the move category.
func (m Move) Flags() Flags { return Flags((m >> moveFlagShift) & 0xF) }

func (m Move) IsCapture() bool   { return m.Flags()&FlagCapture != 0 }
func (m Move) IsPromotion() bool { return m.Flags()&FlagPromotion != 0 }

// IsEnPassant is an exact match: a rook promotion capture shares the bits.
func (m Move) IsEnPassant() bool { return m.Flags() == FlagEPCapture }

// IsPawnSprint is an exact match so that a single push (FlagQuiet) never qualifies.
func (m Move) IsPawnSprint() bool { return m.Flags() == FlagPawnSprint }

// IsCastle reports whether the move is a king's castling step.
func (m Move) IsCastle() bool {
	f := m.Flags()
	return f == FlagCastleKing || f == FlagCastleQueen
}

// CastleSide returns the wing of a castle move. Only meaningful when IsCastle.
func (m Move) CastleSide() Side {
	if m.Flags() == FlagCastleQueen {
		return Queenside
	}
	return Kingside
}

// PromotionKind returns the piece a pawn promotes to, or NoKind.
func (m Move) PromotionKind() Kind {
	if !m.IsPromotion() {
		return NoKind
	}
	switch m.Flags() & specialMask {
	case 0:
		return Knight
	case FlagSpecial2:
		return Bishop
	case FlagSpecial1:
		return Rook
	default:
		return Queen
	}
}

// String produces a debug representation such as "E2 -> E4" or "C7 -> D8=Queen".
func (m Move) String() string {
	s := fmt.Sprintf("%v -> %v", m.From(), m.To())
	if k := m.PromotionKind(); k != NoKind {
		s += "=" + k.String()
	}
	return s
}
