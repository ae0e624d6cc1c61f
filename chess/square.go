package chess

import "fmt"

// Square represents a board position (0-63), A1 = 0, H1 = 7, H8 = 63.
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NumSquares is the number of slots on the board.
const NumSquares = 64

// NewSquare converts an index into a Square. It panics outside [0, 63].
func NewSquare(i int) Square {
	if i < 0 || i >= NumSquares {
		panic(fmt.Sprintf("chess.NewSquare: %d out of range", i))
	}
	return Square(i)
}

// SquareAt returns the square on the given 1-based rank and file.
// It panics if either coordinate is outside 1..8.
func SquareAt(rank, file int) Square {
	if rank < 1 || rank > 8 || file < 1 || file > 8 {
		panic(fmt.Sprintf("chess.SquareAt: rank %d file %d out of range", rank, file))
	}
	return Square((rank-1)*8 + file - 1)
}

// Rank returns the 1-based rank of the square.
func (s Square) Rank() int { return int(s)/8 + 1 }

// File returns the 1-based file of the square (A = 1).
func (s Square) File() int { return int(s)%8 + 1 }

// Add steps one Direction from s. ok is false when the step would leave the
// board or wrap around to the opposite edge; s is returned unchanged then.
func (s Square) Add(d Direction) (to Square, ok bool) {
	if !InBounds(s, d) {
		return s, false
	}
	return s + Square(d), true
}

// MustAdd is Add for callers that already know the step stays on the board.
func (s Square) MustAdd(d Direction) Square {
	to, ok := s.Add(d)
	if !ok {
		panic(fmt.Sprintf("chess.Square.MustAdd: %v%+d leaves the board", s, int(d)))
	}
	return to
}

// String returns the square name, e.g. "E4".
func (s Square) String() string {
	if s < A1 || s > H8 {
		return fmt.Sprintf("Square(%d)", int(s))
	}
	return string([]byte{'A' + byte(s.File()-1), '0' + byte(s.Rank())})
}

// Direction is a signed square offset for one step of a piece.
type Direction int8

const (
	Up        Direction = 8
	Down      Direction = -8
	Left      Direction = -1
	Right     Direction = 1
	UpLeft    Direction = 7
	UpRight   Direction = 9
	DownLeft  Direction = -9
	DownRight Direction = -7

	UpUpLeft       Direction = 15
	UpUpRight      Direction = 17
	LeftLeftUp     Direction = 6
	LeftLeftDown   Direction = -10
	RightRightUp   Direction = 10
	RightRightDown Direction = -6
	DownDownLeft   Direction = -17
	DownDownRight  Direction = -15
)

// Ray directions: the first four are orthogonal (rook), the last four diagonal (bishop).
var queenDirections = [8]Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

var knightDirections = [8]Direction{
	UpUpLeft, UpUpRight,
	LeftLeftUp, LeftLeftDown,
	RightRightUp, RightRightDown,
	DownDownLeft, DownDownRight,
}

// InBounds reports whether one step in direction d from s stays on the board.
// Every square+direction addition goes through this table.
func InBounds(s Square, d Direction) bool {
	rank, file := s.Rank(), s.File()
	switch d {
	case Up:
		return rank < 8
	case Down:
		return rank > 1
	case Left:
		return file > 1
	case Right:
		return file < 8
	case UpLeft:
		return file > 1 && rank < 8
	case UpRight:
		return file < 8 && rank < 8
	case DownLeft:
		return file > 1 && rank > 1
	case DownRight:
		return file < 8 && rank > 1
	case UpUpLeft:
		return rank < 7 && file > 1
	case UpUpRight:
		return rank < 7 && file < 8
	case LeftLeftUp:
		return rank < 8 && file > 2
	case LeftLeftDown:
		return rank > 1 && file > 2
	case RightRightUp:
		return rank < 8 && file < 7
	case RightRightDown:
		return rank > 1 && file < 7
	case DownDownLeft:
		return rank > 2 && file > 1
	case DownDownRight:
		return rank > 2 && file < 8
	default:
		return false
	}
}
