package chess

import "fmt"

// Pawn capture directions per color, relative to the pawn's forward direction.
var pawnCaptureDirections = [2][2]Direction{
	White: {UpLeft, UpRight},
	Black: {DownLeft, DownRight},
}

// GenerateMoves returns all pseudo-legal moves for color c. Moves that leave
// c's own king attacked are included; callers filter them after MakeMove.
func (b *Board) GenerateMoves(c Color) []Move { return b.GenerateMovesInto(make([]Move, 0, 64), c) }

// GenerateMovesInto appends the pseudo-legal moves for c into dst[:0] and returns it.
func (b *Board) GenerateMovesInto(dst []Move, c Color) []Move {
	moves := dst[:0]
	for i, p := range b.squares {
		if p == NoPiece || p.Color() != c {
			continue
		}
		sq := Square(i)
		switch k := p.Kind(); k {
		case Pawn:
			moves = b.pawnMoves(moves, c, sq)
		case Knight:
			moves = b.knightMoves(moves, c, sq)
		case Bishop, Rook, Queen:
			moves = b.slidingMoves(moves, c, sq, k)
		case King:
			moves = b.kingMoves(moves, c, sq)
		}
	}
	return moves
}

// pawnMoves appends pushes, sprints, captures, promotions and en passant.
func (b *Board) pawnMoves(moves []Move, c Color, from Square) []Move {
	if from.Rank() == c.HomeRank() {
		return moves
	}
	forward := c.Forward()
	one, ok := from.Add(forward)
	if !ok {
		return moves
	}

	if b.squares[one] == NoPiece {
		moves = appendPawnMove(moves, c, from, one, FlagQuiet)
		// sprint, but only if the single push is possible too
		if from.Rank() == c.PawnRank() {
			if two, ok := one.Add(forward); ok && b.squares[two] == NoPiece {
				moves = append(moves, NewMove(from, two, FlagPawnSprint))
			}
		}
	}

	for _, d := range pawnCaptureDirections[c] {
		to, ok := from.Add(d)
		if !ok {
			continue
		}
		if target := b.squares[to]; target != NoPiece && target.Color() != c {
			moves = appendPawnMove(moves, c, from, to, FlagCapture)
		}
	}

	if to, ok := b.enPassantTarget(c, from); ok {
		moves = append(moves, NewMove(from, to, FlagEPCapture))
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded into four promotions when it
// reaches the far rank.
func appendPawnMove(moves []Move, c Color, from, to Square, flags Flags) []Move {
	if to.Rank() != c.Other().HomeRank() {
		return append(moves, NewMove(from, to, flags))
	}
	for _, k := range promotionKinds {
		moves = append(moves, NewMove(from, to, flags|promotionFlags(k)))
	}
	return moves
}

// enPassantTarget returns the square a pawn of color c on from can capture
// onto en passant. That requires the last move to be a sprint by an opposing
// pawn that now stands beside from; the target is the square it passed over.
func (b *Board) enPassantTarget(c Color, from Square) (Square, bool) {
	last := b.lastMove
	if !last.IsPawnSprint() {
		return 0, false
	}
	victim := last.To()
	if b.squares[victim] != NewPiece(c.Other(), Pawn) || from.Rank() != victim.Rank() {
		return 0, false
	}
	if df := from.File() - last.From().File(); df != 1 && df != -1 {
		return 0, false
	}
	passed := SquareAt((last.From().Rank()+victim.Rank())/2, last.From().File())
	return passed, true
}

// knightMoves appends the knight steps from a square.
func (b *Board) knightMoves(moves []Move, c Color, from Square) []Move {
	for _, d := range knightDirections {
		moves = b.appendStep(moves, c, from, d)
	}
	return moves
}

// kingSteps appends the eight one-square king moves, without castling.
func (b *Board) kingSteps(moves []Move, c Color, from Square) []Move {
	for _, d := range queenDirections {
		moves = b.appendStep(moves, c, from, d)
	}
	return moves
}

// appendStep adds a single step: quiet onto an empty square, a capture onto
// an opposing piece, nothing onto an own piece or off the board.
func (b *Board) appendStep(moves []Move, c Color, from Square, d Direction) []Move {
	to, ok := from.Add(d)
	if !ok {
		return moves
	}
	switch target := b.squares[to]; {
	case target == NoPiece:
		return append(moves, NewMove(from, to, FlagQuiet))
	case target.Color() != c:
		return append(moves, NewMove(from, to, FlagCapture))
	}
	return moves
}

// slidingMoves walks the rays of a bishop, rook or queen until blocked.
func (b *Board) slidingMoves(moves []Move, c Color, from Square, k Kind) []Move {
	var dirs []Direction
	switch k {
	case Rook:
		dirs = queenDirections[:4]
	case Bishop:
		dirs = queenDirections[4:]
	case Queen:
		dirs = queenDirections[:]
	default:
		panic(fmt.Sprintf("chess.slidingMoves: %v on %v is not a sliding piece", k, from))
	}
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.Add(d)
			if !ok {
				break
			}
			target := b.squares[to]
			if target == NoPiece {
				moves = append(moves, NewMove(from, to, FlagQuiet))
				cur = to
				continue
			}
			if target.Color() != c {
				moves = append(moves, NewMove(from, to, FlagCapture))
			}
			break
		}
	}
	return moves
}

// kingMoves appends king steps and castling candidates. Castling only checks
// rights, the rook on its corner and an empty path; whether the king passes
// through an attacked square is left to CastleIsSafe.
func (b *Board) kingMoves(moves []Move, c Color, from Square) []Move {
	moves = b.kingSteps(moves, c, from)
	if from != c.KingSquare() || !b.castling.HasAny(c) {
		return moves
	}
	if b.canCastle(c, Kingside) {
		moves = append(moves, NewMove(from, castleKingTarget(c, Kingside), FlagCastleKing))
	}
	if b.canCastle(c, Queenside) {
		moves = append(moves, NewMove(from, castleKingTarget(c, Queenside), FlagCastleQueen))
	}
	return moves
}

// canCastle assumes the king is on its home square.
func (b *Board) canCastle(c Color, s Side) bool {
	if !b.castling.Has(c, s) {
		return false
	}
	corner := rookCorner(c, s)
	if b.squares[corner] != NewPiece(c, Rook) {
		return false
	}
	step := Right
	if s == Queenside {
		step = Left
	}
	for sq := c.KingSquare().MustAdd(step); sq != corner; sq = sq.MustAdd(step) {
		if b.squares[sq] != NoPiece {
			return false
		}
	}
	return true
}
