package chess_test

import (
	"testing"

	"chess-perft/chess"
)

func TestMoveEncoding(t *testing.T) {
	cases := []struct {
		m         chess.Move
		capture   bool
		promotion chess.Kind
		ep        bool
		sprint    bool
		castle    bool
		str       string
	}{
		{chess.NewMove(chess.E2, chess.E3, chess.FlagQuiet), false, chess.NoKind, false, false, false, "E2 -> E3"},
		{chess.NewMove(chess.E2, chess.E4, chess.FlagPawnSprint), false, chess.NoKind, false, true, false, "E2 -> E4"},
		{chess.NewMove(chess.E5, chess.D6, chess.FlagEPCapture), true, chess.NoKind, true, false, false, "E5 -> D6"},
		{chess.NewMove(chess.E1, chess.G1, chess.FlagCastleKing), false, chess.NoKind, false, false, true, "E1 -> G1"},
		{chess.NewMove(chess.E8, chess.C8, chess.FlagCastleQueen), false, chess.NoKind, false, false, true, "E8 -> C8"},
		{chess.NewMove(chess.C7, chess.D8, chess.FlagCapture|chess.FlagPromotionQueen), true, chess.Queen, false, false, false, "C7 -> D8=Queen"},
		// Shares its low bits with an en passant capture.
		{chess.NewMove(chess.C7, chess.D8, chess.FlagCapture|chess.FlagPromotionRook), true, chess.Rook, false, false, false, "C7 -> D8=Rook"},
		{chess.NewMove(chess.H2, chess.H1, chess.FlagPromotionKnight), false, chess.Knight, false, false, false, "H2 -> H1=Knight"},
	}
	for _, tc := range cases {
		if tc.m.IsCapture() != tc.capture {
			t.Errorf("%v: IsCapture got %v want %v", tc.m, tc.m.IsCapture(), tc.capture)
		}
		if tc.m.PromotionKind() != tc.promotion {
			t.Errorf("%v: PromotionKind got %v want %v", tc.m, tc.m.PromotionKind(), tc.promotion)
		}
		if tc.m.IsEnPassant() != tc.ep {
			t.Errorf("%v: IsEnPassant got %v want %v", tc.m, tc.m.IsEnPassant(), tc.ep)
		}
		if tc.m.IsPawnSprint() != tc.sprint {
			t.Errorf("%v: IsPawnSprint got %v want %v", tc.m, tc.m.IsPawnSprint(), tc.sprint)
		}
		if tc.m.IsCastle() != tc.castle {
			t.Errorf("%v: IsCastle got %v want %v", tc.m, tc.m.IsCastle(), tc.castle)
		}
		if got := tc.m.String(); got != tc.str {
			t.Errorf("String: got %q want %q", got, tc.str)
		}
	}

	m := chess.NewMove(chess.H8, chess.A1, chess.FlagCapture)
	if m.From() != chess.H8 || m.To() != chess.A1 || m.Flags() != chess.FlagCapture {
		t.Fatalf("fields lost: from %v to %v flags %04b", m.From(), m.To(), m.Flags())
	}
	if chess.NewMove(chess.E8, chess.C8, chess.FlagCastleQueen).CastleSide() != chess.Queenside {
		t.Fatalf("queenside castle reports kingside")
	}
}

func TestCastlingRightsString(t *testing.T) {
	r := chess.AllCastling
	if r.String() != "KQkq" {
		t.Fatalf("all rights: got %q", r.String())
	}
	r = r.Without(chess.White, chess.Kingside).Without(chess.Black, chess.Queenside)
	if r.String() != "Qk" {
		t.Fatalf("after revoking K and q: got %q", r.String())
	}
	if !r.Has(chess.White, chess.Queenside) || r.Has(chess.White, chess.Kingside) {
		t.Fatalf("Has disagrees with %q", r.String())
	}
	if chess.NoCastling.String() != "-" || chess.NoCastling.HasAny(chess.Black) {
		t.Fatalf("empty rights misreported")
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for k := chess.Pawn; k <= chess.King; k++ {
			p := chess.NewPiece(c, k)
			if p.Kind() != k || p.Color() != c {
				t.Fatalf("NewPiece(%v,%v) decodes to %v %v", c, k, p.Color(), p.Kind())
			}
		}
	}
	if chess.NewPiece(chess.Black, chess.NoKind) != chess.NoPiece {
		t.Fatalf("NoKind should encode as NoPiece")
	}
	if chess.BlackQueen.String() != "q" || chess.WhiteKnight.String() != "N" || chess.NoPiece.String() != "." {
		t.Fatalf("piece letters wrong")
	}
}
