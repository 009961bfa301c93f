package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// snapshot is the observable state that Apply followed by Undo must restore.
type snapshot struct {
	Board   chess.Board
	ToMove  chess.Colour
	Rights  chess.CastleRights
	EP      chess.Coord
	Kings   [2]chess.Coord
	History []string
	FEN     string
}

func takeSnapshot(gs *GameState) snapshot {
	ep, _ := gs.EnPassant()
	return snapshot{
		Board:   gs.Board(),
		ToMove:  gs.ToMove(),
		Rights:  gs.CastleRights(),
		EP:      ep,
		Kings:   [2]chess.Coord{gs.KingLocation(chess.White), gs.KingLocation(chess.Black)},
		History: testutil.Notations(gs.History()),
		FEN:     gs.FEN(),
	}
}

func TestApplyUndo_RoundTrip(t *testing.T) {
	positions := []struct {
		name  string
		fen   string
		moves []string
	}{
		{"initial", InitialFEN, nil},
		{"kiwipete", kiwipeteFEN, nil},
		{"position 3", position3FEN, nil},
		{"en passant available", InitialFEN, []string{"e2e4", "d7d5", "e4e5", "f7f5"}},
		{"promotions", "3n4/2P1P1k1/8/8/8/8/2p1p1K1/3N4 w - - 0 1", nil},
		{"promotions black", "3n4/2P1P1k1/8/8/8/8/2p1p1K1/3N4 b - - 0 1", nil},
		{"castling", castlingFEN, nil},
		{"castling black", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", nil},
	}

	for _, p := range positions {
		t.Run(p.name, func(t *testing.T) {
			gs := mustFEN(t, p.fen)
			mustPlay(t, gs, p.moves...)
			before := takeSnapshot(gs)

			moves := gs.LegalMoves()
			if len(moves) == 0 {
				t.Fatal("LegalMoves() returned no moves")
			}
			for _, m := range moves {
				gs.Apply(m)
				if gs.ToMove() == before.ToMove {
					t.Errorf("Apply(%s) did not switch the side to move", m)
				}
				gs.Undo()
				testutil.AssertEqual(t, takeSnapshot(gs), before, "Apply/Undo %s", m)
			}
		})
	}
}

func TestApply_EnPassantCapture(t *testing.T) {
	gs := NewGameState()
	mustPlay(t, gs, "e2e4", "d7d5", "e4e5", "f7f5")

	f6 := testutil.MustCoord(t, "f6")
	if ep, ok := gs.EnPassant(); !ok || ep != f6 {
		t.Fatalf("EnPassant() = %s, %v; want f6", ep, ok)
	}

	m, err := gs.ParseMove("e5f6")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, m.IsEnPassantMove, "e5f6 should be en passant")
	testutil.AssertEqual(t, m.PieceCaptured, chess.B(chess.Pawn))

	gs.Apply(m)
	testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, "f5")), chess.Empty)
	testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, "e5")), chess.Empty)
	testutil.AssertEqual(t, gs.At(f6), chess.W(chess.Pawn))
	if _, ok := gs.EnPassant(); ok {
		t.Error("EnPassant() still set after the capture")
	}

	gs.Undo()
	testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, "f5")), chess.B(chess.Pawn))
	testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, "e5")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, gs.At(f6), chess.Empty)
	if ep, ok := gs.EnPassant(); !ok || ep != f6 {
		t.Errorf("EnPassant() after Undo = %s, %v; want f6", ep, ok)
	}
}

func TestApply_EnPassantExpires(t *testing.T) {
	gs := NewGameState()
	mustPlay(t, gs, "e2e4", "d7d5", "e4e5", "f7f5", "g1f3", "g8f6")

	if _, ok := gs.HasLegalMove(gs.BuildMove(testutil.MustCoord(t, "e5"), testutil.MustCoord(t, "f6"))); !ok {
		t.Fatal("e5xf6 should be an ordinary capture of the knight")
	}
	m, _ := gs.ParseMove("e5f6")
	testutil.AssertFalse(t, m.IsEnPassantMove, "en passant must expire after one move")

	// Undoing a quiet move brings back the target created before it.
	gs.Undo()
	gs.Undo()
	if ep, ok := gs.EnPassant(); !ok || ep != testutil.MustCoord(t, "f6") {
		t.Errorf("EnPassant() = %s, %v; want f6", ep, ok)
	}
}

func TestApply_Promotion(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		move   string
		target string
		want   chess.Square
	}{
		{"white", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8", "a8", chess.W(chess.Queen)},
		{"black", "k7/8/8/8/8/8/p6K/8 b - - 0 1", "a2a1", "a1", chess.B(chess.Queen)},
		{"capture", "1r5k/P7/8/8/8/8/8/K7 w - - 0 1", "a7b8", "b8", chess.W(chess.Queen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := mustFEN(t, tt.fen)
			before := gs.Board()

			m, err := gs.ParseMove(tt.move)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, m.IsPawnPromotion, "%s should promote", tt.move)

			gs.Apply(m)
			testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, tt.target)), tt.want)

			gs.Undo()
			testutil.AssertEqual(t, gs.Board(), before)
		})
	}
}

func TestApply_KingMoveUpdatesCache(t *testing.T) {
	gs := NewGameState()
	mustPlay(t, gs, "e2e4", "e7e5", "e1e2")

	testutil.AssertEqual(t, gs.KingLocation(chess.White), testutil.MustCoord(t, "e2"))
	testutil.AssertEqual(t, gs.CastleRights().String(), "kq")

	gs.Undo()
	testutil.AssertEqual(t, gs.KingLocation(chess.White), testutil.MustCoord(t, "e1"))
	testutil.AssertEqual(t, gs.CastleRights().String(), "KQkq")
}

func TestApply_RookMoveRevokesRight(t *testing.T) {
	gs := NewGameState()
	mustPlay(t, gs, "a2a4", "h7h5", "a1a3")
	testutil.AssertEqual(t, gs.CastleRights().String(), "Kkq")

	mustPlay(t, gs, "h8h6")
	testutil.AssertEqual(t, gs.CastleRights().String(), "Kq")

	// A rook leaving a non-corner square changes nothing.
	mustPlay(t, gs, "a3a1")
	testutil.AssertEqual(t, gs.CastleRights().String(), "Kq")

	gs.Undo()
	gs.Undo()
	gs.Undo()
	testutil.AssertEqual(t, gs.CastleRights().String(), "KQkq")
	testutil.AssertEqual(t, len(gs.CastleRightsHistory()), gs.Ply()+1)
}

func TestApply_RookCapture(t *testing.T) {
	tests := []struct {
		name    string
		revokes bool
		want    string
	}{
		{"rights kept by default", false, "Kkq"},
		{"rights revoked when configured", true, "Kk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := mustFEN(t, castlingFEN)
			gs.rookCaptureRevokes = tt.revokes
			mustPlay(t, gs, "a1a8")

			testutil.AssertEqual(t, gs.CastleRights().String(), tt.want)
			gs.Undo()
			testutil.AssertEqual(t, gs.CastleRights().String(), "KQkq")
		})
	}
}

func TestUndo_EmptyHistory(t *testing.T) {
	gs := NewGameState()
	before := takeSnapshot(gs)
	gs.Undo()
	testutil.AssertEqual(t, takeSnapshot(gs), before)
}
