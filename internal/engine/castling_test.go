package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func castles(gs *GameState) []string {
	return testutil.Notations(testutil.Filter(gs.LegalMoves(), func(m chess.Move) bool {
		return m.IsCastleMove
	}))
}

func TestCastleMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{"both sides", castlingFEN, []string{"e1g1", "e1c1"}},
		{"black both sides", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", nil},
		{"kingside only", "r3k2r/8/8/8/8/8/8/R3K2R w K - 0 1", []string{"e1g1"}},
		{"in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", nil},
		{"f1 attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1"}},
		{"g1 attacked", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1"}},
		{"d1 attacked", "3rk3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1g1"}},
		{"c1 attacked", "2r1k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1g1"}},
		{"b1 attacked", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1g1", "e1c1"}},
		{"b1 occupied", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", []string{"e1g1"}},
		{"g1 occupied", "4k3/8/8/8/8/8/8/R3K1NR w KQ - 0 1", []string{"e1c1"}},
		{"pawn push to g1", "4k3/8/8/8/8/8/6p1/R3K2R w KQ - 0 1", []string{"e1c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := mustFEN(t, tt.fen)
			got := castles(gs)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestCastleMoves_PawnCover(t *testing.T) {
	// The e2 pawn covers d1 and f1 but cannot move to either.
	const fen = "4k3/8/8/8/8/8/4p3/R3K2R w KQ - 0 1"

	testutil.AssertEqual(t, castles(mustFEN(t, fen)), []string{"e1g1", "e1c1"})

	cfg := config.NewConfigBuilder().WithVerbosity(0).WithPawnsAttackEmptySquares(true).Build()
	gs, err := NewGameStateFromFENWithConfig(fen, cfg)
	testutil.AssertNoError(t, err)
	if got := castles(gs); len(got) != 0 {
		t.Errorf("castles = %v, want none", got)
	}
	testutil.AssertTrue(t, gs.SquareUnderAttack(testutil.MustCoord(t, "f1"), chess.Black))
	testutil.AssertFalse(t, gs.SquareUnderAttack(testutil.MustCoord(t, "e1"), chess.Black))
}

func TestApply_Castle(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		move       string
		king, rook string
		emptied    string
		rights     string
	}{
		{"white kingside", castlingFEN, "e1g1", "g1", "f1", "h1", "kq"},
		{"white queenside", castlingFEN, "e1c1", "c1", "d1", "a1", "kq"},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", "g8", "f8", "h8", "KQ"},
		{"black queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "c8", "d8", "a8", "KQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := mustFEN(t, tt.fen)
			colour := gs.ToMove()
			before := takeSnapshot(gs)

			m, err := gs.ParseMove(tt.move)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, m.IsCastleMove)

			gs.Apply(m)
			testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, tt.king)), chess.NewSquare(colour, chess.King))
			testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, tt.rook)), chess.NewSquare(colour, chess.Rook))
			testutil.AssertEqual(t, gs.At(testutil.MustCoord(t, tt.emptied)), chess.Empty)
			testutil.AssertEqual(t, gs.KingLocation(colour), testutil.MustCoord(t, tt.king))
			testutil.AssertEqual(t, gs.CastleRights().String(), tt.rights)

			gs.Undo()
			testutil.AssertEqual(t, takeSnapshot(gs), before)
		})
	}
}

func TestCastleRights_RestoredAfterUndo(t *testing.T) {
	gs := NewGameState()
	mustPlay(t, gs, "g1f3", "g8f6", "h1g1")
	testutil.AssertEqual(t, gs.CastleRights().String(), "Qkq")

	gs.Undo()
	testutil.AssertEqual(t, gs.CastleRights().String(), "KQkq")

	mustPlay(t, gs, "h1g1", "h8g8", "g1h1")
	testutil.AssertEqual(t, gs.CastleRights().String(), "Qq",
		"a rook returning home does not regain the right")
}
