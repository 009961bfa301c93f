package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// referenceMoves returns the legal moves that dragontoothmg finds for fen,
// in coordinate notation. Underpromotions collapse into one entry since the
// engine always promotes to a queen.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	board := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	out := []string{}
	for _, m := range board.GenerateLegalMoves() {
		s := m.String()
		if len(s) > 4 {
			s = s[:4]
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func TestLegalMoves_MatchReference(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		castlingFEN,
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			gs := mustFEN(t, fen)
			testutil.AssertEqual(t, testutil.SortedNotations(gs.LegalMoves()), referenceMoves(t, fen))
		})
	}
}

func TestLegalMoves_RandomGamesMatchReference(t *testing.T) {
	games, plies := 20, 80
	if testing.Short() {
		games = 3
	}
	cfg := config.NewConfigBuilder().
		WithVerbosity(0).
		WithRookCaptureRevokesCastling(true).
		WithPawnsAttackEmptySquares(true).
		Build()
	rng := rand.New(rand.NewSource(1))

	for g := 0; g < games; g++ {
		gs := NewGameStateWithConfig(cfg)
		for ply := 0; ply < plies; ply++ {
			fen := gs.FEN()
			moves := gs.LegalMoves()
			got := testutil.SortedNotations(moves)
			want := referenceMoves(t, fen)
			if len(got) != len(want) {
				t.Fatalf("game %d ply %d %s: moves %v, reference %v", g, ply, fen, got, want)
			}
			testutil.AssertEqual(t, got, want, "game %d ply %d %s", g, ply, fen)
			if len(moves) == 0 {
				break
			}
			gs.Apply(moves[rng.Intn(len(moves))])
		}
	}
}
