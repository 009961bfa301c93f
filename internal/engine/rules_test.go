package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestStatus_String(t *testing.T) {
	testutil.AssertEqual(t, Ongoing.String(), "ongoing")
	testutil.AssertEqual(t, Checkmate.String(), "checkmate")
	testutil.AssertEqual(t, Stalemate.String(), "stalemate")
	testutil.AssertEqual(t, NewGameState().Status(), Ongoing)
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"legal", "e2e4", nil},
		{"legal with spaces", " g1f3 ", nil},
		{"illegal", "e2e5", chesserrors.ErrIllegalMove},
		{"wrong colour", "e7e5", chesserrors.ErrIllegalMove},
		{"empty square", "e4e5", chesserrors.ErrIllegalMove},
		{"too short", "e2", chesserrors.ErrInvalidSquare},
		{"off board", "z9e4", chesserrors.ErrInvalidSquare},
		{"bad destination", "e2e0", chesserrors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			m, err := gs.ParseMove(tt.text)
			if tt.want == nil {
				testutil.AssertNoError(t, err)
				testutil.AssertEqual(t, m.Notation(), strings.TrimSpace(tt.text))
				return
			}
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestParseMove_ErrorCarriesPly(t *testing.T) {
	gs := NewGameState()
	mustPlay(t, gs, "e2e4", "e7e5")

	_, err := gs.ParseMove("e1e3")
	moveErr, ok := err.(*chesserrors.MoveError)
	if !ok {
		t.Fatalf("ParseMove() error = %T, want *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.PlyNum, 3)
	testutil.AssertEqual(t, moveErr.MoveText, "e1e3")
}

func TestPlayMoves_StopsAtFirstError(t *testing.T) {
	gs := NewGameState()
	err := gs.PlayMoves("e2e4", "e7e5", "e4e5", "g1f3")

	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, testutil.Notations(gs.History()), []string{"e2e4", "e7e5"})
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 0", InitialFEN, 0, 1},
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039},
		{"position 3 depth 1", position3FEN, 1, 14},
		{"position 3 depth 2", position3FEN, 2, 191},
		{"position 3 depth 3", position3FEN, 3, 2812},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.want > 5000 {
				t.Skip("skipping deep perft in short mode")
			}
			gs := mustFEN(t, tt.fen)
			if got := Perft(gs, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
			testutil.AssertEqual(t, gs.FEN(), tt.fen, "Perft must not change the game")
		})
	}
}

func TestPerft_IsSilent(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.LogFile = &buf
	cfg.Verbosity = 2

	gs := NewGameStateWithConfig(cfg)
	mustPlay(t, gs, "f2f3", "e7e5", "g2g4")
	buf.Reset()

	Perft(gs, 2)
	if buf.Len() != 0 {
		t.Errorf("Perft wrote %q to the log", buf.String())
	}
}

func TestDivide(t *testing.T) {
	gs := NewGameState()
	entries := Divide(gs, 2)

	if len(entries) != 20 {
		t.Fatalf("Divide(2) returned %d entries, want 20", len(entries))
	}
	var total uint64
	for _, e := range entries {
		if e.Nodes != 20 {
			t.Errorf("%s, want 20 nodes", e)
		}
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, Perft(gs, 2))
	testutil.AssertEqual(t, entries[0].String(), "a2a3: 20")
	testutil.AssertEqual(t, len(Divide(gs, 0)), 0)
}
