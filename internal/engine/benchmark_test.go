package engine

import "testing"

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   kiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  castlingFEN,
}

func BenchmarkNewGameStateFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewGameStateFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			gs := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				gs.FEN()
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			gs := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				gs.LegalMoves()
			}
		})
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	gs := mustFEN(b, kiwipeteFEN)
	moves := gs.LegalMoves()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		gs.Apply(m)
		gs.Undo()
	}
}

func BenchmarkPerft3(b *testing.B) {
	gs := NewGameState()
	for i := 0; i < b.N; i++ {
		Perft(gs, 3)
	}
}
