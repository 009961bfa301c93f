package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustCoord parses a square name such as "e4" and calls t.Fatal on failure.
func MustCoord(t testing.TB, s string) chess.Coord {
	t.Helper()
	c, err := chess.ParseCoord(s)
	if err != nil {
		t.Fatalf("ParseCoord(%q) error: %v", s, err)
	}
	return c
}

// Notations returns the coordinate notation of each move, in order.
func Notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// SortedNotations returns the coordinate notation of each move, sorted.
func SortedNotations(moves []chess.Move) []string {
	out := Notations(moves)
	sort.Strings(out)
	return out
}

// Filter returns the moves for which keep returns true.
func Filter(moves []chess.Move, keep func(chess.Move) bool) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
