package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status is the outcome of the current position.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Status recomputes the legal moves and reports whether the game is over.
func (gs *GameState) Status() Status {
	gs.LegalMoves()
	switch {
	case gs.checkmate:
		return Checkmate
	case gs.stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}

// ParseMove turns coordinate notation such as "e2e4" into the matching legal
// move of the current position. Castling is written as the king's move.
func (gs *GameState) ParseMove(text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 {
		return chess.Move{}, &errors.MoveError{
			Err:      &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "two squares"},
			PlyNum:   len(gs.moveLog) + 1,
			MoveText: text,
		}
	}
	start, err := chess.ParseCoord(text[:2])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, PlyNum: len(gs.moveLog) + 1, MoveText: text}
	}
	end, err := chess.ParseCoord(text[2:])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, PlyNum: len(gs.moveLog) + 1, MoveText: text}
	}
	return gs.MatchMove(start, end)
}

// MatchMove builds the candidate move start-end and returns the legal move
// with the same squares, or an ErrIllegalMove error.
func (gs *GameState) MatchMove(start, end chess.Coord) (chess.Move, error) {
	candidate := gs.BuildMove(start, end)
	if m, ok := gs.HasLegalMove(candidate); ok {
		return m, nil
	}
	return chess.Move{}, &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		PlyNum:   len(gs.moveLog) + 1,
		MoveText: candidate.Notation(),
	}
}

// PlayMoves parses and applies each move in turn. It stops at the first
// move that is malformed or illegal; moves before it stay applied.
func (gs *GameState) PlayMoves(moves ...string) error {
	for _, text := range moves {
		m, err := gs.ParseMove(text)
		if err != nil {
			return err
		}
		gs.Apply(m)
	}
	return nil
}

// Perft counts the leaf positions reachable in exactly depth plies.
// It works on a silent copy of gs, which is left unchanged.
func Perft(gs *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return perft(gs.QuietClone(), depth)
}

func perft(gs *GameState, depth int) uint64 {
	moves := gs.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		gs.Apply(m)
		nodes += perft(gs, depth-1)
		gs.Undo()
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// String returns "e2e4: 20" style output.
func (e DivideEntry) String() string {
	return fmt.Sprintf("%s: %d", e.Move.Notation(), e.Nodes)
}

// Divide returns the perft count below each legal root move, in
// LegalMoves order.
func Divide(gs *GameState, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	work := gs.QuietClone()
	moves := work.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		work.Apply(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(work, depth-1)})
		work.Undo()
	}
	return entries
}
