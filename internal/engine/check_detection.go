package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsInCheck returns true if the side to move is in check.
func (gs *GameState) IsInCheck() bool {
	return gs.isInCheck(gs.toMove)
}

// SquareUnderAttack returns true if a piece of colour by attacks c under the
// configured pawn rule.
func (gs *GameState) SquareUnderAttack(c chess.Coord, by chess.Colour) bool {
	return gs.squareUnderAttack(c, by)
}

// isInCheck returns true if colour's king is attacked. The king cache must
// point at that king; anything else is a broken invariant and panics.
func (gs *GameState) isInCheck(colour chess.Colour) bool {
	king := gs.kingLocation[colour]
	if !gs.board.At(king).Is(colour, chess.King) {
		panic(fmt.Sprintf("engine: %v king not found on cached square %v", colour, king))
	}
	return gs.squareUnderAttack(king, colour.Opposite())
}

// squareUnderAttack reports whether a pseudo-legal move of by ends on c.
// With pawnsAttackEmpty set, pawns instead attack their two forward
// diagonals whether or not c is occupied, and never the square they
// advance to.
func (gs *GameState) squareUnderAttack(c chess.Coord, by chess.Colour) bool {
	if gs.pawnsAttackEmpty {
		for _, df := range [2]int{-1, 1} {
			if gs.board.At(c.Offset(-by.Forward(), df)).Is(by, chess.Pawn) {
				return true
			}
		}
	}
	for _, m := range gs.pseudoMoves(by) {
		if m.End != c {
			continue
		}
		if !gs.pawnsAttackEmpty || m.PieceMoved.Kind() != chess.Pawn {
			return true
		}
	}
	return false
}
