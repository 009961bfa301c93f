package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the legal moves of the side to move in board-scan
// order, with castling moves last. It also recomputes the checkmate and
// stalemate flags.
//
// Each candidate is tried by applying it, testing the mover's king and
// undoing it again.
func (gs *GameState) LegalMoves() []chess.Move {
	savedEnPassant := gs.enPassant
	savedRights := gs.castleRights
	defer func() {
		gs.enPassant = savedEnPassant
		gs.castleRights = savedRights
	}()

	gs.checkmate = false
	gs.stalemate = false
	mover := gs.toMove

	candidates := gs.pseudoMoves(mover)
	moves := candidates[:0]
	for _, m := range candidates {
		if !gs.leavesKingAttacked(m) {
			moves = append(moves, m)
		}
	}

	if len(moves) == 0 {
		if gs.isInCheck(mover) {
			gs.checkmate = true
			gs.cfg.Logf(1, "checkmate: %v to move after %d plies", mover, len(gs.moveLog))
		} else {
			gs.stalemate = true
			gs.cfg.Logf(1, "stalemate: %v to move after %d plies", mover, len(gs.moveLog))
		}
	}

	return gs.castleMoves(mover, moves)
}

// HasLegalMove reports whether m matches, by start and end square, one of
// the legal moves, and returns the matching legal move with its flags.
func (gs *GameState) HasLegalMove(m chess.Move) (chess.Move, bool) {
	legal := gs.LegalMoves()
	if i := chess.IndexOf(legal, m); i >= 0 {
		return legal[i], true
	}
	return chess.Move{}, false
}
