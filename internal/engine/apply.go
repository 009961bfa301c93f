package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Apply makes a move. The move is assumed to come from LegalMoves for the
// current position; Apply does not validate it.
func (gs *GameState) Apply(m chess.Move) {
	colour := m.PieceMoved.Colour()

	gs.board.Set(m.Start, chess.Empty)
	gs.board.Set(m.End, m.PieceMoved)
	gs.moveLog = append(gs.moveLog, m)
	gs.toMove = gs.toMove.Opposite()

	if m.PieceMoved.Kind() == chess.King {
		gs.kingLocation[colour] = m.End
	}

	// Promotion is always to a queen.
	if m.IsPawnPromotion {
		gs.board.Set(m.End, chess.NewSquare(colour, chess.Queen))
	}

	// The passed pawn stands beside the origin, not on the destination.
	if m.IsEnPassantMove {
		gs.board.Set(chess.Sq(m.Start.Rank, m.End.File), chess.Empty)
	}

	if m.IsDoublePawnPush() {
		gs.enPassant = chess.Sq((m.Start.Rank+m.End.Rank)/2, m.Start.File)
	} else {
		gs.enPassant = chess.NoCoord
	}

	if m.IsCastleMove {
		from, to := castleRookSquares(m)
		gs.board.Set(to, gs.board.At(from))
		gs.board.Set(from, chess.Empty)
	}

	gs.updateCastleRights(m)
	gs.castleRightsLog = append(gs.castleRightsLog, gs.castleRights)
	gs.enPassantLog = append(gs.enPassantLog, gs.enPassant)
}

// Undo reverts the most recent move. It does nothing if no move has been made.
func (gs *GameState) Undo() {
	if len(gs.moveLog) == 0 {
		return
	}
	m := gs.moveLog[len(gs.moveLog)-1]
	gs.moveLog = gs.moveLog[:len(gs.moveLog)-1]

	gs.board.Set(m.Start, m.PieceMoved)
	gs.board.Set(m.End, m.PieceCaptured)
	gs.toMove = gs.toMove.Opposite()

	if m.PieceMoved.Kind() == chess.King {
		gs.kingLocation[m.PieceMoved.Colour()] = m.Start
	}

	if m.IsEnPassantMove {
		gs.board.Set(m.End, chess.Empty)
		gs.board.Set(chess.Sq(m.Start.Rank, m.End.File), m.PieceCaptured)
	}

	gs.castleRightsLog = gs.castleRightsLog[:len(gs.castleRightsLog)-1]
	gs.castleRights = gs.castleRightsLog[len(gs.castleRightsLog)-1]
	gs.enPassantLog = gs.enPassantLog[:len(gs.enPassantLog)-1]
	gs.enPassant = gs.enPassantLog[len(gs.enPassantLog)-1]

	if m.IsCastleMove {
		from, to := castleRookSquares(m)
		gs.board.Set(from, gs.board.At(to))
		gs.board.Set(to, chess.Empty)
	}
}

// castleRookSquares returns the rook's origin and destination for a castling
// move, relative to the king's destination.
func castleRookSquares(m chess.Move) (from, to chess.Coord) {
	if m.IsKingside() {
		return m.End.Offset(0, 1), m.End.Offset(0, -1)
	}
	return m.End.Offset(0, -2), m.End.Offset(0, 1)
}

// updateCastleRights revokes the rights lost by m. A king move loses both
// rights of its colour; a rook leaving its home corner loses that side.
func (gs *GameState) updateCastleRights(m chess.Move) {
	colour := m.PieceMoved.Colour()
	switch m.PieceMoved.Kind() {
	case chess.King:
		gs.castleRights.RevokeAll(colour)
	case chess.Rook:
		revokeCorner(&gs.castleRights, colour, m.Start)
	}

	if gs.rookCaptureRevokes && m.PieceCaptured.Kind() == chess.Rook {
		revokeCorner(&gs.castleRights, m.PieceCaptured.Colour(), m.End)
	}
}

// revokeCorner clears colour's right on the side whose rook starts at c.
func revokeCorner(rights *chess.CastleRights, colour chess.Colour, c chess.Coord) {
	if c.Rank != colour.BackRank() {
		return
	}
	switch c.File {
	case 0:
		rights.RevokeQueenside(colour)
	case chess.BoardSize - 1:
		rights.RevokeKingside(colour)
	}
}

// leavesKingAttacked makes m, tests whether the mover's king is attacked,
// and reverts m before returning on every path.
func (gs *GameState) leavesKingAttacked(m chess.Move) bool {
	mover := gs.toMove
	gs.Apply(m)
	defer gs.Undo()
	return gs.isInCheck(mover)
}
