package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves adds the single and double advances, the diagonal captures and
// any en-passant capture of the pawn on from.
func (gs *GameState) pawnMoves(from chess.Coord, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := colour.Forward()
	ahead := from.Offset(dir, 0)
	if !ahead.OnBoard() {
		return moves
	}

	if gs.board.At(ahead).IsEmpty() {
		moves = append(moves, chess.NewMove(from, ahead, &gs.board))
		twoAhead := from.Offset(2*dir, 0)
		if from.Rank == colour.PawnRank() && gs.board.At(twoAhead).IsEmpty() {
			moves = append(moves, chess.NewMove(from, twoAhead, &gs.board))
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Offset(dir, df)
		if !to.OnBoard() {
			continue
		}
		switch {
		case gs.board.At(to).IsColour(colour.Opposite()):
			moves = append(moves, chess.NewMove(from, to, &gs.board))
		case to == gs.enPassant:
			moves = append(moves, chess.NewEnPassantMove(from, to, &gs.board))
		}
	}
	return moves
}
