package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleMoves appends the castling moves available to colour. Castling is
// never generated by the king's ordinary move table.
func (gs *GameState) castleMoves(colour chess.Colour, moves []chess.Move) []chess.Move {
	king := gs.kingLocation[colour]
	if gs.squareUnderAttack(king, colour.Opposite()) {
		return moves
	}
	if gs.castleRights.Kingside(colour) {
		moves = gs.kingsideCastleMoves(king, colour, moves)
	}
	if gs.castleRights.Queenside(colour) {
		moves = gs.queensideCastleMoves(king, colour, moves)
	}
	return moves
}

// kingsideCastleMoves requires both squares between king and rook to be
// empty and unattacked.
func (gs *GameState) kingsideCastleMoves(king chess.Coord, colour chess.Colour, moves []chess.Move) []chess.Move {
	f, g := king.Offset(0, 1), king.Offset(0, 2)
	if !g.OnBoard() || !gs.board.At(f).IsEmpty() || !gs.board.At(g).IsEmpty() {
		return moves
	}
	enemy := colour.Opposite()
	if gs.squareUnderAttack(f, enemy) || gs.squareUnderAttack(g, enemy) {
		return moves
	}
	return append(moves, chess.NewCastleMove(king, g, &gs.board))
}

// queensideCastleMoves requires the three squares between king and rook to
// be empty. Only the two squares the king crosses are tested for attack;
// the square next to the rook is not.
func (gs *GameState) queensideCastleMoves(king chess.Coord, colour chess.Colour, moves []chess.Move) []chess.Move {
	d, c, b := king.Offset(0, -1), king.Offset(0, -2), king.Offset(0, -3)
	if !b.OnBoard() || !gs.board.At(d).IsEmpty() || !gs.board.At(c).IsEmpty() || !gs.board.At(b).IsEmpty() {
		return moves
	}
	enemy := colour.Opposite()
	if gs.squareUnderAttack(d, enemy) || gs.squareUnderAttack(c, enemy) {
		return moves
	}
	return append(moves, chess.NewCastleMove(king, c, &gs.board))
}
