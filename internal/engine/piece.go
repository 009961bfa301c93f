package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables, as {rank, file} deltas.
var (
	rookDirections   = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightOffsets    = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets      = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// pseudoMoves returns every geometrically valid move for colour, ignoring
// king safety and castling. Squares are scanned rank by rank, file by file.
func (gs *GameState) pseudoMoves(colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := gs.board[rank][file]
			if !sq.IsColour(colour) {
				continue
			}
			from := chess.Sq(rank, file)
			switch sq.Kind() {
			case chess.Pawn:
				moves = gs.pawnMoves(from, colour, moves)
			case chess.Rook:
				moves = gs.slidingMoves(from, colour, rookDirections[:], moves)
			case chess.Knight:
				moves = gs.offsetMoves(from, colour, knightOffsets[:], moves)
			case chess.Bishop:
				moves = gs.slidingMoves(from, colour, bishopDirections[:], moves)
			case chess.Queen:
				moves = gs.slidingMoves(from, colour, rookDirections[:], moves)
				moves = gs.slidingMoves(from, colour, bishopDirections[:], moves)
			case chess.King:
				moves = gs.offsetMoves(from, colour, kingOffsets[:], moves)
			}
		}
	}
	return moves
}

// slidingMoves casts a ray in each direction, stopping before a friendly
// piece and on an enemy piece.
func (gs *GameState) slidingMoves(from chess.Coord, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, d := range dirs {
		for i := 1; i < chess.BoardSize; i++ {
			to := from.Offset(d[0]*i, d[1]*i)
			if !to.OnBoard() {
				break
			}
			target := gs.board.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(from, to, &gs.board))
				continue
			}
			if target.Colour() != colour {
				moves = append(moves, chess.NewMove(from, to, &gs.board))
			}
			break
		}
	}
	return moves
}

// offsetMoves adds each on-board destination that is not friendly-occupied.
func (gs *GameState) offsetMoves(from chess.Coord, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if !to.OnBoard() || gs.board.At(to).IsColour(colour) {
			continue
		}
		moves = append(moves, chess.NewMove(from, to, &gs.board))
	}
	return moves
}
