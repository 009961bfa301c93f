package chess

import "strings"

// Board is the 8x8 grid of squares addressed as [rank][file].
// Rank 0 is Black's back rank, rank 7 is White's, matching display orientation.
// Board is a value type: assigning it copies all 64 squares.
type Board [BoardSize][BoardSize]Square

// backRank is the piece order of both back ranks from the a-file.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the standard starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for file := 0; file < BoardSize; file++ {
		b[Black.BackRank()][file] = B(backRank[file])
		b[Black.PawnRank()][file] = B(Pawn)
		b[White.PawnRank()][file] = W(Pawn)
		b[White.BackRank()][file] = W(backRank[file])
	}
}

// At returns the square content at c. Off-board coordinates read as Empty.
func (b *Board) At(c Coord) Square {
	if !c.OnBoard() {
		return Empty
	}
	return b[c.Rank][c.File]
}

// Set places a square content at c. Off-board coordinates are ignored.
func (b *Board) Set(c Coord, sq Square) {
	if c.OnBoard() {
		b[c.Rank][c.File] = sq
	}
}

// FindKing returns the square of the given colour's king and whether one was found.
func (b *Board) FindKing(colour Colour) (Coord, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b[rank][file].Is(colour, King) {
				return Sq(rank, file), true
			}
		}
	}
	return NoCoord, false
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(colour Colour, kind PieceKind) int {
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b[rank][file].Is(colour, kind) {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b[rank][file].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
