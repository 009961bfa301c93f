package chess

// Move is an immutable description of one move. The moved and captured
// pieces are snapshots of the board the move was built against, so a Move is
// only meaningful for that position.
type Move struct {
	Start Coord
	End   Coord

	// PieceMoved is the content of Start when the move was built.
	PieceMoved Square

	// PieceCaptured is the content of End when the move was built, or the
	// passed pawn for an en-passant capture.
	PieceCaptured Square

	IsPawnPromotion bool
	IsEnPassantMove bool
	IsCastleMove    bool
}

// NewMove builds a move from start to end against board. The promotion flag
// is derived: a pawn reaching its farthest rank promotes.
func NewMove(start, end Coord, board *Board) Move {
	m := Move{
		Start:         start,
		End:           end,
		PieceMoved:    board.At(start),
		PieceCaptured: board.At(end),
	}
	if m.PieceMoved.Kind() == Pawn {
		m.IsPawnPromotion = end.Rank == m.PieceMoved.Colour().PromotionRank()
	}
	return m
}

// NewEnPassantMove builds an en-passant capture. The captured piece is the
// opposing pawn, which does not stand on the destination square.
func NewEnPassantMove(start, end Coord, board *Board) Move {
	m := NewMove(start, end, board)
	m.IsEnPassantMove = true
	m.PieceCaptured = NewSquare(m.PieceMoved.Colour().Opposite(), Pawn)
	return m
}

// NewCastleMove builds a castling move; start and end are the king's squares.
func NewCastleMove(start, end Coord, board *Board) Move {
	m := NewMove(start, end, board)
	m.IsCastleMove = true
	return m
}

// Equal reports whether two moves have the same start and end squares.
// Flags and piece snapshots are not compared.
func (m Move) Equal(other Move) bool {
	return m.Start == other.Start && m.End == other.End
}

// IsCapture returns true if the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return !m.PieceCaptured.IsEmpty()
}

// IsKingside returns true for a castling move towards the h-file.
func (m Move) IsKingside() bool {
	return m.IsCastleMove && m.End.File > m.Start.File
}

// IsDoublePawnPush returns true for a pawn advancing two ranks.
func (m Move) IsDoublePawnPush() bool {
	if m.PieceMoved.Kind() != Pawn {
		return false
	}
	d := m.End.Rank - m.Start.Rank
	return d == 2 || d == -2
}

// Notation returns the coordinate notation of the move: start square then
// end square, e.g. "e2e4". Castling is written as the king's move.
func (m Move) Notation() string {
	return m.Start.String() + m.End.String()
}

// String returns the coordinate notation of the move.
func (m Move) String() string {
	return m.Notation()
}

// IndexOf returns the index of the first move in moves equal to m, or -1.
func IndexOf(moves []Move, m Move) int {
	for i := range moves {
		if moves[i].Equal(m) {
			return i
		}
	}
	return -1
}
