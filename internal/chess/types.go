// Package chess provides the core chess types: colours, pieces, squares,
// coordinates, the board and moves.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn advance: -1 for White, +1 for Black.
// Rank 0 is Black's back rank.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// BackRank returns the index of the colour's home rank.
func (c Colour) BackRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRank returns the index of the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRank returns the index of the farthest rank for the colour's pawns.
func (c Colour) PromotionRank() int {
	return c.Opposite().BackRank()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a piece kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Square is the content of one board square: either empty or a coloured piece.
// The zero value is the empty square. Use W, B or NewSquare to build occupied
// squares so that an empty square never carries a colour.
type Square struct {
	colour Colour
	kind   PieceKind
}

// Empty is the empty square.
var Empty = Square{}

// NewSquare creates a square holding a piece of the given colour and kind.
// NoKind yields Empty.
func NewSquare(colour Colour, kind PieceKind) Square {
	if kind == NoKind {
		return Empty
	}
	return Square{colour: colour, kind: kind}
}

// W creates a white piece.
func W(kind PieceKind) Square {
	return NewSquare(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Square {
	return NewSquare(Black, kind)
}

// IsEmpty returns true if the square holds no piece.
func (s Square) IsEmpty() bool {
	return s.kind == NoKind
}

// Colour returns the colour of the piece on the square.
// It is meaningless for an empty square.
func (s Square) Colour() Colour {
	return s.colour
}

// Kind returns the piece kind on the square, NoKind if empty.
func (s Square) Kind() PieceKind {
	return s.kind
}

// Is reports whether the square holds a piece of the given colour and kind.
func (s Square) Is(colour Colour, kind PieceKind) bool {
	return !s.IsEmpty() && s.colour == colour && s.kind == kind
}

// Equal reports whether two squares hold the same content.
func (s Square) Equal(other Square) bool {
	return s == other
}

// IsColour reports whether the square holds a piece of the given colour.
func (s Square) IsColour(colour Colour) bool {
	return !s.IsEmpty() && s.colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (s Square) Letter() byte {
	if s.IsEmpty() {
		return '.'
	}
	l := s.kind.Letter()
	if s.colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short code such as "wK" or "--" for an empty square.
func (s Square) String() string {
	if s.IsEmpty() {
		return "--"
	}
	c := byte('w')
	if s.colour == Black {
		c = 'b'
	}
	return string([]byte{c, s.kind.Letter()})
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '8' // rank index 0 is printed as '8'
)

// Coord addresses a square by rank and file index. Rank 0 is Black's back
// rank (printed as 8) and rank 7 is White's (printed as 1); file 0 is 'a'.
type Coord struct {
	Rank int
	File int
}

// NoCoord marks an absent coordinate, such as a missing en-passant target.
var NoCoord = Coord{Rank: -1, File: -1}

// Sq is shorthand for building a Coord.
func Sq(rank, file int) Coord {
	return Coord{Rank: rank, File: file}
}

// OnBoard returns true if the coordinate lies on the 8x8 board.
func (c Coord) OnBoard() bool {
	return c.Rank >= 0 && c.Rank < BoardSize && c.File >= 0 && c.File < BoardSize
}

// Offset returns the coordinate shifted by the given rank and file deltas.
// The result may lie off the board.
func (c Coord) Offset(dRank, dFile int) Coord {
	return Coord{Rank: c.Rank + dRank, File: c.File + dFile}
}

// String returns the file letter and rank digit, e.g. "e2", or "-" when
// the coordinate is off the board.
func (c Coord) String() string {
	if !c.OnBoard() {
		return "-"
	}
	return string([]byte{byte(FileBase + c.File), byte(RankBase - c.Rank)})
}

// ParseCoord parses a file letter and rank digit such as "e2".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return NoCoord, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Expected: "file letter and rank digit"}
	}
	file := int(s[0]) - FileBase
	rank := RankBase - int(s[1])
	c := Coord{Rank: rank, File: file}
	if !c.OnBoard() {
		return NoCoord, fmt.Errorf("square %q is off the board: %w", s, errors.ErrInvalidSquare)
	}
	return c, nil
}
