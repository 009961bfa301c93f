package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameStateFromFEN creates a game from a FEN string. The position must
// hold exactly one king of each colour. Castling rights whose king or rook
// is not on its home square are dropped.
func NewGameStateFromFEN(fen string) (*GameState, error) {
	return NewGameStateFromFENWithConfig(fen, nil)
}

// NewGameStateFromFENWithConfig is NewGameStateFromFEN with a configuration.
func NewGameStateFromFENWithConfig(fen string, cfg *config.Config) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "piece placement"}
	}

	gs := &GameState{}
	if err := parsePiecePositions(&gs.board, parts[0]); err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: "piece placement"}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := gs.board.Count(colour, chess.King); n != 1 {
			return nil, &errors.ParseError{
				Err:      fmt.Errorf("%w: %w", errors.ErrInvalidFEN, errors.ErrMissingKing),
				Input:    fen,
				Field:    colour.String() + " kings",
				Expected: "1",
				Got:      strconv.Itoa(n),
			}
		}
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: "side to move"}
	}
	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: "castling"}
	}
	enPassant, err := parseEnPassant(parts, &gs.board, toMove)
	if err != nil {
		return nil, &errors.ParseError{Err: err, Input: fen, Field: "en passant"}
	}

	gs.reset(toMove, sanitizeCastleRights(&gs.board, rights), enPassant)
	gs.startHalfmove, gs.startFullmove = parseClocks(parts)
	gs.configure(cfg)
	return gs, nil
}

// parsePiecePositions parses the piece placement field into board.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("%d ranks, want %d: %w", len(rows), chess.BoardSize, errors.ErrInvalidFEN)
	}

	for rank, row := range rows {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-rank, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Sq(rank, file), chess.NewSquare(colour, kind))
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. A missing field means White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (chess.CastleRights, error) {
	var rights chess.CastleRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("invalid castling character %q: %w", c, errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// sanitizeCastleRights drops rights the board cannot support.
func sanitizeCastleRights(board *chess.Board, rights chess.CastleRights) chess.CastleRights {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := colour.BackRank()
		if !board.At(chess.Sq(home, 4)).Is(colour, chess.King) {
			rights.RevokeAll(colour)
			continue
		}
		if !board.At(chess.Sq(home, chess.BoardSize-1)).Is(colour, chess.Rook) {
			rights.RevokeKingside(colour)
		}
		if !board.At(chess.Sq(home, 0)).Is(colour, chess.Rook) {
			rights.RevokeQueenside(colour)
		}
	}
	return rights
}

// parseEnPassant parses the en passant target square field. The target
// must be empty, on the rank the opponent's double push passed over, and
// have the opponent's pawn directly behind it.
func parseEnPassant(parts []string, board *chess.Board, toMove chess.Colour) (chess.Coord, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoCoord, nil
	}
	c, err := chess.ParseCoord(parts[3])
	if err != nil {
		return chess.NoCoord, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}
	opponent := toMove.Opposite()
	if c.Rank != opponent.BackRank()+2*opponent.Forward() {
		return chess.NoCoord, fmt.Errorf("en passant square %s not behind a %v double push: %w", c, opponent, errors.ErrInvalidFEN)
	}
	if !board.At(c).IsEmpty() {
		return chess.NoCoord, fmt.Errorf("en passant square %s is occupied: %w", c, errors.ErrInvalidFEN)
	}
	if !board.At(c.Offset(opponent.Forward(), 0)).Is(opponent, chess.Pawn) {
		return chess.NoCoord, fmt.Errorf("no %v pawn in front of en passant square %s: %w", opponent, c, errors.ErrInvalidFEN)
	}
	return c, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Missing or malformed values fall back to 0 and 1.
func parseClocks(parts []string) (halfmove, fullmove int) {
	halfmove, fullmove = 0, 1
	if len(parts) >= 5 {
		if n, err := strconv.Atoi(parts[4]); err == nil && n >= 0 {
			halfmove = n
		}
	}
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n >= 1 {
			fullmove = n
		}
	}
	return halfmove, fullmove
}

// FEN returns the FEN string of the current position.
func (gs *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &gs.board)
	sb.WriteByte(' ')
	if gs.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(gs.castleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(gs.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", gs.HalfmoveClock(), gs.FullmoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq := board[rank][file]
			if sq.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(sq.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// HalfmoveClock counts plies since the last pawn move or capture.
func (gs *GameState) HalfmoveClock() int {
	for i := len(gs.moveLog) - 1; i >= 0; i-- {
		m := gs.moveLog[i]
		if m.PieceMoved.Kind() == chess.Pawn || m.IsCapture() {
			return len(gs.moveLog) - 1 - i
		}
	}
	return gs.startHalfmove + len(gs.moveLog)
}

// FullmoveNumber starts at the position's fullmove number and increments
// after each Black move.
func (gs *GameState) FullmoveNumber() int {
	plies := len(gs.moveLog)
	if gs.startToMove == chess.Black {
		plies++
	}
	return gs.startFullmove + plies/2
}
