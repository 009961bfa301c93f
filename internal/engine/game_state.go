// Package engine enforces the rules of chess: it generates legal moves,
// detects check, checkmate and stalemate, and applies and reverts moves
// while keeping castling rights, the en-passant target and the king
// location cache consistent.
//
// A GameState is not safe for concurrent use. It is owned by a single
// driver which calls LegalMoves, Apply and Undo in turn.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// GameState holds a position together with everything needed to undo the
// moves that led to it.
type GameState struct {
	board  chess.Board
	toMove chess.Colour

	// moveLog is the applied moves, oldest first.
	moveLog []chess.Move

	// castleRightsLog and enPassantLog hold one entry per applied move
	// plus the entry for the starting position; the last entry always
	// equals the current value.
	castleRightsLog []chess.CastleRights
	enPassantLog    []chess.Coord

	castleRights chess.CastleRights
	enPassant    chess.Coord

	// kingLocation is indexed by chess.Colour.
	kingLocation [2]chess.Coord

	checkmate bool
	stalemate bool

	// Counters of the starting position, used for FEN export.
	startHalfmove int
	startFullmove int
	startToMove   chess.Colour

	rookCaptureRevokes bool
	pawnsAttackEmpty   bool
	cfg                *config.Config
}

// NewGameState creates a game at the standard starting position: White to
// move, all castling rights granted, no en-passant target.
func NewGameState() *GameState {
	return NewGameStateWithConfig(nil)
}

// NewGameStateWithConfig creates a game at the standard starting position
// that reports game events to cfg's log and follows cfg's rule switches.
// A nil cfg is silent and uses the default rules.
func NewGameStateWithConfig(cfg *config.Config) *GameState {
	gs := &GameState{}
	gs.board.SetupInitialPosition()
	gs.reset(chess.White, chess.AllCastleRights(), chess.NoCoord)
	gs.startFullmove = 1
	gs.configure(cfg)
	return gs
}

// reset initialises the turn, histories and king cache from the board.
func (gs *GameState) reset(toMove chess.Colour, rights chess.CastleRights, enPassant chess.Coord) {
	gs.toMove = toMove
	gs.startToMove = toMove
	gs.moveLog = nil
	gs.castleRights = rights
	gs.enPassant = enPassant
	gs.castleRightsLog = []chess.CastleRights{rights}
	gs.enPassantLog = []chess.Coord{enPassant}
	gs.checkmate = false
	gs.stalemate = false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		gs.kingLocation[colour], _ = gs.board.FindKing(colour)
	}
}

// configure attaches cfg to the game.
func (gs *GameState) configure(cfg *config.Config) {
	gs.cfg = cfg
	gs.rookCaptureRevokes = cfg != nil && cfg.Rules != nil && cfg.Rules.RookCaptureRevokesCastling
	gs.pawnsAttackEmpty = cfg != nil && cfg.Rules != nil && cfg.Rules.PawnsAttackEmptySquares
}

// Board returns a snapshot of the board. Changing it does not affect the game.
func (gs *GameState) Board() chess.Board {
	return gs.board
}

// At returns the content of one square of the current position.
func (gs *GameState) At(c chess.Coord) chess.Square {
	return gs.board.At(c)
}

// ToMove returns the side to move.
func (gs *GameState) ToMove() chess.Colour {
	return gs.toMove
}

// History returns a copy of the applied moves, oldest first.
func (gs *GameState) History() []chess.Move {
	return append([]chess.Move(nil), gs.moveLog...)
}

// Ply returns the number of applied moves.
func (gs *GameState) Ply() int {
	return len(gs.moveLog)
}

// LastMove returns the most recently applied move and whether there is one.
func (gs *GameState) LastMove() (chess.Move, bool) {
	if len(gs.moveLog) == 0 {
		return chess.Move{}, false
	}
	return gs.moveLog[len(gs.moveLog)-1], true
}

// CastleRights returns the current castling rights.
func (gs *GameState) CastleRights() chess.CastleRights {
	return gs.castleRights
}

// CastleRightsHistory returns a copy of the castling-rights snapshots,
// starting with the one for the initial position.
func (gs *GameState) CastleRightsHistory() []chess.CastleRights {
	return append([]chess.CastleRights(nil), gs.castleRightsLog...)
}

// EnPassant returns the en-passant target square and whether one is set.
func (gs *GameState) EnPassant() (chess.Coord, bool) {
	return gs.enPassant, gs.enPassant.OnBoard()
}

// KingLocation returns the cached square of colour's king.
func (gs *GameState) KingLocation(colour chess.Colour) chess.Coord {
	return gs.kingLocation[colour]
}

// Checkmate reports whether the last LegalMoves call found checkmate.
func (gs *GameState) Checkmate() bool {
	return gs.checkmate
}

// Stalemate reports whether the last LegalMoves call found stalemate.
func (gs *GameState) Stalemate() bool {
	return gs.stalemate
}

// StartMoveNumber returns the fullmove number and side to move of the
// position the game started from.
func (gs *GameState) StartMoveNumber() (int, chess.Colour) {
	return gs.startFullmove, gs.startToMove
}

// BuildMove builds a candidate move between two squares of the current
// position. The result is only actionable if it matches one of LegalMoves.
func (gs *GameState) BuildMove(start, end chess.Coord) chess.Move {
	return chess.NewMove(start, end, &gs.board)
}

// Clone returns an independent copy of the game, including its history.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.moveLog = append([]chess.Move(nil), gs.moveLog...)
	c.castleRightsLog = append([]chess.CastleRights(nil), gs.castleRightsLog...)
	c.enPassantLog = append([]chess.Coord(nil), gs.enPassantLog...)
	return &c
}

// QuietClone returns a clone that writes no diagnostics.
func (gs *GameState) QuietClone() *GameState {
	c := gs.Clone()
	c.cfg = nil
	return c
}
