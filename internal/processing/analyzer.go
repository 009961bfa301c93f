// Package processing replays games and reports what happened in them:
// move counts per side, draw-rule conditions and record validity.
package processing

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// SideCounts holds per-colour move statistics, indexed by chess.Colour.
type SideCounts [2]int

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Plies      int
	Captures   SideCounts
	Checks     SideCounts // checks given
	Castles    SideCounts
	EnPassant  SideCounts
	Promotions SideCounts

	Positions      []uint64 // Zobrist hashes, starting position first
	MaxRepetitions int

	// Draw rules are reported, not enforced.
	HasFiftyMoveRule        bool
	Has75MoveRule           bool
	HasRepetition           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool

	Status engine.Status
}

// FiftyMoveTriggered returns true if the game reached the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if a position occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// String returns a short multi-line summary.
func (ga *GameAnalysis) String() string {
	s := fmt.Sprintf("Plies: %d\n", ga.Plies)
	rows := []struct {
		name   string
		counts SideCounts
	}{
		{"Captures", ga.Captures},
		{"Checks", ga.Checks},
		{"Castles", ga.Castles},
		{"En passant", ga.EnPassant},
		{"Promotions", ga.Promotions},
	}
	for _, r := range rows {
		s += fmt.Sprintf("%s: White %d, Black %d\n", r.name, r.counts[chess.White], r.counts[chess.Black])
	}
	s += fmt.Sprintf("Most repetitions: %d\n", ga.MaxRepetitions)

	var notes []string
	if ga.HasFiftyMoveRule {
		notes = append(notes, "fifty-move rule")
	}
	if ga.Has75MoveRule {
		notes = append(notes, "seventy-five-move rule")
	}
	if ga.HasRepetition {
		notes = append(notes, "threefold repetition")
	}
	if ga.Has5FoldRepetition {
		notes = append(notes, "fivefold repetition")
	}
	if ga.HasInsufficientMaterial {
		notes = append(notes, "insufficient material")
	}
	for _, n := range notes {
		s += "Draw claim: " + n + "\n"
	}
	return s + "Status: " + ga.Status.String() + "\n"
}

// AnalyzeGame replays the history of gs from its starting position. gs is
// not changed.
func AnalyzeGame(gs *engine.GameState) *GameAnalysis {
	work := gs.QuietClone()
	history := work.History()
	for work.Ply() > 0 {
		work.Undo()
	}

	analysis := &GameAnalysis{Plies: len(history)}
	counter := hashing.NewPositionCounter(0)
	record := func() {
		h := hashing.Hash(work)
		analysis.Positions = append(analysis.Positions, h)
		if n := counter.Add(h); n > analysis.MaxRepetitions {
			analysis.MaxRepetitions = n
		}
	}
	record()

	for _, m := range history {
		mover := m.PieceMoved.Colour()
		work.Apply(m)

		if m.IsCapture() {
			analysis.Captures[mover]++
		}
		if m.IsCastleMove {
			analysis.Castles[mover]++
		}
		if m.IsEnPassantMove {
			analysis.EnPassant[mover]++
		}
		if m.IsPawnPromotion {
			analysis.Promotions[mover]++
		}
		if work.IsInCheck() {
			analysis.Checks[mover]++
		}

		// 50-move rule (100 half-moves), 75-move rule (150)
		if clock := work.HalfmoveClock(); clock >= 150 {
			analysis.Has75MoveRule = true
			analysis.HasFiftyMoveRule = true
		} else if clock >= 100 {
			analysis.HasFiftyMoveRule = true
		}
		record()
	}

	analysis.HasRepetition = analysis.MaxRepetitions >= 3
	analysis.Has5FoldRepetition = analysis.MaxRepetitions >= 5
	board := work.Board()
	analysis.HasInsufficientMaterial = HasInsufficientMaterial(&board)
	analysis.Status = work.Status()
	return analysis
}

// HasInsufficientMaterial reports whether neither side can ever mate: no
// pawns, rooks or queens, and at most one minor piece or only bishops on
// squares of one colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var knights, bishops int
	bishopSquareColours := map[int]bool{}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			switch board[rank][file].Kind() {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Knight:
				knights++
			case chess.Bishop:
				bishops++
				bishopSquareColours[(rank+file)%2] = true
			}
		}
	}

	switch {
	case knights+bishops <= 1:
		return true
	case knights == 0:
		return len(bishopSquareColours) == 1
	default:
		return false
	}
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string

	// ResultConsistent is false when the recorded result contradicts a
	// checkmate or stalemate at the end of the game.
	ResultConsistent bool
}

// ValidateGame replays a parsed game and checks that every move is legal
// and that its result marker fits the final position.
func ValidateGame(game *parser.Game, cfg *config.Config) *ValidationResult {
	result := &ValidationResult{Valid: true, ResultConsistent: true}

	if !isValidResult(game.Result) {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid result %q", game.Result)
		return result
	}

	gs, err := game.Replay(cfg)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		if gs != nil {
			result.ErrorPly = gs.Ply() + 1
		}
		return result
	}

	if gs.Status() != engine.Ongoing && game.Result != "" && game.Result != parser.ResultOf(gs) {
		result.ResultConsistent = false
	}
	return result
}

// CountPlies returns the number of moves in the game record.
func CountPlies(game *parser.Game) int {
	return len(game.Moves)
}

// HasComments returns true if the record holds any comment.
func HasComments(game *parser.Game) bool {
	return len(game.PrefixComments) > 0 || len(game.Comments) > 0
}

func isValidResult(result string) bool {
	switch result {
	case "", parser.WhiteWins, parser.BlackWins, parser.Draw, parser.Unknown:
		return true
	default:
		return false
	}
}
