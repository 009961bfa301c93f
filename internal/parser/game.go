package parser

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Tag names with a meaning when replaying a game.
const (
	NameTag   = "Name"
	FENTag    = "FEN"
	ResultTag = "Result"
)

// Comment is a movetext comment and the number of moves that preceded it.
type Comment struct {
	Ply  int
	Text string
}

// Game is one parsed game record.
type Game struct {
	Tags           map[string]string
	TagOrder       []string
	PrefixComments []string
	Moves          []string
	Comments       []Comment
	Result         string
	StartLine      int
}

// NewGame creates an empty game.
func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// SetTag sets a tag, remembering the order tags were first seen in.
func (g *Game) SetTag(name, value string) {
	if _, ok := g.Tags[name]; !ok {
		g.TagOrder = append(g.TagOrder, name)
	}
	g.Tags[name] = value
}

// GetTag returns a tag value, or "" if not set.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// Replay plays the game's moves from its FEN tag, or from the standard
// starting position when there is none. Errors name the game and the ply of
// the first move that could not be played.
func (g *Game) Replay(cfg *config.Config) (*engine.GameState, error) {
	var (
		gs  *engine.GameState
		err error
	)
	if fen := g.GetTag(FENTag); fen != "" {
		gs, err = engine.NewGameStateFromFENWithConfig(fen, cfg)
		if err != nil {
			return nil, err
		}
	} else {
		gs = engine.NewGameStateWithConfig(cfg)
	}

	if err := gs.PlayMoves(g.Moves...); err != nil {
		if me, ok := err.(*errors.MoveError); ok {
			me.Game = g.GetTag(NameTag)
		}
		return gs, err
	}
	return gs, nil
}

// ResultOf returns the result marker matching the state of gs.
func ResultOf(gs *engine.GameState) string {
	switch gs.Status() {
	case engine.Checkmate:
		if gs.ToMove() == chess.White {
			return BlackWins
		}
		return WhiteWins
	case engine.Stalemate:
		return Draw
	default:
		return Unknown
	}
}
