package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents a game position in JSON format.
type JSONGame struct {
	Name         string     `json:"name,omitempty"`
	FEN          string     `json:"fen"`
	ToMove       string     `json:"toMove"`
	Status       string     `json:"status"`
	InCheck      bool       `json:"inCheck"`
	CastleRights string     `json:"castleRights"`
	EnPassant    string     `json:"enPassant,omitempty"`
	Ply          int        `json:"ply"`
	Moves        []JSONMove `json:"moves,omitempty"`
	LegalMoves   []string   `json:"legalMoves"`
}

// JSONMove represents an applied move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Colour    string `json:"colour"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion bool   `json:"promotion,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts the current state of gs to JSON format.
func GameToJSON(name string, gs *engine.GameState) *JSONGame {
	legal := gs.LegalMoves()
	jg := &JSONGame{
		Name:         name,
		FEN:          gs.FEN(),
		ToMove:       strings.ToLower(gs.ToMove().String()),
		InCheck:      gs.IsInCheck(),
		CastleRights: gs.CastleRights().String(),
		Ply:          gs.Ply(),
		LegalMoves:   make([]string, len(legal)),
	}
	// The flags are current after the LegalMoves call above.
	switch {
	case gs.Checkmate():
		jg.Status = engine.Checkmate.String()
	case gs.Stalemate():
		jg.Status = engine.Stalemate.String()
	default:
		jg.Status = engine.Ongoing.String()
	}
	if ep, ok := gs.EnPassant(); ok {
		jg.EnPassant = ep.String()
	}
	for i, m := range legal {
		jg.LegalMoves[i] = m.Notation()
	}
	for i, m := range gs.History() {
		jg.Moves = append(jg.Moves, moveToJSON(i+1, m))
	}
	return jg
}

func moveToJSON(ply int, m chess.Move) JSONMove {
	jm := JSONMove{
		Ply:       ply,
		Colour:    strings.ToLower(m.PieceMoved.Colour().String()),
		From:      m.Start.String(),
		To:        m.End.String(),
		Piece:     strings.ToLower(m.PieceMoved.Kind().String()),
		Promotion: m.IsPawnPromotion,
		EnPassant: m.IsEnPassantMove,
		Castle:    m.IsCastleMove,
	}
	if m.IsCapture() {
		jm.Captured = strings.ToLower(m.PieceCaptured.Kind().String())
	}
	return jm
}

// OutputGameJSON writes a single game as indented JSON.
func OutputGameJSON(w io.Writer, name string, gs *engine.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(name, gs))
}
