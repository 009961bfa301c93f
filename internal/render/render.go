// Package render draws board diagrams as text or SVG.
package render

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Diagram is everything a renderer draws: the board plus the squares to
// mark on it.
type Diagram struct {
	Board chess.Board

	// LastMove is outlined when HasLastMove is set.
	LastMove    chess.Move
	HasLastMove bool

	// Selected is a square the user has picked, NoCoord if none.
	Selected chess.Coord

	// Targets are highlighted destination squares, usually the legal moves
	// of the piece on Selected.
	Targets []chess.Coord

	// Check is the square of a king in check, NoCoord if none.
	Check chess.Coord
}

// Renderer writes a diagram to w.
type Renderer interface {
	Render(w io.Writer, d Diagram) error
}

// DiagramOf builds the diagram of the current position of gs.
func DiagramOf(gs *engine.GameState) Diagram {
	d := Diagram{
		Board:    gs.Board(),
		Selected: chess.NoCoord,
		Check:    chess.NoCoord,
	}
	d.LastMove, d.HasLastMove = gs.LastMove()
	if gs.IsInCheck() {
		d.Check = gs.KingLocation(gs.ToMove())
	}
	return d
}

// Select marks from as selected and highlights the destinations of the
// legal moves that start there.
func (d *Diagram) Select(from chess.Coord, legal []chess.Move) {
	d.Selected = from
	d.Targets = d.Targets[:0]
	for _, m := range legal {
		if m.Start == from {
			d.Targets = append(d.Targets, m.End)
		}
	}
}

func (d *Diagram) isTarget(c chess.Coord) bool {
	for _, t := range d.Targets {
		if t == c {
			return true
		}
	}
	return false
}

func (d *Diagram) inLastMove(c chess.Coord) bool {
	return d.HasLastMove && (d.LastMove.Start == c || d.LastMove.End == c)
}

// screenSquare maps a screen row and column to the board square drawn
// there.
func screenSquare(row, col int, flipped bool) chess.Coord {
	if flipped {
		return chess.Sq(chess.BoardSize-1-row, chess.BoardSize-1-col)
	}
	return chess.Sq(row, col)
}
