// Package output writes games as move lists, diagrams and JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DefaultLineLength is the line length used when none is given.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, separated from the previous one by a space or a
// line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes the moves of gs in coordinate notation with move
// numbers, e.g. "1. e2e4 e7e5 2. g1f3". A game that started with Black to
// move opens with "1...". The list ends with a newline.
func WriteMoveList(w io.Writer, gs *engine.GameState, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	writeMoves(ow, gs)
	if status := gs.Status(); status != engine.Ongoing {
		ow.Write("{" + status.String() + "}")
	}
	ow.NewLine()
}

// writeMoves writes the numbered moves of gs.
func writeMoves(ow *OutputWriter, gs *engine.GameState) {
	number, colour := gs.StartMoveNumber()
	for i, m := range gs.History() {
		switch {
		case colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", number))
		}
		ow.Write(m.Notation())
		if colour == chess.Black {
			number++
		}
		colour = colour.Opposite()
	}
}
