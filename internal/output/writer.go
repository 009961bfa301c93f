package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes the current state of one game.
	WriteGame(name string, gs *engine.GameState) error

	// Flush writes any buffered games.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// TextWriter writes a diagram, the move list and the FEN of each game.
type TextWriter struct {
	w             io.Writer
	renderer      render.Renderer
	maxLineLength int
}

// NewTextWriter creates a text writer. The diagram follows cfg's board
// orientation.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	flipped := cfg != nil && cfg.Render != nil && cfg.Render.Flipped
	return &TextWriter{
		w:             w,
		renderer:      render.TextRenderer{Flipped: flipped},
		maxLineLength: DefaultLineLength,
	}
}

// WriteGame writes gs immediately.
func (tw *TextWriter) WriteGame(name string, gs *engine.GameState) error {
	if name != "" {
		if _, err := fmt.Fprintf(tw.w, "[%s]\n", name); err != nil {
			return err
		}
	}
	if err := tw.renderer.Render(tw.w, render.DiagramOf(gs)); err != nil {
		return err
	}
	if gs.Ply() > 0 {
		WriteMoveList(tw.w, gs, tw.maxLineLength)
	}
	_, err := fmt.Fprintf(tw.w, "%s\n", gs.FEN())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games into one array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame converts gs now, so later moves do not change what is written.
func (jw *JSONWriter) WriteGame(name string, gs *engine.GameState) error {
	if jw.single {
		return OutputGameJSON(jw.w, name, gs)
	}
	jw.games = append(jw.games, GameToJSON(name, gs))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
