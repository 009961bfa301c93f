package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Overlay colours for marked squares.
const (
	lastMoveFill = "fill:#cdd26a;fill-opacity:0.6"
	selectedFill = "fill:#6a9bd2;fill-opacity:0.6"
	checkFill    = "fill:#e04040;fill-opacity:0.7"
	targetDot    = "fill:#303030;fill-opacity:0.35"
)

var glyphs = map[chess.PieceKind][2]string{
	chess.King:   {"♔", "♚"},
	chess.Queen:  {"♕", "♛"},
	chess.Rook:   {"♖", "♜"},
	chess.Bishop: {"♗", "♝"},
	chess.Knight: {"♘", "♞"},
	chess.Pawn:   {"♙", "♟"},
}

// SVGRenderer draws the board as an SVG document.
type SVGRenderer struct {
	cfg *config.RenderConfig
}

// NewSVGRenderer creates a renderer. A nil cfg uses the defaults.
func NewSVGRenderer(cfg *config.RenderConfig) *SVGRenderer {
	if cfg == nil {
		cfg = config.NewRenderConfig()
	}
	return &SVGRenderer{cfg: cfg}
}

// Size returns the width and height of the document in pixels.
func (r *SVGRenderer) Size() int {
	size := r.cfg.SquareSize * chess.BoardSize
	if r.cfg.ShowCoordinates {
		size += r.margin() * 2
	}
	return size
}

func (r *SVGRenderer) margin() int {
	return r.cfg.SquareSize / 2
}

// Render writes the diagram to w. The svgo canvas does not report write
// errors, so the first one is captured from w and returned.
func (r *SVGRenderer) Render(w io.Writer, d Diagram) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	size, sq := r.Size(), r.cfg.SquareSize
	origin := 0
	if r.cfg.ShowCoordinates {
		origin = r.margin()
	}

	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	canvas.Gid("squares")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			c := screenSquare(row, col, r.cfg.Flipped)
			x, y := origin+col*sq, origin+row*sq

			fill := r.cfg.LightColour
			if (c.Rank+c.File)%2 == 1 {
				fill = r.cfg.DarkColour
			}
			canvas.Rect(x, y, sq, sq, "fill:"+fill)

			switch {
			case c == d.Check:
				canvas.Rect(x, y, sq, sq, checkFill)
			case c == d.Selected:
				canvas.Rect(x, y, sq, sq, selectedFill)
			case d.inLastMove(c):
				canvas.Rect(x, y, sq, sq, lastMoveFill)
			}
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			c := screenSquare(row, col, r.cfg.Flipped)
			x, y := origin+col*sq, origin+row*sq
			piece := d.Board.At(c)

			if d.isTarget(c) {
				canvas.Circle(x+sq/2, y+sq/2, sq/6, targetDot)
			}
			if piece.IsEmpty() {
				continue
			}
			canvas.Text(x+sq/2, y+sq/2, glyphs[piece.Kind()][piece.Colour()],
				fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", sq*3/4))
		}
	}
	canvas.Gend()

	if r.cfg.ShowCoordinates {
		r.coordinates(canvas, origin)
	}

	canvas.End()
	return ew.err
}

// coordinates labels the files below the board and the ranks to its left.
func (r *SVGRenderer) coordinates(canvas *svg.SVG, origin int) {
	sq := r.cfg.SquareSize
	style := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central;fill:#404040", sq/4)

	canvas.Gid("coordinates")
	for i := 0; i < chess.BoardSize; i++ {
		c := screenSquare(i, i, r.cfg.Flipped).String()
		canvas.Text(origin+i*sq+sq/2, origin+chess.BoardSize*sq+origin/2, c[:1], style)
		canvas.Text(origin/2, origin+i*sq+sq/2, c[1:], style)
	}
	canvas.Gend()
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
