package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TextRenderer draws the board with FEN letters, '.' for empty squares,
// '*' for highlighted empty targets and file and rank labels.
type TextRenderer struct {
	Flipped bool
}

// Render writes the diagram as eight lines of text between file labels.
func (r TextRenderer) Render(w io.Writer, d Diagram) error {
	files := "  a b c d e f g h\n"
	if r.Flipped {
		files = "  h g f e d c b a\n"
	}

	var sb strings.Builder
	sb.WriteString(files)
	for row := 0; row < chess.BoardSize; row++ {
		rankLabel := screenSquare(row, 0, r.Flipped).String()[1]
		sb.WriteByte(rankLabel)
		sb.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			c := screenSquare(row, col, r.Flipped)
			sq := d.Board.At(c)
			switch {
			case sq.IsEmpty() && d.isTarget(c):
				sb.WriteByte('*')
			default:
				sb.WriteByte(sq.Letter())
			}
			if col < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(' ')
		sb.WriteByte(rankLabel)
		sb.WriteByte('\n')
	}
	sb.WriteString(files)

	_, err := fmt.Fprint(w, sb.String())
	return err
}
