package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// WriteGameRecord writes gs as a game record that parser.Parser reads back:
// a Name tag when name is set, a FEN tag when the game did not start from
// the standard position, then the movetext and the result marker.
func WriteGameRecord(w io.Writer, name, startFEN string, gs *engine.GameState) error {
	result := parser.ResultOf(gs)

	var sb strings.Builder
	if name != "" {
		writeTag(&sb, parser.NameTag, name)
	}
	if startFEN != "" && startFEN != engine.InitialFEN {
		writeTag(&sb, parser.FENTag, startFEN)
	}
	writeTag(&sb, parser.ResultTag, result)
	sb.WriteByte('\n')

	ow := NewOutputWriter(&sb, DefaultLineLength)
	writeMoves(ow, gs)
	ow.Write(result)
	ow.NewLine()
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTag(sb *strings.Builder, name, value string) {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	fmt.Fprintf(sb, "[%s \"%s\"]\n", name, value)
}
