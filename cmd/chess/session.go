// session.go - Interactive command loop
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/storage"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const commandHelp = `  e2e4, e2 e4        make a move (castling is the king's move, e1g1)
  e2                 click a square: pick a piece, then click where it goes
  u, undo            take back the last move
  moves              list the legal moves
  history            list the moves played
  stats              summarise the game so far
  board              draw the board
  fen                print the position as FEN
  json               print the position as JSON
  svg FILE           write the board to FILE as SVG
  export FILE        write the game record to FILE
  import FILE        replay the first game record in FILE
  new                start again from the starting position
  save NAME          save the game
  load NAME          resume a saved game
  delete NAME        delete a saved game
  list               list saved games
  perft N            count the positions N plies ahead
  divide N           perft split by first move
  unique N           count the distinct positions N plies ahead
  help               show this list
  quit               leave
`

var (
	errUnknownCommand = errors.New("unknown command")
	errNoStore        = errors.New("saved games unavailable")
	errUsage          = errors.New("bad arguments")
)

// Session is one interactive game: the engine state plus the driver's
// selection and cached legal moves.
type Session struct {
	cfg      *config.Config
	gs       *engine.GameState
	startFEN string

	// legal is refreshed after every change to gs.
	legal []chess.Move

	// Squares clicked so far towards the next move.
	selected chess.Coord
	clicks   []chess.Coord

	store  *storage.Store
	out    io.Writer
	writer output.GameWriter
	svg    *render.SVGRenderer
}

// newGame creates a game at cfg's starting position.
func newGame(cfg *config.Config) (*engine.GameState, error) {
	if cfg.StartFEN == "" {
		return engine.NewGameStateWithConfig(cfg), nil
	}
	return engine.NewGameStateFromFENWithConfig(cfg.StartFEN, cfg)
}

// NewSession starts a game at cfg's starting position. store may be nil,
// which disables the save commands.
func NewSession(cfg *config.Config, store *storage.Store) (*Session, error) {
	gs, err := newGame(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		startFEN: cfg.StartFEN,
		store:    store,
		out:      cfg.OutputFile,
		svg:      render.NewSVGRenderer(cfg.Render),
	}
	if cfg.JSONOutput {
		s.writer = output.NewJSONWriterSingle(s.out)
	} else {
		s.writer = output.NewTextWriter(s.out, cfg)
	}
	s.setGame(gs, cfg.StartFEN)
	return s, nil
}

// setGame replaces the current game.
func (s *Session) setGame(gs *engine.GameState, startFEN string) {
	s.gs = gs
	s.startFEN = startFEN
	s.refresh()
}

// refresh recomputes the legal moves and clears the selection.
func (s *Session) refresh() {
	s.legal = s.gs.LegalMoves()
	s.selected = chess.NoCoord
	s.clicks = nil
}

// Run reads commands from r until quit or end of input.
func (s *Session) Run(r io.Reader) error {
	s.show()
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(s.out, "%s> ", strings.ToLower(s.gs.ToMove().String()))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			s.cfg.Logf(2, "command %q: %v", scanner.Text(), err)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the session should end.
func (s *Session) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
	case "u", "undo":
		s.undo()
	case "moves":
		fmt.Fprintln(s.out, strings.Join(notations(s.legal), " "))
	case "history":
		output.WriteMoveList(s.out, s.gs, output.DefaultLineLength)
	case "stats":
		fmt.Fprint(s.out, processing.AnalyzeGame(s.gs))
	case "board":
		s.show()
	case "fen":
		fmt.Fprintln(s.out, s.gs.FEN())
	case "json":
		return false, output.OutputGameJSON(s.out, "", s.gs)
	case "svg":
		if len(fields) != 2 {
			return false, fmt.Errorf("svg FILE: %w", errUsage)
		}
		return false, s.writeSVG(fields[1])
	case "export", "import":
		if len(fields) != 2 {
			return false, fmt.Errorf("%s FILE: %w", cmd, errUsage)
		}
		if cmd == "export" {
			return false, s.export(fields[1])
		}
		return false, s.importRecord(fields[1])
	case "new":
		gs, err := newGame(s.cfg)
		if err != nil {
			return false, err
		}
		s.setGame(gs, s.cfg.StartFEN)
		s.show()
	case "save", "load", "delete":
		if len(fields) != 2 {
			return false, fmt.Errorf("%s NAME: %w", cmd, errUsage)
		}
		return false, s.storeCommand(cmd, fields[1])
	case "list":
		return false, s.list()
	case "perft", "divide", "unique":
		if len(fields) != 2 {
			return false, fmt.Errorf("%s N: %w", cmd, errUsage)
		}
		return false, s.perft(cmd, fields[1])
	default:
		return false, s.moveCommand(fields)
	}
	return false, nil
}

// moveCommand handles "e2e4", "e2 e4" and single-square clicks.
func (s *Session) moveCommand(fields []string) error {
	switch {
	case len(fields) == 1 && len(fields[0]) == 4:
		m, err := s.gs.ParseMove(fields[0])
		if err != nil {
			return err
		}
		s.apply(m)
		return nil
	case len(fields) == 2 && len(fields[0]) == 2 && len(fields[1]) == 2:
		return s.moveCommand([]string{fields[0] + fields[1]})
	case len(fields) == 1 && len(fields[0]) == 2:
		c, err := chess.ParseCoord(fields[0])
		if err != nil {
			return err
		}
		if _, moved := s.Click(c); !moved && s.selected.OnBoard() {
			d := render.DiagramOf(s.gs)
			d.Select(s.selected, s.legal)
			return render.TextRenderer{Flipped: s.cfg.Render.Flipped}.Render(s.out, d)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", strings.Join(fields, " "), errUnknownCommand)
	}
}

// Click feeds one clicked square into the two-click move input. Clicking
// the selected square again clears the selection. The second click builds
// a move from the two squares; if it is legal it is made, otherwise the
// second square becomes the new first click.
func (s *Session) Click(c chess.Coord) (chess.Move, bool) {
	if s.selected == c {
		s.selected = chess.NoCoord
		s.clicks = nil
		return chess.Move{}, false
	}
	s.selected = c
	s.clicks = append(s.clicks, c)
	if len(s.clicks) < 2 {
		return chess.Move{}, false
	}

	candidate := s.gs.BuildMove(s.clicks[0], s.clicks[1])
	s.cfg.Logf(2, "clicked %s", candidate.Notation())
	if i := chess.IndexOf(s.legal, candidate); i >= 0 {
		m := s.legal[i]
		s.apply(m)
		return m, true
	}
	s.clicks = []chess.Coord{s.selected}
	return chess.Move{}, false
}

// apply makes a legal move and redraws.
func (s *Session) apply(m chess.Move) {
	s.gs.Apply(m)
	s.cfg.Logf(2, "%d. %s", s.gs.Ply(), m.Notation())
	s.refresh()
	s.show()
}

func (s *Session) undo() {
	if s.gs.Ply() == 0 {
		fmt.Fprintln(s.out, "Nothing to undo")
		return
	}
	s.gs.Undo()
	s.refresh()
	s.show()
}

// show writes the position and, when the game is decided or a king is in
// check, a status line.
func (s *Session) show() {
	if err := s.writer.WriteGame("", s.gs); err != nil {
		s.cfg.Logf(1, "write position: %v", err)
	}
	switch {
	case s.gs.Checkmate():
		fmt.Fprintf(s.out, "Checkmate: %s wins\n", s.gs.ToMove().Opposite())
	case s.gs.Stalemate():
		fmt.Fprintln(s.out, "Stalemate")
	case s.gs.IsInCheck():
		fmt.Fprintln(s.out, "Check")
	}
	if n := hashing.Repetitions(s.gs); n > 1 {
		fmt.Fprintf(s.out, "Position seen %d times\n", n)
	}
}

func (s *Session) writeSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.svg.Render(f, render.DiagramOf(s.gs)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Wrote %s\n", path)
	return nil
}

func (s *Session) export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteGameRecord(f, "", s.startFEN, s.gs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Wrote %s\n", path)
	return nil
}

// importRecord replaces the game with the first record in path. The
// current game is kept if the record cannot be replayed.
func (s *Session) importRecord(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	game, err := parser.NewParser(f, s.cfg).ParseGame()
	if err != nil {
		return err
	}
	if game == nil {
		return fmt.Errorf("%s holds no game: %w", path, errUsage)
	}
	gs, err := game.Replay(s.cfg)
	if err != nil {
		return err
	}
	s.setGame(gs, game.GetTag(parser.FENTag))
	s.show()
	return nil
}

func (s *Session) storeCommand(cmd, name string) error {
	if s.store == nil {
		return errNoStore
	}
	switch cmd {
	case "save":
		if err := s.store.SaveGame(storage.Snapshot(name, s.startFEN, s.gs)); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Saved %s\n", name)
	case "load":
		sg, err := s.store.LoadGame(name)
		if err != nil {
			return err
		}
		gs, err := sg.Restore(s.cfg)
		if err != nil {
			return err
		}
		s.setGame(gs, sg.StartFEN)
		s.show()
	case "delete":
		if err := s.store.DeleteGame(name); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Deleted %s\n", name)
	}
	return nil
}

func (s *Session) list() error {
	if s.store == nil {
		return errNoStore
	}
	names, err := s.store.ListGames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(s.out, "No saved games")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
	return nil
}

func (s *Session) perft(cmd, arg string) error {
	depth, err := strconv.Atoi(arg)
	if err != nil || depth < 1 || depth > s.cfg.Perft.MaxDepth {
		return fmt.Errorf("depth %q not in 1..%d: %w", arg, s.cfg.Perft.MaxDepth, errUsage)
	}
	if cmd == "unique" {
		fmt.Fprintf(s.out, "Unique positions: %d\n", worker.UniquePositions(s.gs, depth, s.cfg.Perft.Workers))
		return nil
	}

	var total uint64
	for _, e := range worker.Divide(s.gs, depth, s.cfg.Perft.Workers) {
		if cmd == "divide" {
			fmt.Fprintln(s.out, e)
		}
		total += e.Nodes
	}
	fmt.Fprintf(s.out, "Nodes searched: %d\n", total)
	return nil
}

func notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}
