// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game options
	startFEN       = flag.String("fen", "", "Start from this FEN position (default: standard start)")
	fixRookCapture = flag.Bool("fix-rook-capture", false, "Capturing a rook on its home square revokes that castling right")
	fixPawnAttacks = flag.Bool("fix-pawn-attacks", false, "Pawns attack empty diagonal squares when testing castling paths")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Print the position as JSON after each move instead of a diagram")
	svgSize    = flag.Int("svg-size", 64, "Square size in pixels for SVG diagrams")
	flipBoard  = flag.Bool("flip", false, "Draw boards from Black's side")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 commentary")
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")

	// Saved games
	storeDir    = flag.String("store", "", "Directory for saved games (default: ~/.chess-rules/games)")
	memoryStore = flag.Bool("memstore", false, "Keep saved games in memory only")

	// Perft
	perftWorkers = flag.Int("workers", 0, "Goroutines for perft (default: number of CPUs)")
	perftDepth   = flag.Int("perft", 0, "Print perft counts to this depth and exit")

	// Batch
	checkRecords = flag.Bool("check", false, "Validate the game records in the named files and exit")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags maps the parsed flags onto cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN
	cfg.JSONOutput = *jsonOutput
	cfg.Rules.RookCaptureRevokesCastling = *fixRookCapture
	cfg.Rules.PawnsAttackEmptySquares = *fixPawnAttacks
	applyRenderFlags(cfg)
	applyStoreFlags(cfg)
	if *perftWorkers > 0 {
		cfg.Perft.Workers = *perftWorkers
	}
}

// applyRenderFlags sets the diagram options.
func applyRenderFlags(cfg *config.Config) {
	cfg.Render.SquareSize = *svgSize
	cfg.Render.Flipped = *flipBoard
}

// applyStoreFlags selects where saved games live.
func applyStoreFlags(cfg *config.Config) {
	if *storeDir != "" {
		cfg.Store.Dir = *storeDir
	}
	cfg.Store.InMemory = *memoryStore
}
