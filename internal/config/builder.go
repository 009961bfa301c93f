package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the diagnostic writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithJSONOutput selects JSON position output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONOutput = enabled
	return b
}

// WithStartFEN sets the starting position of new games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithRookCaptureRevokesCastling makes capturing a rook on its home square
// revoke the owner's castling right on that side.
func (b *ConfigBuilder) WithRookCaptureRevokesCastling(enabled bool) *ConfigBuilder {
	b.cfg.Rules.RookCaptureRevokesCastling = enabled
	return b
}

// WithPawnsAttackEmptySquares makes pawns attack empty diagonal squares
// when testing the squares a castling king crosses.
func (b *ConfigBuilder) WithPawnsAttackEmptySquares(enabled bool) *ConfigBuilder {
	b.cfg.Rules.PawnsAttackEmptySquares = enabled
	return b
}

// WithSquareSize sets the SVG square size in pixels.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Render.SquareSize = size
	return b
}

// WithFlippedBoard draws diagrams from Black's side.
func (b *ConfigBuilder) WithFlippedBoard(flipped bool) *ConfigBuilder {
	b.cfg.Render.Flipped = flipped
	return b
}

// WithStoreDir sets the saved-game database directory.
func (b *ConfigBuilder) WithStoreDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	b.cfg.Store.InMemory = false
	return b
}

// WithInMemoryStore keeps saved games in memory only.
func (b *ConfigBuilder) WithInMemoryStore() *ConfigBuilder {
	b.cfg.Store.InMemory = true
	return b
}

// WithPerftWorkers sets the number of perft worker goroutines.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}
