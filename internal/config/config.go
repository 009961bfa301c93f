// Package config provides configuration for the chess rules engine and its driver.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all engine and driver configuration.
type Config struct {
	// Verbosity controls diagnostic output: 0=nothing, 1=game events,
	// 2=running commentary.
	Verbosity int

	// LogFile receives diagnostic output.
	LogFile io.Writer

	// OutputFile receives driver output (board diagrams, move lists, JSON).
	OutputFile io.Writer

	// JSONOutput prints the position as JSON after each move instead of a
	// text diagram.
	JSONOutput bool

	// StartFEN is the position a new game starts from. Empty means the
	// standard starting position.
	StartFEN string

	Rules  *RulesConfig
	Render *RenderConfig
	Store  *StoreConfig
	Perft  *PerftConfig
}

// PerftConfig holds settings for move-generation counting runs.
type PerftConfig struct {
	// Workers is the number of goroutines that split the root moves.
	Workers int

	// MaxDepth bounds the depth a driver command may request.
	MaxDepth int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:  runtime.NumCPU(),
		MaxDepth: 6,
	}
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LogFile:    os.Stderr,
		OutputFile: os.Stdout,
		Rules:      NewRulesConfig(),
		Render:     NewRenderConfig(),
		Store:      NewStoreConfig(),
		Perft:      NewPerftConfig(),
	}
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Quiet returns a shallow copy of c that writes no diagnostics.
func (c *Config) Quiet() *Config {
	if c == nil {
		return nil
	}
	q := *c
	q.Verbosity = 0
	return &q
}

// Validate checks the configuration for values the engine and driver cannot use.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Render != nil && c.Render.SquareSize < MinSquareSize {
		return fmt.Errorf("square size %d is below %d: %w", c.Render.SquareSize, MinSquareSize, errors.ErrInvalidConfig)
	}
	if c.Store != nil && !c.Store.InMemory && c.Store.Dir == "" {
		return fmt.Errorf("store directory is empty: %w", errors.ErrInvalidConfig)
	}
	if c.Perft != nil {
		if c.Perft.Workers < 1 {
			return fmt.Errorf("perft workers %d is below 1: %w", c.Perft.Workers, errors.ErrInvalidConfig)
		}
		if c.Perft.MaxDepth < 1 {
			return fmt.Errorf("perft max depth %d is below 1: %w", c.Perft.MaxDepth, errors.ErrInvalidConfig)
		}
	}
	return nil
}
