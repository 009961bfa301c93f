package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.LogFile == nil || cfg.OutputFile == nil {
		t.Error("LogFile and OutputFile should default to the standard streams")
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Rules.RookCaptureRevokesCastling {
		t.Error("RookCaptureRevokesCastling should be false by default")
	}
	if cfg.Rules.PawnsAttackEmptySquares {
		t.Error("PawnsAttackEmptySquares should be false by default")
	}
	if cfg.JSONOutput {
		t.Error("JSONOutput should be false by default")
	}
	if cfg.Render.SquareSize != 64 {
		t.Errorf("Render.SquareSize = %d, want 64", cfg.Render.SquareSize)
	}
	if cfg.Render.Flipped {
		t.Error("Render.Flipped should be false by default")
	}
	if cfg.Store.InMemory {
		t.Error("Store.InMemory should be false by default")
	}
	if cfg.Store.Dir == "" {
		t.Error("Store.Dir should not be empty by default")
	}
	if cfg.Perft.Workers < 1 {
		t.Errorf("Perft.Workers = %d, want >= 1", cfg.Perft.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
		{"tiny squares", func(c *Config) { c.Render.SquareSize = 2 }},
		{"empty store dir", func(c *Config) { c.Store.Dir = "" }},
		{"no perft workers", func(c *Config) { c.Perft.Workers = 0 }},
		{"zero perft depth", func(c *Config) { c.Perft.MaxDepth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	t.Run("in-memory store ignores dir", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Store.Dir = ""
		cfg.Store.InMemory = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "checkmate after %d plies", 4)
	cfg.Logf(2, "not shown")

	if got, want := buf.String(), "checkmate after 4 plies\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}

	var nilCfg *Config
	nilCfg.Logf(0, "must not panic")
}

func TestConfig_Quiet(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(2).WithRookCaptureRevokesCastling(true).Build()

	q := cfg.Quiet()
	q.Logf(1, "not shown")
	if buf.Len() != 0 {
		t.Errorf("quiet config logged %q", buf.String())
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Quiet changed the original verbosity to %d", cfg.Verbosity)
	}
	if !q.Rules.RookCaptureRevokesCastling {
		t.Error("Quiet should keep the rule settings")
	}

	var nilCfg *Config
	if nilCfg.Quiet() != nil {
		t.Error("nil Quiet() should be nil")
	}
}

func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithOutput(&out).
		WithStartFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithRookCaptureRevokesCastling(true).
		WithPawnsAttackEmptySquares(true).
		WithJSONOutput(true).
		WithSquareSize(32).
		WithFlippedBoard(true).
		WithStoreDir("/tmp/games").
		WithPerftWorkers(3).
		Build()

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.OutputFile != &out {
		t.Error("OutputFile not set by WithOutput")
	}
	if cfg.StartFEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if !cfg.Rules.RookCaptureRevokesCastling {
		t.Error("RookCaptureRevokesCastling not set")
	}
	if !cfg.Rules.PawnsAttackEmptySquares {
		t.Error("PawnsAttackEmptySquares not set")
	}
	if !cfg.JSONOutput {
		t.Error("JSONOutput not set")
	}
	if cfg.Render.SquareSize != 32 || !cfg.Render.Flipped {
		t.Errorf("Render = %+v", *cfg.Render)
	}
	if cfg.Store.Dir != "/tmp/games" || cfg.Store.InMemory {
		t.Errorf("Store = %+v", *cfg.Store)
	}
	if cfg.Perft.Workers != 3 {
		t.Errorf("Perft.Workers = %d, want 3", cfg.Perft.Workers)
	}

	mem := NewConfigBuilder().WithInMemoryStore().Build()
	if !mem.Store.InMemory {
		t.Error("WithInMemoryStore did not enable the in-memory store")
	}
}
