package config

import (
	"os"
	"path/filepath"
)

// StoreConfig holds settings for the saved-game store.
type StoreConfig struct {
	// Dir is the database directory.
	Dir string

	// InMemory keeps the store in memory only; Dir is ignored.
	InMemory bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Dir: DefaultStoreDir(),
	}
}

// DefaultStoreDir returns the per-user directory for saved games, falling
// back to the working directory when no home directory is known.
func DefaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", ".chess-rules")
	}
	return filepath.Join(home, ".chess-rules", "games")
}
