// Package storage keeps saved games in a Badger database.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Key prefix for saved games.
const keyGamePrefix = "game/"

// SavedGame is a game as stored: its starting position and the moves played
// from it, in coordinate notation.
type SavedGame struct {
	Name     string    `json:"name"`
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	FinalFEN string    `json:"final_fen"`
	Status   string    `json:"status"`
	SavedAt  time.Time `json:"saved_at"`
}

// Snapshot records gs under name. startFEN is the position gs started
// from; empty means the standard starting position.
func Snapshot(name, startFEN string, gs *engine.GameState) *SavedGame {
	if startFEN == "" {
		startFEN = engine.InitialFEN
	}
	moves := gs.History()
	sg := &SavedGame{
		Name:     name,
		StartFEN: startFEN,
		Moves:    make([]string, len(moves)),
		FinalFEN: gs.FEN(),
		Status:   gs.Status().String(),
		SavedAt:  time.Now(),
	}
	for i, m := range moves {
		sg.Moves[i] = m.Notation()
	}
	return sg
}

// Restore replays the saved moves from the starting position.
func (sg *SavedGame) Restore(cfg *config.Config) (*engine.GameState, error) {
	gs, err := engine.NewGameStateFromFENWithConfig(sg.StartFEN, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "game %q", sg.Name)
	}
	if err := gs.PlayMoves(sg.Moves...); err != nil {
		return nil, errors.Wrapf(err, "game %q", sg.Name)
	}
	return gs, nil
}

// Store wraps BadgerDB for saved games.
type Store struct {
	db *badger.DB
}

// Open opens the store described by cfg, creating the directory if needed.
func Open(cfg *config.StoreConfig) (*Store, error) {
	if cfg == nil {
		cfg = config.NewStoreConfig()
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create store directory")
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(name string) []byte {
	return []byte(keyGamePrefix + name)
}

// SaveGame stores sg, replacing any game with the same name.
func (s *Store) SaveGame(sg *SavedGame) error {
	if strings.TrimSpace(sg.Name) == "" {
		return fmt.Errorf("empty game name: %w", errors.ErrInvalidConfig)
	}
	data, err := json.Marshal(sg)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(sg.Name), data)
	})
}

// LoadGame returns the game saved under name, or ErrGameNotFound.
func (s *Store) LoadGame(name string) (*SavedGame, error) {
	var sg SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sg)
		})
	})
	if err != nil {
		return nil, err
	}
	return &sg, nil
}

// ListGames returns the names of all saved games, sorted.
func (s *Store) ListGames() ([]string, error) {
	var names []string
	prefix := []byte(keyGamePrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyGamePrefix))
		}
		return nil
	})

	sort.Strings(names)
	return names, err
}

// DeleteGame removes the game saved under name, or returns ErrGameNotFound.
func (s *Store) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(name)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(name))
	})
}
