// check.go - Batch validation of game records
package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// checkFiles validates every game record in paths and writes one line per
// game to cfg.OutputFile. It returns the number of records that are not
// valid or whose result contradicts the final position.
func checkFiles(cfg *config.Config, paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, fmt.Errorf("no files to check: %w", errUsage)
	}

	bad := 0
	for _, path := range paths {
		n, err := checkFile(cfg, path)
		if err != nil {
			return bad, err
		}
		bad += n
	}
	return bad, nil
}

func checkFile(cfg *config.Config, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	games, err := parser.NewParser(f, cfg).ParseAll()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	bad := 0
	for i, game := range games {
		label := fmt.Sprintf("%s:%d", path, game.StartLine)
		if name := game.GetTag(parser.NameTag); name != "" {
			label += " " + name
		} else {
			label += fmt.Sprintf(" game %d", i+1)
		}

		res := processing.ValidateGame(game, cfg.Quiet())
		switch {
		case !res.Valid:
			bad++
			fmt.Fprintf(cfg.OutputFile, "%s: invalid: %s\n", label, res.ErrorMsg)
		case !res.ResultConsistent:
			bad++
			fmt.Fprintf(cfg.OutputFile, "%s: result %s contradicts the final position\n", label, game.Result)
		default:
			fmt.Fprintf(cfg.OutputFile, "%s: ok, %d plies\n", label, processing.CountPlies(game))
		}
	}
	cfg.Logf(1, "%s: %d games, %d bad", path, len(games), bad)
	return bad, nil
}
