package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.txt")
	records := `[Name "good"]
1. e2e4 e7e5 *

[Name "mate"]
1. f2f3 e7e5 2. g2g4 d8h4 1-0

1. e2e4 e7e5 2. e1e3 *
`
	testutil.AssertNoError(t, os.WriteFile(path, []byte(records), 0o644))

	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithLogFile(io.Discard).Build()

	bad, err := checkFiles(cfg, []string{path})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, bad, 2)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 3)
	testutil.AssertEqual(t, lines[0], path+":1 good: ok, 2 plies")
	testutil.AssertEqual(t, lines[1], path+":4 mate: result 1-0 contradicts the final position")
	if !strings.HasPrefix(lines[2], path+":7 game 3: invalid: ") {
		t.Errorf("third line = %q", lines[2])
	}
}

func TestCheckFiles_Errors(t *testing.T) {
	cfg := config.NewConfigBuilder().WithOutput(io.Discard).WithLogFile(io.Discard).Build()

	_, err := checkFiles(cfg, nil)
	testutil.AssertErrorIs(t, err, errUsage)

	_, err = checkFiles(cfg, []string{filepath.Join(t.TempDir(), "missing.txt")})
	testutil.AssertErrorIs(t, err, os.ErrNotExist)
}
