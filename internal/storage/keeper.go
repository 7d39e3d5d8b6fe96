package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Tranquil-fella/brick-game/internal/tetris"
)

// Ensure both keepers satisfy the engine interface
var (
	_ tetris.ScoreKeeper = (*DBKeeper)(nil)
	_ tetris.ScoreKeeper = (*FileKeeper)(nil)
)

// DefaultScoreFile is where FileKeeper stores the best score by default.
const DefaultScoreFile = "~/.brickgame/tetris.score"

// DBKeeper keeps the best score in the best_scores table.
// Failures are logged and otherwise ignored.
type DBKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// Keeper returns a best-score keeper for gameID backed by s.
// A nil logger discards messages.
func (s *Store) Keeper(gameID string, logger *log.Logger) *DBKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &DBKeeper{store: s, gameID: gameID, logger: logger}
}

// ReadBest returns the stored best score, or 0 on any failure.
func (k *DBKeeper) ReadBest() int {
	best, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.logger.Warn("cannot read best score", "game", k.gameID, "error", err)
		return 0
	}
	return best
}

// WriteBest stores score as the new best.
func (k *DBKeeper) WriteBest(score int) {
	if err := k.store.SetBestScore(k.gameID, score); err != nil {
		k.logger.Warn("cannot write best score", "game", k.gameID, "error", err)
	}
}

// FileKeeper keeps the best score as a decimal integer in a text file.
type FileKeeper struct {
	path   string
	logger *log.Logger
}

// NewFileKeeper returns a keeper for path. A leading ~ is expanded; an
// empty path means DefaultScoreFile.
func NewFileKeeper(path string, logger *log.Logger) (*FileKeeper, error) {
	if path == "" {
		path = DefaultScoreFile
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileKeeper{path: path, logger: logger}, nil
}

// Path returns the resolved score file path.
func (k *FileKeeper) Path() string {
	return k.path
}

// ReadBest returns the stored score. A missing, unreadable or malformed
// file reads as 0.
func (k *FileKeeper) ReadBest() int {
	best, err := k.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			k.logger.Warn("cannot read best score", "path", k.path, "error", err)
		}
		return 0
	}
	return best
}

func (k *FileKeeper) read() (int, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		return 0, err
	}
	best, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed score file: %w", err)
	}
	if best < 0 {
		return 0, fmt.Errorf("storage: negative score %d in score file", best)
	}
	return best, nil
}

// WriteBest overwrites the file with score, creating parent directories.
func (k *FileKeeper) WriteBest(score int) {
	if err := k.write(score); err != nil {
		k.logger.Warn("cannot write best score", "path", k.path, "error", err)
	}
}

func (k *FileKeeper) write(score int) error {
	if err := os.MkdirAll(filepath.Dir(k.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory: %w", err)
	}
	if err := os.WriteFile(k.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	return nil
}

// Reset removes the score file. A missing file is not an error.
func (k *FileKeeper) Reset() error {
	if err := os.Remove(k.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove score file: %w", err)
	}
	return nil
}
