package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Tranquil-fella/brick-game/internal/storage"
	"github.com/Tranquil-fella/brick-game/internal/tetris"
)

// Best score storage kinds accepted by --highscore.
const (
	keeperFile = "file"
	keeperDB   = "db"
)

var errUnknownKeeper = errors.New("unknown best score storage")

// newLogger builds the program logger. When path is set logs are appended
// to that file; the returned closer releases it.
func newLogger(level, path string, stderr io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w := stderr
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickgame",
		Level:           lvl,
	})
	return logger, closer, nil
}

// bestKeeper is a ScoreKeeper that can also forget the stored score.
type bestKeeper interface {
	tetris.ScoreKeeper
	Reset() error
}

// dbBest adds Reset to the database keeper.
type dbBest struct {
	*storage.DBKeeper
	store *storage.Store
}

func (b dbBest) Reset() error {
	return b.store.ResetBestScore(storage.GameTetris)
}

// newKeeper selects the best score storage. The store is only required
// for the db kind.
func newKeeper(kind, scoreFile string, store *storage.Store, logger *log.Logger) (bestKeeper, error) {
	switch kind {
	case keeperFile, "":
		k, err := storage.NewFileKeeper(scoreFile, logger)
		if err != nil {
			return nil, err
		}
		return k, nil
	case keeperDB:
		if store == nil {
			return nil, errors.New("best score storage db needs an open database")
		}
		return dbBest{DBKeeper: store.Keeper(storage.GameTetris, logger), store: store}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s or %s)", errUnknownKeeper, kind, keeperFile, keeperDB)
	}
}
