package storage

import (
	"github.com/charmbracelet/log"
)

// Reporter records finished games in a Store.
// It is best-effort: failures are logged and never returned to the game.
type Reporter struct {
	store  *Store
	logger *log.Logger
}

// NewReporter creates a reporter. A nil store makes Report a no-op and a
// nil logger falls back to the charmbracelet/log default logger.
func NewReporter(store *Store, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{store: store, logger: logger}
}

// Report saves a finished game and reports whether its score beats every
// earlier score for the same game on the same difficulty.
func (r *Reporter) Report(e ScoreEntry) bool {
	if r == nil || r.store == nil {
		return false
	}
	if e.Difficulty == "" {
		e.Difficulty = UnknownDifficulty
	}

	best, err := r.store.HighScore(e.GameID, e.Difficulty)
	if err != nil {
		r.logger.Warn("cannot read high score", "game", e.GameID, "difficulty", e.Difficulty, "err", err)
	}

	if _, saveErr := r.store.SaveScore(e); saveErr != nil {
		r.logger.Error("cannot save score", "game", e.GameID, "score", e.Score, "err", saveErr)
		return false
	}

	newBest := err == nil && e.Score > best
	r.logger.Info("score recorded",
		"game", e.GameID,
		"score", e.Score,
		"level", e.Level,
		"difficulty", e.Difficulty,
		"best", newBest,
	)
	return newBest
}
