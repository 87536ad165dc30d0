package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/scoregate/internal/model"
)

// BaselineStore persists the last accepted mutation score as a single scalar.
type BaselineStore interface {
	// Load returns the stored score. found is false when no baseline exists yet.
	Load(path m.Path) (score m.Score, found bool, err error)

	// Save overwrites the baseline with score, creating parent directories.
	Save(path m.Path, score m.Score) error
}

// LocalBaselineStore keeps the baseline in a plain text file.
type LocalBaselineStore struct{}

// NewLocalBaselineStore constructs a LocalBaselineStore.
func NewLocalBaselineStore() *LocalBaselineStore {
	return &LocalBaselineStore{}
}

// Load reads the baseline file. Surrounding whitespace is ignored.
func (s *LocalBaselineStore) Load(path m.Path) (m.Score, bool, error) {
	content, err := os.ReadFile(string(path))
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no baseline found", "path", path)
		return 0, false, nil
	}

	if err != nil {
		slog.Error("failed to read baseline", "path", path, "error", err)
		return 0, false, fmt.Errorf("read baseline %s: %w", path, err)
	}

	score, err := m.ParseScore(string(content))
	if err != nil {
		slog.Error("baseline is not a number", "path", path, "content", string(content), "error", err)
		return 0, false, fmt.Errorf("%w %s: %q is not a number", m.ErrInvalidBaseline, path, string(content))
	}

	slog.Debug("loaded baseline", "path", path, "score", score.String())

	return score, true, nil
}

// Save writes the text form of score, without a trailing newline.
func (s *LocalBaselineStore) Save(path m.Path, score m.Score) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("failed to create baseline directory", "path", dir, "error", err)
			return fmt.Errorf("create baseline directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), []byte(score.String()), 0o644); err != nil {
		slog.Error("failed to write baseline", "path", path, "error", err)
		return fmt.Errorf("write baseline %s: %w", path, err)
	}

	slog.Info("saved baseline", "path", path, "score", score.String())

	return nil
}
