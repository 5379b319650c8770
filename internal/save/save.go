package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/diegok/pixbounce/internal/game"
)

// File names inside the save directory.
const (
	CustomizationFile = "customization.json"
	HighScoreFile     = "highscore.txt"
)

// Store persists ball customization and the high score under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadCustomization returns the persisted customization. A missing or
// unparseable file falls back to defaults; out-of-range values are clamped.
// Loading never fails.
func (s *Store) LoadCustomization() game.Customization {
	c := game.DefaultCustomization()

	data, err := os.ReadFile(filepath.Join(s.dir, CustomizationFile))
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return game.DefaultCustomization()
	}

	c.Clamp()
	return c
}

// SaveCustomization writes the customization blob.
func (s *Store) SaveCustomization(c game.Customization) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode customization")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "create save dir")
	}
	if err := os.WriteFile(filepath.Join(s.dir, CustomizationFile), data, 0o644); err != nil {
		return errors.Wrap(err, "write customization")
	}
	return nil
}

// HighScore returns the persisted high score, zero when absent or invalid.
func (s *Store) HighScore() int {
	data, err := os.ReadFile(filepath.Join(s.dir, HighScoreFile))
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SubmitScore persists score when it beats the stored high score and returns
// the resulting high score either way.
func (s *Store) SubmitScore(score int) (int, error) {
	best := s.HighScore()
	if score <= best {
		return best, nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return best, errors.Wrap(err, "create save dir")
	}
	if err := os.WriteFile(filepath.Join(s.dir, HighScoreFile), []byte(strconv.Itoa(score)), 0o644); err != nil {
		return best, errors.Wrap(err, "write high score")
	}
	return score, nil
}
