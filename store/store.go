// Package store persists the high score between sessions
package store

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-tetris/constants"
)

var (
	// ErrNegativeScore is returned when writing a score below zero
	ErrNegativeScore = errors.New("store: negative score")
)

// DefaultPath returns the per-user high score file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}
	return filepath.Join(dir, constants.AppName, constants.HighScoreFileName), nil
}

// FileStore keeps scores in a TOML table keyed by name
// The file is rewritten atomically on every update
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path; the file is created on first write
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (f *FileStore) Path() string {
	return f.path
}

// HighScore returns the stored score, 0 if the file or key is missing
func (f *FileStore) HighScore() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return 0, err
	}
	v := scores[constants.HighScoreKey]
	if v < 0 {
		return 0, nil
	}
	return int(v), nil
}

// SetHighScore replaces the stored score
func (f *FileStore) SetHighScore(score int) error {
	if score < 0 {
		return errors.Wrapf(ErrNegativeScore, "score %d", score)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		// Corrupt file is replaced rather than blocking the write
		scores = make(map[string]int64)
	}
	scores[constants.HighScoreKey] = int64(score)
	return f.write(scores)
}

func (f *FileStore) read() (map[string]int64, error) {
	scores := make(map[string]int64)
	if _, err := toml.DecodeFile(f.path, &scores); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return scores, nil
		}
		return nil, errors.Wrapf(err, "read %s", f.path)
	}
	return scores, nil
}

func (f *FileStore) write(scores map[string]int64) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(scores); err != nil {
		return errors.Wrap(err, "encode scores")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "replace %s", f.path)
	}
	return nil
}

// MemoryStore holds the score in process memory
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

// NewMemoryStore returns a store seeded with score
func NewMemoryStore(score int) *MemoryStore {
	if score < 0 {
		score = 0
	}
	return &MemoryStore{score: score}
}

// HighScore returns the held score
func (m *MemoryStore) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SetHighScore replaces the held score
func (m *MemoryStore) SetHighScore(score int) error {
	if score < 0 {
		return errors.Wrapf(ErrNegativeScore, "score %d", score)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}
