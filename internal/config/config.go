// Package config resolves where quiz state, the question bank and the
// warning log live.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/abhisek/quizplayer/internal/history"
	"github.com/abhisek/quizplayer/internal/store"
)

// Config holds runtime settings.
type Config struct {
	// DBPath is the SQLite file holding saved state. Empty means
	// store.DefaultDBPath.
	DBPath string

	// BankPath is a question bank JSON file. Empty means the embedded course.
	BankPath string

	// LogPath receives warnings while the terminal UI owns the screen.
	// Empty means quizplayer.log next to the database.
	LogPath string

	// HistoryLimit is the number of grading attempts kept. Default: 50.
	HistoryLimit int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HistoryLimit: history.DefaultLimit,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("QUIZPLAYER_DB"); p != "" {
		cfg.DBPath = p
	}
	if p := os.Getenv("QUIZPLAYER_BANK"); p != "" {
		cfg.BankPath = p
	}
	if p := os.Getenv("QUIZPLAYER_LOG"); p != "" {
		cfg.LogPath = p
	}
	if v := os.Getenv("QUIZPLAYER_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			n = -1
		}
		cfg.HistoryLimit = n
	}

	return cfg
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.HistoryLimit < 1 {
		return fmt.Errorf("QUIZPLAYER_HISTORY_LIMIT must be a positive integer")
	}
	if c.BankPath != "" {
		info, err := os.Stat(c.BankPath)
		if err != nil {
			return fmt.Errorf("question bank: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("question bank %s is a directory", c.BankPath)
		}
	}
	return nil
}

// Resolve fills in the database and log paths, creating their parent
// directories.
func (c Config) Resolve() (Config, error) {
	if c.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return c, fmt.Errorf("resolve database path: %w", err)
		}
		c.DBPath = p
	} else if err := store.EnsureDir(c.DBPath); err != nil {
		return c, fmt.Errorf("create database directory: %w", err)
	}

	if c.LogPath == "" {
		c.LogPath = filepath.Join(filepath.Dir(c.DBPath), "quizplayer.log")
	} else if err := store.EnsureDir(c.LogPath); err != nil {
		return c, fmt.Errorf("create log directory: %w", err)
	}
	return c, nil
}
